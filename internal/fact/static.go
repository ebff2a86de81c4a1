package fact

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// defaultFacts backs the static provider when no facts file is configured.
var defaultFacts = []string{
	"A dog's nose print is unique, much like a human fingerprint.",
	"Dogs can hear sounds at roughly four times the distance humans can.",
	"Greyhounds can reach speeds of about 45 miles per hour.",
	"Dalmatian puppies are born completely white; their spots appear later.",
	"Dogs sweat mainly through the pads of their paws.",
	"The Basenji is known as the barkless dog; it yodels instead.",
	"A dog's sense of smell is estimated to be 10,000 to 100,000 times keener than ours.",
	"Puppies are born deaf and usually start hearing at around three weeks old.",
	"Dogs curl up to sleep to keep warm and protect their vital organs.",
	"The Newfoundland has water-resistant fur and webbed feet, making it a natural swimmer.",
}

// factsFile is the YAML layout accepted by LoadFacts:
//
//	facts:
//	  - "Dogs have three eyelids."
//	  - fact: "Dogs dream like humans do."
type factsFile struct {
	Facts []factEntry `yaml:"facts"`
}

// factEntry accepts either a bare string or a mapping with a fact key.
type factEntry struct {
	Text string
}

func (e *factEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Text = node.Value
		return nil
	}
	var f Fact
	if err := node.Decode(&f); err != nil {
		return err
	}
	e.Text = f.Text
	return nil
}

// StaticProvider returns facts from a fixed list in random order.
type StaticProvider struct {
	mu    sync.Mutex
	facts []string
	rng   *rand.Rand
}

// StaticOption configures a StaticProvider.
type StaticOption func(*StaticProvider)

// WithSeed makes fact selection reproducible.
func WithSeed(seed uint64) StaticOption {
	return func(p *StaticProvider) {
		p.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewStaticProvider creates a provider over facts. An empty list selects the
// built-in facts.
func NewStaticProvider(facts []string, opts ...StaticOption) *StaticProvider {
	cleaned := make([]string, 0, len(facts))
	for _, f := range facts {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, defaultFacts...)
	}
	p := &StaticProvider{
		facts: cleaned,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadFacts reads a YAML facts file.
func LoadFacts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read facts file: %w", err)
	}
	var file factsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse facts file %s: %w", path, err)
	}
	facts := make([]string, 0, len(file.Facts))
	for _, e := range file.Facts {
		if t := strings.TrimSpace(e.Text); t != "" {
			facts = append(facts, t)
		}
	}
	if len(facts) == 0 {
		return nil, fmt.Errorf("facts file %s contains no facts", path)
	}
	return facts, nil
}

// Name identifies the provider in logs and traces.
func (p *StaticProvider) Name() string { return "static" }

// Len returns the number of facts available.
func (p *StaticProvider) Len() int { return len(p.facts) }

// Fetch returns a random fact. It only fails when ctx is already done.
func (p *StaticProvider) Fetch(ctx context.Context) (Fact, error) {
	if err := ctx.Err(); err != nil {
		return Fact{}, err
	}
	p.mu.Lock()
	idx := p.rng.IntN(len(p.facts))
	p.mu.Unlock()
	return Fact{Text: p.facts[idx]}, nil
}
