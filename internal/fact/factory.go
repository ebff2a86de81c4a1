package fact

import (
	"context"
	"fmt"
)

// Provider kinds accepted by New.
const (
	KindGemini = "gemini"
	KindStatic = "static"
)

// Options selects and configures a provider.
type Options struct {
	Kind      string
	APIKey    string
	Model     string
	FactsFile string
	// Seed fixes static fact selection when non-zero.
	Seed uint64
}

// New builds the configured provider wrapped in tracing.
func New(ctx context.Context, opts Options) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch opts.Kind {
	case KindGemini:
		p, err = NewGeminiProvider(ctx, opts.APIKey, opts.Model)
	case KindStatic, "":
		p, err = newStaticFromOptions(opts)
	default:
		err = fmt.Errorf("unknown fact provider %q (accepted values: %s, %s)", opts.Kind, KindGemini, KindStatic)
	}
	if err != nil {
		return nil, err
	}
	return NewTraced(p), nil
}

func newStaticFromOptions(opts Options) (*StaticProvider, error) {
	var facts []string
	if opts.FactsFile != "" {
		loaded, err := LoadFacts(opts.FactsFile)
		if err != nil {
			return nil, err
		}
		facts = loaded
	}
	var staticOpts []StaticOption
	if opts.Seed != 0 {
		staticOpts = append(staticOpts, WithSeed(opts.Seed))
	}
	return NewStaticProvider(facts, staticOpts...), nil
}
