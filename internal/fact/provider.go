//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

package fact

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyFact is returned when a provider produced no usable text.
var ErrEmptyFact = errors.New("provider returned an empty fact")

// Fact is a single piece of dog trivia.
type Fact struct {
	Text string `json:"fact" yaml:"fact"`
}

// String returns the fact text.
func (f Fact) String() string { return f.Text }

// Provider produces one fact per call. Any error means no fact is available.
type Provider interface {
	Fetch(ctx context.Context) (Fact, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (Fact, error)

// Fetch calls f.
func (f ProviderFunc) Fetch(ctx context.Context) (Fact, error) {
	return f(ctx)
}

// Name returns a provider's display name, or "custom" when it has none.
func Name(p Provider) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "custom"
}

// normalize trims the fact text and rejects empty results.
func normalize(f Fact) (Fact, error) {
	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		return Fact{}, ErrEmptyFact
	}
	return f, nil
}
