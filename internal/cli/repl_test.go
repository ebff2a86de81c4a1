package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agbru/dogyears/internal/ageconv"
	"github.com/agbru/dogyears/internal/submission"
)

func runREPL(t *testing.T, input string, config REPLConfig) (string, *submission.Controller) {
	t.Helper()
	useNoColor(t)
	useMockSpinner(t, false)
	config.Output.Quiet = true

	ctrl := submission.New(staticFact("Dogs dream."))
	r := NewREPL(ctrl, config)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start(context.Background())
	return out.String(), ctrl
}

func TestREPL_Commands(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		config   REPLConfig
		contains []string
		absent   []string
	}{
		{
			name:     "quick conversion",
			input:    "5 large\nexit\n",
			contains: []string{"44\n", "Goodbye!"},
		},
		{
			name:     "calc command with default size",
			input:    "calc 10\nquit\n",
			config:   REPLConfig{DefaultSize: ageconv.Medium},
			contains: []string{"64\n"},
		},
		{
			name:     "missing size",
			input:    "calc 3\n",
			contains: []string{"You need to select a dog size."},
		},
		{
			name:     "too old",
			input:    "31 small\n",
			contains: []string{"That's a very old dog!"},
		},
		{
			name:     "change default size",
			input:    "size s\n2\n",
			contains: []string{"Default size: Small (0-20 lbs)", "24\n"},
		},
		{
			name:     "bad size",
			input:    "size huge\n",
			contains: []string{"unknown size huge"},
		},
		{
			name:     "consecutive conversions",
			input:    "1 large\n2 large\n",
			contains: []string{"12\n", "23\n"},
		},
		{
			name:     "status after conversion",
			input:    "5 large\nstatus\n",
			config:   REPLConfig{ProviderName: "static"},
			contains: []string{"State:        results", "Human age:    44", "Provider:     static"},
		},
		{
			name:     "reset",
			input:    "5 large\nreset\nstatus\n",
			contains: []string{"Form cleared.", "State:        form"},
			absent:   []string{"Human age:"},
		},
		{
			name:     "unknown command",
			input:    "wag\n",
			contains: []string{"Unknown command: wag"},
		},
		{
			name:     "calc usage",
			input:    "calc\n",
			contains: []string{"Usage: calc <age> [size]"},
		},
		{
			name:     "eof without newline",
			input:    "4 medium",
			contains: []string{"34\n", "Goodbye!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runREPL(t, tt.input, tt.config)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestREPL_ExitLeavesResults(t *testing.T) {
	_, ctrl := runREPL(t, "7 small\nexit\n", REPLConfig{})
	v := ctrl.Snapshot()
	if v.State != submission.Results || v.HumanAge != 44 {
		t.Errorf("snapshot = %+v", v)
	}
}
