package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/agbru/dogyears/internal/config"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/fact"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AGE", "SEED", "FACT_TIMEOUT", "SIZE", "PROVIDER", "MODEL", "API_KEY", "FACTS_FILE",
		"ADDR", "LOG_LEVEL", "QUIET", "JSON", "NO_COLOR", "TUI", "REPL", "SERVE",
	} {
		t.Setenv(config.EnvPrefix+key, "")
	}
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("NO_COLOR", "1")
}

func staticFactory(text string) AppOption {
	return WithProviderFactory(func(context.Context, fact.Options) (fact.Provider, error) {
		return fact.ProviderFunc(func(context.Context) (fact.Fact, error) {
			return fact.Fact{Text: text}, nil
		}), nil
	})
}

func run(t *testing.T, args []string, opts ...AppOption) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	application, err := New(append([]string{"dogyears"}, args...), &errOut, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", args, err)
	}
	code := application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestNew_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name     string
		args     []string
		wantHelp bool
		wantCode int
	}{
		{"help", []string{"--help"}, true, apperrors.ExitErrorGeneric},
		{"bad size", []string{"--age", "3", "--size", "giant"}, false, apperrors.ExitErrorConfig},
		{"conflicting modes", []string{"--tui", "--serve"}, false, apperrors.ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			_, err := New(append([]string{"dogyears"}, tt.args...), &errOut)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := IsHelpError(err); got != tt.wantHelp {
				t.Errorf("IsHelpError = %v, want %v", got, tt.wantHelp)
			}
			if !tt.wantHelp {
				if got := apperrors.ExitCode(err); got != tt.wantCode {
					t.Errorf("ExitCode = %d, want %d", got, tt.wantCode)
				}
				if !strings.Contains(errOut.String(), "Error:") {
					t.Errorf("stderr should explain the error, got %q", errOut.String())
				}
			}
		})
	}
}

func TestRun_OneShot(t *testing.T) {
	clearEnv(t)

	t.Run("quiet", func(t *testing.T) {
		code, out, _ := run(t, []string{"--age", "5", "--size", "large", "-q"}, staticFactory("unused"))
		if code != apperrors.ExitSuccess || strings.TrimSpace(out) != "44" {
			t.Errorf("code %d, out %q", code, out)
		}
	})

	t.Run("json", func(t *testing.T) {
		code, out, _ := run(t, []string{"--age", "10", "--size", "small", "--json"}, staticFactory("Dogs dream."))
		if code != apperrors.ExitSuccess {
			t.Fatalf("code = %d", code)
		}
		var got struct {
			HumanAge int    `json:"humanAge"`
			Size     string `json:"size"`
			Fact     string `json:"fact"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if got.HumanAge != 56 || got.Size != "small" || got.Fact != "Dogs dream." {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"dogyears", "--age", "31", "--size", "large"}, &errOut)
		if err == nil || apperrors.ExitCode(err) != apperrors.ExitErrorConfig {
			t.Errorf("err = %v, want a config exit code", err)
		}
	})
}

func TestRun_ProviderError(t *testing.T) {
	clearEnv(t)
	failing := WithProviderFactory(func(context.Context, fact.Options) (fact.Provider, error) {
		return nil, apperrors.NewConfigError("facts file missing")
	})
	code, _, errOut := run(t, []string{"--age", "1", "--size", "small", "-q"}, failing)
	if code != apperrors.ExitErrorConfig {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errOut, "facts file missing") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRun_REPL(t *testing.T) {
	clearEnv(t)
	in := strings.NewReader("2 medium\nexit\n")
	code, out, _ := run(t, []string{"--repl", "-q"}, staticFactory("ok"), WithInput(in))
	if code != apperrors.ExitSuccess {
		t.Fatalf("code = %d", code)
	}
	for _, want := range []string{"24", "Goodbye!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_DefaultsToREPL(t *testing.T) {
	clearEnv(t)
	code, out, _ := run(t, []string{"-q"}, staticFactory("ok"), WithInput(strings.NewReader("")))
	if code != apperrors.ExitSuccess || !strings.Contains(out, "help") {
		t.Errorf("code %d, out %q", code, out)
	}
}

func TestRun_VersionAndCompletion(t *testing.T) {
	clearEnv(t)
	factoryCalled := false
	tracking := WithProviderFactory(func(context.Context, fact.Options) (fact.Provider, error) {
		factoryCalled = true
		return nil, errors.New("unexpected")
	})

	code, out, _ := run(t, []string{"--version"}, tracking)
	if code != apperrors.ExitSuccess || !strings.Contains(out, "dogyears "+Version) {
		t.Errorf("version: code %d, out %q", code, out)
	}

	code, out, _ = run(t, []string{"--completion", "bash"}, tracking)
	if code != apperrors.ExitSuccess || !strings.Contains(out, "complete") {
		t.Errorf("completion: code %d, out %q", code, out)
	}
	if factoryCalled {
		t.Error("version and completion must not build a provider")
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"--version"}, true},
		{[]string{"--age", "3", "-V"}, true},
		{[]string{"--", "--version"}, false},
		{[]string{"--age", "3"}, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	for _, want := range []string{"dogyears", "commit:", "go:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("PrintVersion output missing %q", want)
		}
	}
	PrintVersion(io.Discard)
}
