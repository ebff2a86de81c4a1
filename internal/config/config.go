package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/dogyears/internal/ageconv"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/fact"
	"github.com/agbru/dogyears/internal/submission"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DOGYEARS_"

// Default values.
const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

// Mode is the input surface selected by the configuration.
type Mode int

const (
	ModeOneShot Mode = iota
	ModeREPL
	ModeTUI
	ModeServe
	ModeCompletion
	ModeVersion
)

func (m Mode) String() string {
	switch m {
	case ModeOneShot:
		return "one-shot"
	case ModeREPL:
		return "repl"
	case ModeTUI:
		return "tui"
	case ModeServe:
		return "serve"
	case ModeCompletion:
		return "completion"
	case ModeVersion:
		return "version"
	default:
		return "unknown"
	}
}

// AppConfig holds the parsed application configuration.
type AppConfig struct {
	Age    float64
	HasAge bool
	// SizeName is the raw --size text; Size is its parsed value.
	SizeName string
	Size     ageconv.Size

	Provider    string
	Model       string
	APIKey      string
	FactsFile   string
	Seed        uint64
	FactTimeout time.Duration

	TUI   bool
	REPL  bool
	Serve bool
	Addr  string

	Quiet    bool
	JSON     bool
	NoColor  bool
	LogLevel string

	Completion  string
	ShowVersion bool
}

// Mode reports which surface to run.
func (c AppConfig) Mode() Mode {
	switch {
	case c.ShowVersion:
		return ModeVersion
	case c.Completion != "":
		return ModeCompletion
	case c.Serve:
		return ModeServe
	case c.TUI:
		return ModeTUI
	case c.REPL, !c.HasAge:
		return ModeREPL
	default:
		return ModeOneShot
	}
}

// FactOptions converts the provider settings for fact.New.
func (c AppConfig) FactOptions() fact.Options {
	return fact.Options{
		Kind:      c.Provider,
		APIKey:    c.APIKey,
		Model:     c.Model,
		FactsFile: c.FactsFile,
		Seed:      c.Seed,
	}
}

// ParseConfig parses args (without the program name) and applies
// environment overrides. flag.ErrHelp is returned unchanged for --help.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.Float64Var(&config.Age, "age", 0, "Dog age in years (decimals allowed).")
	fs.StringVar(&config.SizeName, "size", "", "Dog size: small, medium or large.")
	fs.StringVar(&config.Provider, "provider", "", "Fact provider: gemini or static (default: gemini when an API key is set).")
	fs.StringVar(&config.Model, "model", fact.DefaultGeminiModel, "Gemini model name.")
	fs.StringVar(&config.APIKey, "api-key", "", "Gemini API key (default: $GEMINI_API_KEY or $GOOGLE_API_KEY).")
	fs.StringVar(&config.FactsFile, "facts-file", "", "YAML file of facts for the static provider.")
	fs.Uint64Var(&config.Seed, "seed", 0, "Seed for static fact selection (0 = random).")
	fs.DurationVar(&config.FactTimeout, "fact-timeout", submission.DefaultTimeout, "Maximum time to wait for a fact.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive terminal UI.")
	fs.BoolVar(&config.REPL, "repl", false, "Start the interactive prompt.")
	fs.BoolVar(&config.Serve, "serve", false, "Run the HTTP API server.")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address for --serve.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.JSON, "json", false, "Print the result as JSON.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script: bash, zsh, fish or powershell.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Show version information.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Shorthand for --version.")
	fs.Usage = func() { printUsage(fs, programName) }

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}
	config.HasAge = isFlagSet(fs, "age")

	applyEnvOverrides(&config, fs)
	applyAPIKeyFallback(&config)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// applyAPIKeyFallback reads the conventional Gemini key variables and picks
// the provider when none was requested.
func applyAPIKeyFallback(c *AppConfig) {
	if c.APIKey == "" {
		for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
			if v := os.Getenv(key); v != "" {
				c.APIKey = v
				break
			}
		}
	}
	if c.Provider == "" {
		if c.APIKey != "" {
			c.Provider = fact.KindGemini
		} else {
			c.Provider = fact.KindStatic
		}
	}
	c.Provider = strings.ToLower(c.Provider)
}

// Validate checks the configuration for consistency and parses the size.
func (c *AppConfig) Validate() error {
	if c.FactTimeout <= 0 {
		return apperrors.NewConfigError("fact timeout must be positive, got %s", c.FactTimeout)
	}
	switch c.Provider {
	case fact.KindGemini:
		if c.APIKey == "" {
			return apperrors.NewConfigError("the gemini provider requires --api-key or GEMINI_API_KEY")
		}
	case fact.KindStatic:
	default:
		return apperrors.NewConfigError("unknown provider %q (accepted values: %s, %s)", c.Provider, fact.KindGemini, fact.KindStatic)
	}
	if !validLogLevel(c.LogLevel) {
		return apperrors.NewConfigError("invalid log level %q (accepted values: debug, info, warn, error)", c.LogLevel)
	}

	modes := 0
	for _, on := range []bool{c.TUI, c.REPL, c.Serve} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("--tui, --repl and --serve are mutually exclusive")
	}
	if modes == 1 && c.HasAge {
		return apperrors.NewConfigError("--age cannot be combined with an interactive mode or --serve")
	}
	if c.Quiet && c.JSON {
		return apperrors.NewConfigError("--quiet and --json are mutually exclusive")
	}

	if c.SizeName != "" {
		size, err := ageconv.ParseSize(c.SizeName)
		if err != nil {
			return err
		}
		c.Size = size
	}
	if c.HasAge && c.Mode() == ModeOneShot {
		if err := ageconv.Validate(c.Age, c.Size); err != nil {
			return err
		}
	}
	return nil
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [options]\n\n", programName)
	fmt.Fprintln(out, "Converts a dog's age to human years and shows a dog fact.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintf(out, "  %s --age 5 --size large\n", programName)
	fmt.Fprintf(out, "  %s --tui\n", programName)
	fmt.Fprintf(out, "  %s --serve --addr :9090\n\n", programName)
	fmt.Fprintln(out, "Options:")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nEnvironment variables (%s*) override defaults but not flags.\n", EnvPrefix)
}
