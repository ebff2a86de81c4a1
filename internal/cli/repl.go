package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/dogyears/internal/ageconv"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/format"
	"github.com/agbru/dogyears/internal/submission"
	"github.com/agbru/dogyears/internal/ui"
)

// REPLConfig holds settings for an interactive session.
type REPLConfig struct {
	// DefaultSize is used when "calc" is given an age only.
	DefaultSize ageconv.Size
	// ProviderName is shown by the status command.
	ProviderName string
	Output       OutputConfig
}

// REPL is an interactive age-conversion prompt driving one controller.
type REPL struct {
	config REPLConfig
	ctrl   *submission.Controller
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a session reading stdin and writing stdout.
func NewREPL(ctrl *submission.Controller, config REPLConfig) *REPL {
	return &REPL{
		config: config,
		ctrl:   ctrl,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the prompt until exit, EOF or ctx cancellation.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(r.out, ui.Paint(ui.ColorGreen(), "dog> "))

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(ctx, line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s🐕 Dog Years - Interactive Mode%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sFind out how old your dog is in human years.%s\n\n", ui.ColorGrey(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	y, rst := ui.ColorYellow(), ui.ColorReset()
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), rst)
	fmt.Fprintf(r.out, "  %s<age> [size]%s      - Convert, e.g. \"5 large\"\n", y, rst)
	fmt.Fprintf(r.out, "  %scalc <age> [size]%s - Same as above\n", y, rst)
	fmt.Fprintf(r.out, "  %ssize <size>%s       - Change the default size (%s)\n", y, rst, sizeList())
	fmt.Fprintf(r.out, "  %sreset%s             - Clear the last result\n", y, rst)
	fmt.Fprintf(r.out, "  %sstatus%s            - Show the current state\n", y, rst)
	fmt.Fprintf(r.out, "  %shelp%s              - Show this help\n", y, rst)
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s       - Leave\n", y, rst, y, rst)
}

func sizeList() string {
	names := make([]string, 0, 3)
	for _, s := range ageconv.Sizes() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

// processCommand executes one line. It returns false when the session
// should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "calc", "c":
		r.cmdCalc(ctx, args)
	case "size", "s":
		r.cmdSize(args)
	case "reset", "r":
		r.ctrl.Reset()
		fmt.Fprintln(r.out, "Form cleared.")
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, err := ageconv.ParseAge(cmd); err == nil {
			r.cmdCalc(ctx, parts)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) cmdCalc(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: calc <age> [size]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	sizeText := r.config.DefaultSize.String()
	if !r.config.DefaultSize.Valid() {
		sizeText = ""
	}
	if len(args) > 1 {
		sizeText = args[1]
	}

	age, size, err := ageconv.ParseInput(args[0], sizeText)
	if err != nil {
		r.printValidation(err)
		return
	}

	// A new calculation replaces whatever result is on screen.
	if r.ctrl.State() != submission.Form {
		r.ctrl.Reset()
	}
	if _, err := Calculate(ctx, r.ctrl, age, size, r.config.Output, r.out); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
}

func (r *REPL) cmdSize(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: size <%s>%s\n", ui.ColorRed(), strings.ReplaceAll(sizeList(), ", ", "|"), ui.ColorReset())
		return
	}
	size, err := ageconv.ParseSize(args[0])
	if err != nil {
		r.printValidation(err)
		return
	}
	r.config.DefaultSize = size
	fmt.Fprintf(r.out, "Default size: %s%s%s\n", ui.ColorGreen(), size.Label(), ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	v := r.ctrl.Snapshot()
	c, rst := ui.ColorCyan(), ui.ColorReset()
	fmt.Fprintf(r.out, "\n%sCurrent state:%s\n", ui.ColorBold(), rst)
	fmt.Fprintf(r.out, "  State:        %s%s%s\n", c, v.State, rst)
	if r.config.DefaultSize.Valid() {
		fmt.Fprintf(r.out, "  Default size: %s%s%s\n", c, r.config.DefaultSize.Label(), rst)
	}
	if r.config.ProviderName != "" {
		fmt.Fprintf(r.out, "  Provider:     %s%s%s\n", c, r.config.ProviderName, rst)
	}
	if v.State != submission.Form {
		fmt.Fprintf(r.out, "  Last input:   %s%s, %s%s\n", c, format.FormatDogAge(v.Age), v.Size, rst)
		fmt.Fprintf(r.out, "  Human age:    %s%d%s\n", c, v.HumanAge, rst)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) printValidation(err error) {
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), verr.Message, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}
