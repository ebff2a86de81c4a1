package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agbru/dogyears/internal/format"
	"github.com/agbru/dogyears/internal/submission"
	"github.com/agbru/dogyears/internal/ui"
)

// OutputConfig selects how a result is printed.
type OutputConfig struct {
	// Quiet prints only the human age.
	Quiet bool
	// JSON prints a Result object.
	JSON bool
}

// Result is the JSON form of a finished submission.
type Result struct {
	ID        string  `json:"id"`
	Age       float64 `json:"age"`
	Size      string  `json:"size"`
	HumanAge  int     `json:"humanAge"`
	Fact      string  `json:"fact,omitempty"`
	FactError string  `json:"factError,omitempty"`
}

// NewResult converts a view to its JSON form.
func NewResult(v submission.View) Result {
	r := Result{
		ID:       v.ID,
		Age:      v.Age,
		Size:     v.Size.String(),
		HumanAge: v.HumanAge,
	}
	if v.Fact != nil {
		r.Fact = v.Fact.Text
	}
	if v.Err != nil {
		r.FactError = v.Err.Error()
	}
	return r
}

// FormatQuietResult returns the human age alone, for scripts.
func FormatQuietResult(v submission.View) string {
	return fmt.Sprintf("%d", v.HumanAge)
}

// DisplayResult prints the decorated result block.
func DisplayResult(out io.Writer, v submission.View) {
	fmt.Fprintf(out, "\n%sYour %s dog is %s old.%s\n",
		ui.ColorBold(), v.Size.String(), format.FormatDogAge(v.Age), ui.ColorReset())
	fmt.Fprintf(out, "In human years that's %s.\n",
		ui.Paint(ui.ColorGreen(), format.FormatHumanAge(v.HumanAge)))

	switch {
	case v.Fact != nil:
		fmt.Fprintf(out, "\n%sDid you know?%s %s\n", ui.ColorCyan(), ui.ColorReset(), v.Fact.Text)
	case v.Err != nil:
		fmt.Fprintf(out, "\n%sNo dog fact this time.%s\n", ui.ColorGrey(), ui.ColorReset())
	}
	if v.Elapsed > 0 {
		fmt.Fprintf(out, "%sfact fetched in %s%s\n", ui.ColorGrey(), format.FormatExecutionDuration(v.Elapsed), ui.ColorReset())
	}
	fmt.Fprintln(out)
}

// DisplayJSON writes v as an indented Result object.
func DisplayJSON(out io.Writer, v submission.View) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(NewResult(v))
}

// DisplayResultWithConfig prints v in the configured style.
func DisplayResultWithConfig(out io.Writer, v submission.View, config OutputConfig) error {
	switch {
	case config.JSON:
		return DisplayJSON(out, v)
	case config.Quiet:
		_, err := fmt.Fprintln(out, FormatQuietResult(v))
		return err
	default:
		DisplayResult(out, v)
		return nil
	}
}
