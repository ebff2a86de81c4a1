package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/dogyears/internal/format"
	"github.com/agbru/dogyears/internal/submission"
)

const (
	countUpFrames   = 24
	countUpInterval = 40 * time.Millisecond
)

// ResultsModel renders a finished submission with a count-up of the
// human age.
type ResultsModel struct {
	view      submission.View
	displayed int
}

// NewResultsModel starts the count-up at zero.
func NewResultsModel(v submission.View) ResultsModel {
	return ResultsModel{view: v}
}

// Done reports whether the count-up has reached the human age.
func (r ResultsModel) Done() bool { return r.displayed >= r.view.HumanAge }

// Step advances the count-up by one frame.
func (r *ResultsModel) Step() {
	inc := (r.view.HumanAge + countUpFrames - 1) / countUpFrames
	if inc < 1 {
		inc = 1
	}
	r.displayed += inc
	if r.displayed > r.view.HumanAge {
		r.displayed = r.view.HumanAge
	}
}

func countUpCmd(gen uint64) tea.Cmd {
	return tea.Tick(countUpInterval, func(time.Time) tea.Msg {
		return countUpMsg{Generation: gen}
	})
}

// View renders the results card body.
func (r ResultsModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", labelStyle.Render(fmt.Sprintf("A %s dog aged %s is", r.view.Size.Label(), format.FormatDogAge(r.view.Age))))
	fmt.Fprintf(&b, "%s\n", humanAgeStyle.Render(format.FormatHumanAge(r.displayed)))
	if r.view.Fact != nil {
		fmt.Fprintf(&b, "\n%s\n%s\n", focusedLabelStyle.Render("Did you know?"), factStyle.Render(r.view.Fact.Text))
	}
	return b.String()
}
