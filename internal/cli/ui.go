//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate is the frame interval of the loading spinner.
const SpinnerRefreshRate = 120 * time.Millisecond

// Spinner abstracts the terminal spinner so tests can observe it.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[14], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}
