package cli

import (
	"fmt"
	"io"

	"github.com/agbru/dogyears/internal/submission"
	"github.com/agbru/dogyears/internal/ui"
)

// Notifier prints fact failures as a one-line warning.
type Notifier struct {
	Out io.Writer
}

var _ submission.Notifier = Notifier{}

// FactUnavailable implements submission.Notifier.
func (n Notifier) FactUnavailable(err error) {
	fmt.Fprintf(n.Out, "%s! Couldn't fetch a dog fact: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
}
