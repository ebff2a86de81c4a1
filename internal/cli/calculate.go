package cli

import (
	"context"
	"io"

	"github.com/agbru/dogyears/internal/ageconv"
	"github.com/agbru/dogyears/internal/submission"
)

// Calculate runs one submission to completion and prints the result. The
// spinner is shown only for the decorated output style. A fact failure is
// not an error; ctx cancellation is.
func Calculate(ctx context.Context, ctrl *submission.Controller, age float64, size ageconv.Size, config OutputConfig, out io.Writer) (submission.View, error) {
	views, err := ctrl.Start(ctx, age, size)
	if err != nil {
		return submission.View{}, err
	}

	var sp Spinner
	if !config.Quiet && !config.JSON {
		sp = newSpinner(out)
		sp.UpdateSuffix(" Fetching a dog fact...")
		sp.Start()
	}
	stop := func() {
		if sp != nil {
			sp.Stop()
		}
	}

	var v submission.View
	select {
	case v = <-views:
	case <-ctx.Done():
		ctrl.Reset()
		<-views
	}
	stop()

	if err := ctx.Err(); err != nil {
		ctrl.Reset()
		return submission.View{}, err
	}
	return v, DisplayResultWithConfig(out, v, config)
}
