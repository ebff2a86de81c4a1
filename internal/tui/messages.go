package tui

import "github.com/agbru/dogyears/internal/submission"

// FactMsg carries the final view of a submission.
type FactMsg struct {
	Generation uint64
	View       submission.View
}

// FactUnavailableMsg asks the model to show the failure toast.
type FactUnavailableMsg struct {
	Err error
}

// toastExpiredMsg hides the toast it was scheduled for.
type toastExpiredMsg struct {
	seq int
}

// countUpMsg advances the results animation.
type countUpMsg struct {
	Generation uint64
}
