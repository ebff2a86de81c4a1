package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/dogyears/internal/submission"
)

func TestResultsModel_CountUp(t *testing.T) {
	tests := []struct {
		humanAge  int
		maxFrames int
	}{
		{0, 0},
		{12, 12},
		{44, countUpFrames + 1},
		{229, countUpFrames + 1},
	}
	for _, tt := range tests {
		r := NewResultsModel(submission.View{HumanAge: tt.humanAge})
		frames := 0
		for !r.Done() {
			r.Step()
			frames++
			if frames > tt.maxFrames {
				t.Fatalf("human age %d: count-up took more than %d frames", tt.humanAge, tt.maxFrames)
			}
		}
		if r.displayed != tt.humanAge {
			t.Errorf("displayed = %d, want %d", r.displayed, tt.humanAge)
		}
	}
}

func TestProgramRef_SendWithoutProgram(t *testing.T) {
	ref := &programRef{}
	ref.Send(FactUnavailableMsg{}) // must not panic
}

func TestWaitForViewCmd(t *testing.T) {
	ch := make(chan submission.View, 1)
	ch <- submission.View{State: submission.Results, HumanAge: 7}
	close(ch)

	msg, ok := waitForViewCmd(ch, 3)().(FactMsg)
	if !ok || msg.Generation != 3 || msg.View.HumanAge != 7 {
		t.Errorf("msg = %#v", msg)
	}

	empty := make(chan submission.View)
	close(empty)
	if got := waitForViewCmd(empty, 1)(); got != nil {
		t.Errorf("closed channel should yield nil, got %#v", got)
	}
	var _ tea.Cmd = waitForViewCmd(ch, 0)
}
