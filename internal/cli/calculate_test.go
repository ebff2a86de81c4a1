package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/dogyears/internal/ageconv"
	"github.com/agbru/dogyears/internal/cli/mocks"
	"github.com/agbru/dogyears/internal/fact"
	"github.com/agbru/dogyears/internal/submission"
	"github.com/agbru/dogyears/internal/ui"
)

func useNoColor(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func useMockSpinner(t *testing.T, expectUse bool) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sp := mocks.NewMockSpinner(ctrl)
	if expectUse {
		gomock.InOrder(
			sp.EXPECT().UpdateSuffix(gomock.Any()),
			sp.EXPECT().Start(),
			sp.EXPECT().Stop(),
		)
	}
	prev := newSpinner
	newSpinner = func(io.Writer) Spinner { return sp }
	t.Cleanup(func() { newSpinner = prev })
}

func staticFact(text string) fact.Provider {
	return fact.ProviderFunc(func(context.Context) (fact.Fact, error) {
		return fact.Fact{Text: text}, nil
	})
}

func TestCalculate_Decorated(t *testing.T) {
	useNoColor(t)
	useMockSpinner(t, true)

	ctrl := submission.New(staticFact("Dogs have three eyelids."))
	var out bytes.Buffer
	v, err := Calculate(context.Background(), ctrl, 5, ageconv.Large, OutputConfig{}, &out)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if v.HumanAge != 44 || v.State != submission.Results {
		t.Errorf("view = %+v", v)
	}
	for _, want := range []string{"large dog is 5 years old", "44 human years", "Dogs have three eyelids."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCalculate_Quiet(t *testing.T) {
	useMockSpinner(t, false)

	ctrl := submission.New(staticFact("x"))
	var out bytes.Buffer
	if _, err := Calculate(context.Background(), ctrl, 10, ageconv.Small, OutputConfig{Quiet: true}, &out); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got := out.String(); got != "56\n" {
		t.Errorf("quiet output = %q, want %q", got, "56\n")
	}
}

func TestCalculate_JSONWithFactFailure(t *testing.T) {
	useMockSpinner(t, false)

	failing := fact.ProviderFunc(func(context.Context) (fact.Fact, error) {
		return fact.Fact{}, errors.New("quota exceeded")
	})
	var warnings bytes.Buffer
	ctrl := submission.New(failing, submission.WithNotifier(Notifier{Out: &warnings}))

	var out bytes.Buffer
	if _, err := Calculate(context.Background(), ctrl, 2, ageconv.Medium, OutputConfig{JSON: true}, &out); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	var got Result
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if got.HumanAge != 24 || got.Size != "medium" || got.Fact != "" || !strings.Contains(got.FactError, "quota exceeded") {
		t.Errorf("result = %+v", got)
	}
	if !strings.Contains(warnings.String(), "quota exceeded") {
		t.Errorf("notifier output = %q", warnings.String())
	}
}

func TestCalculate_ContextCanceled(t *testing.T) {
	useMockSpinner(t, false)

	blocking := fact.ProviderFunc(func(ctx context.Context) (fact.Fact, error) {
		<-ctx.Done()
		return fact.Fact{}, ctx.Err()
	})
	ctrl := submission.New(blocking)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Calculate(ctx, ctrl, 3, ageconv.Small, OutputConfig{Quiet: true}, io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if s := ctrl.State(); s != submission.Form {
		t.Errorf("state = %v, want form after cancellation", s)
	}
}

func TestCalculate_RejectsBusyController(t *testing.T) {
	ctrl := submission.New(staticFact("x"))
	if _, err := ctrl.Submit(1, ageconv.Small); err != nil {
		t.Fatal(err)
	}
	if _, err := Calculate(context.Background(), ctrl, 2, ageconv.Small, OutputConfig{Quiet: true}, io.Discard); !errors.Is(err, submission.ErrBusy) {
		t.Errorf("err = %v, want ErrBusy", err)
	}
}
