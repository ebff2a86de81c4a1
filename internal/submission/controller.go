package submission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/dogyears/internal/ageconv"
	apperrors "github.com/agbru/dogyears/internal/errors"
	"github.com/agbru/dogyears/internal/fact"
	"github.com/agbru/dogyears/internal/logging"
	"github.com/agbru/dogyears/internal/metrics"
)

var (
	// ErrBusy is returned by Submit while a fetch is pending.
	ErrBusy = errors.New("submission already in progress")
	// ErrNotReady is returned by Submit while results are shown; Reset first.
	ErrNotReady = errors.New("results are displayed; reset before submitting again")
)

// Ticket identifies one accepted submission.
type Ticket struct {
	ID         string
	Generation uint64
	Age        float64
	Size       ageconv.Size
	HumanAge   int
}

// View is a point-in-time copy of the controller state.
type View struct {
	State      State
	ID         string
	Generation uint64
	Age        float64
	Size       ageconv.Size
	// HumanAge is meaningful in Loading and Results.
	HumanAge int
	// Fact is nil unless the fetch succeeded.
	Fact *fact.Fact
	// Err holds a FactUnavailableError after a failed fetch.
	Err error
	// Elapsed is the fact fetch latency once resolved.
	Elapsed time.Duration
}

// Controller runs the Form -> Loading -> Results cycle. It is safe for
// concurrent use.
type Controller struct {
	provider fact.Provider
	timeout  time.Duration
	notifier Notifier
	logger   logging.Logger
	recorder metrics.Recorder
	now      func() time.Time

	mu         sync.Mutex
	state      State
	generation uint64
	id         string
	age        float64
	size       ageconv.Size
	humanAge   int
	fact       *fact.Fact
	err        error
	startedAt  time.Time
	elapsed    time.Duration
	cancel     context.CancelFunc
}

// New creates a controller in the Form state.
func New(provider fact.Provider, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		timeout:  DefaultTimeout,
		notifier: NopNotifier{},
		logger:   logging.NopLogger{},
		recorder: metrics.NopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit accepts a submission, computes the human age and enters Loading.
// The caller is responsible for fetching a fact and passing the outcome to
// Resolve with the returned ticket.
func (c *Controller) Submit(age float64, size ageconv.Size) (Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Loading:
		return Ticket{}, ErrBusy
	case Results:
		return Ticket{}, ErrNotReady
	}

	c.clearLocked()
	c.generation++
	c.id = uuid.NewString()
	c.age = age
	c.size = size
	c.humanAge = ageconv.Convert(age, size)
	c.startedAt = c.now()
	c.state = Next(c.state, Submit)
	c.recorder.SubmissionStarted()

	c.logger.Debug("submission accepted",
		logging.String("submission", c.id),
		logging.Uint64("generation", c.generation),
		logging.Float64("age", age),
		logging.String("size", size.String()),
		logging.Int("human_age", c.humanAge))

	return Ticket{
		ID:         c.id,
		Generation: c.generation,
		Age:        age,
		Size:       size,
		HumanAge:   c.humanAge,
	}, nil
}

// Resolve applies a fetch outcome. It returns false, changing nothing, when
// the ticket is stale or the controller is not Loading.
func (c *Controller) Resolve(t Ticket, f fact.Fact, err error) bool {
	c.mu.Lock()
	if t.Generation != c.generation || c.state != Loading {
		current := c.generation
		c.mu.Unlock()
		c.recorder.SubmissionDiscarded()
		c.logger.Debug("stale fact outcome discarded",
			logging.String("submission", t.ID),
			logging.Uint64("generation", t.Generation),
			logging.Uint64("current_generation", current))
		return false
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.elapsed = c.now().Sub(c.startedAt)

	if err != nil {
		failure := apperrors.FactUnavailableError{Cause: err}
		c.err = failure
		c.state = Next(c.state, FactFailed)
		c.mu.Unlock()

		c.logger.Error("fact unavailable", err, logging.String("submission", t.ID))
		c.notifier.FactUnavailable(failure)
		return true
	}

	got := f
	c.fact = &got
	c.state = Next(c.state, FactResolved)
	c.mu.Unlock()

	c.logger.Debug("fact resolved", logging.String("submission", t.ID))
	return true
}

// Start submits and fetches a fact in the background. The returned channel
// yields the View after the outcome has been applied or discarded, then
// closes. The fetch is bounded by the configured timeout and cancelled by
// Reset.
func (c *Controller) Start(ctx context.Context, age float64, size ageconv.Size) (<-chan View, error) {
	t, err := c.Submit(age, size)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	c.mu.Lock()
	if c.generation == t.Generation {
		c.cancel = cancel
	} else {
		cancel()
	}
	c.mu.Unlock()

	out := make(chan View, 1)
	go func() {
		defer close(out)
		defer cancel()

		began := c.now()
		f, err := c.provider.Fetch(fetchCtx)
		c.recorder.FactFetched(c.now().Sub(began), err)
		if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = apperrors.TimeoutError{Operation: "fact fetch", Limit: c.timeout}
		}
		c.Resolve(t, f, err)
		out <- c.Snapshot()
	}()
	return out, nil
}

// Reset discards results, cancels any pending fetch and returns to Form.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.clearLocked()
	c.generation++
	c.state = Next(c.state, Reset)
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		State:      c.state,
		ID:         c.id,
		Generation: c.generation,
		Age:        c.age,
		Size:       c.size,
		HumanAge:   c.humanAge,
		Err:        c.err,
		Elapsed:    c.elapsed,
	}
	if c.fact != nil {
		f := *c.fact
		v.Fact = &f
	}
	return v
}

func (c *Controller) clearLocked() {
	c.id = ""
	c.age = 0
	c.size = ageconv.SizeUnknown
	c.humanAge = 0
	c.fact = nil
	c.err = nil
	c.startedAt = time.Time{}
	c.elapsed = 0
}
