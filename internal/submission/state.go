package submission

// State is the controller's position in the submission lifecycle.
type State int

const (
	// Form accepts a new submission.
	Form State = iota
	// Loading waits for the fact fetch.
	Loading
	// Results holds the human age and, when available, a fact.
	Results
)

func (s State) String() string {
	switch s {
	case Form:
		return "form"
	case Loading:
		return "loading"
	case Results:
		return "results"
	default:
		return "unknown"
	}
}

// Event drives state transitions.
type Event int

const (
	Submit Event = iota
	FactResolved
	FactFailed
	Reset
)

func (e Event) String() string {
	switch e {
	case Submit:
		return "submit"
	case FactResolved:
		return "fact-resolved"
	case FactFailed:
		return "fact-failed"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Next returns the state reached from s on e. Pairs with no transition
// leave the state unchanged.
func Next(s State, e Event) State {
	switch {
	case e == Reset:
		return Form
	case s == Form && e == Submit:
		return Loading
	case s == Loading && (e == FactResolved || e == FactFailed):
		return Results
	default:
		return s
	}
}
