package submission

// Notifier surfaces a failed fact fetch to the user, typically as a
// transient toast. Implementations must return promptly.
type Notifier interface {
	FactUnavailable(err error)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(err error)

// FactUnavailable calls f.
func (f NotifierFunc) FactUnavailable(err error) { f(err) }

// NopNotifier ignores notifications.
type NopNotifier struct{}

func (NopNotifier) FactUnavailable(error) {}
