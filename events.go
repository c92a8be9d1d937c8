package gaze

// Target identifies the object that is gazed at. Targets are compared using ==,
// values that are not comparable are compared by their contents.
// Pointer handles are the usual choice. A nil Target means that nothing
// is gazed at.
type Target = any

type EventKind uint8

const (
	EventEnter EventKind = iota + 1
	EventExit
	EventClick
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "Enter"
	case EventExit:
		return "Exit"
	case EventClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is delivered to a Notifier whenever the pointer enters, exits or clicks
// an interactive target.
type Event struct {
	Kind   EventKind
	Target Target

	// Hit is the raycast result of the tick that produced this event.
	// Exit events always carry a zero Hit.
	Hit Hit
}

// Notifier receives the events of a Controller. Delivery is fire and forget,
// the controller does not observe the outcome.
type Notifier interface {
	Notify(event Event)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(event Event)

func (fn NotifierFunc) Notify(event Event) {
	fn(event)
}

// Notifiers fans out each event to all notifiers, in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(event Event) {
	for _, n := range ns {
		n.Notify(event)
	}
}

type PointerEnterHandler interface {
	OnPointerEnter(event Event)
}

type PointerExitHandler interface {
	OnPointerExit(event Event)
}

type PointerClickHandler interface {
	OnPointerClick(event Event)
}

// Dispatcher delivers events to the target itself, if the target implements
// the matching handler interface. Targets without the capability are skipped.
type Dispatcher struct{}

func (Dispatcher) Notify(event Event) {
	switch event.Kind {
	case EventEnter:
		if h, ok := event.Target.(PointerEnterHandler); ok {
			h.OnPointerEnter(event)
		}

	case EventExit:
		if h, ok := event.Target.(PointerExitHandler); ok {
			h.OnPointerExit(event)
		}

	case EventClick:
		if h, ok := event.Target.(PointerClickHandler); ok {
			h.OnPointerClick(event)
		}
	}
}
