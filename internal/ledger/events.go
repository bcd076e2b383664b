package ledger

import "fjacquet/finance-tracker/internal/models"

// EventKind identifies what changed the ledger.
type EventKind int

const (
	// Loaded is sent after Load replaced the records.
	Loaded EventKind = iota
	// Appended is sent after a record was appended and persisted.
	Appended
)

func (k EventKind) String() string {
	switch k {
	case Loaded:
		return "loaded"
	case Appended:
		return "appended"
	default:
		return "unknown"
	}
}

// Event is a snapshot of the ledger taken right after a change.
type Event struct {
	Kind    EventKind
	Records []models.Expense
	Summary models.Summary
}

// Listener receives ledger change notifications synchronously.
type Listener func(Event)

// Subscribe registers fn to be called after every change.
func (l *Ledger) Subscribe(fn Listener) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

func (l *Ledger) notify(kind EventKind) {
	if len(l.listeners) == 0 {
		return
	}
	event := Event{
		Kind:    kind,
		Records: l.Records(),
		Summary: l.Aggregate(),
	}
	for _, fn := range l.listeners {
		fn(event)
	}
}
