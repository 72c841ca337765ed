package ports

import "context"

const (
	// EventThemeImported is emitted when an import yields a sanitized theme.
	EventThemeImported = "theme.imported"
	// EventThemeImportRejected is emitted when an import is refused or its read fails.
	EventThemeImportRejected = "theme.import_rejected"
	// EventThemeExported is emitted after an envelope is written to its target.
	EventThemeExported = "theme.exported"
	// EventThemeAudited is emitted after an accessibility audit completes.
	EventThemeAudited = "theme.audited"
)

// DomainEvent is something a collaborator (persistence, UI) may want to react
// to, such as a theme passing the import gate.
type DomainEvent interface {
	EventType() string
	Payload() map[string]interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler has run. Implementations
// must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes one event. A returned error is logged and does not
// stop delivery to the remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription is a registered handler; Unsubscribe stops delivery.
type Subscription interface {
	Unsubscribe()
}

// Event is the plain DomainEvent used by themekit's producers.
type Event struct {
	Type string
	Data map[string]interface{}
}

// NewEvent builds an Event of eventType carrying data.
func NewEvent(eventType string, data map[string]interface{}) Event {
	return Event{Type: eventType, Data: data}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() map[string]interface{} { return e.Data }
