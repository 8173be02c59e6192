package ports

import "context"

const (
	// EventTreeGenerated is emitted after a tree, its colours and its name
	// have been produced.
	EventTreeGenerated = "tree.generated"
	// EventTreeRendered is emitted after a tree has been drawn onto a surface.
	EventTreeRendered = "tree.rendered"
	// EventGenerationFailed is emitted when generation stops with an error.
	EventGenerationFailed = "tree.failed"
	// EventEntrySaved is emitted when an entry is written to disk.
	EventEntrySaved = "entry.saved"
)

// DomainEvent represents a significant occurrence within the field guide.
// Events carry structured payloads that subscribers can use for logging, UI
// updates, or history.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// FieldPayload is implemented by payloads that know how to flatten
// themselves into logger key/value pairs.
type FieldPayload interface {
	LogFields() []interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned
// so publishers can log them and keep delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}
