// Package hook defines the closed set of extension points a plugin may
// attach to, and the tagged argument cells that carry heterogeneous hook
// arguments through the generic dispatch path.
package hook

// Type identifies one extension point in the host's processing pipeline.
// The set is closed: new points require extending this enumeration.
type Type int

// Extension points, plus the two meta points that observe every dispatch.
const (
	// LoadFile fires before the host loads an input file. Claim-style
	// with a three-way outcome.
	LoadFile Type = iota

	// CallFunction fires before the interpreter executes a callable.
	// Claim-style; first handled result wins.
	CallFunction

	// QueueEvent fires before the event engine queues an event.
	// Claim-style; a plugin may take the event over.
	QueueEvent

	// DrainEvents fires while the event engine drains its queue.
	// Notification-style.
	DrainEvents

	// UpdateNetworkTime fires when network time advances.
	// Notification-style.
	UpdateNetworkTime

	// ObjDtor fires when a host object registered for teardown
	// notification is destroyed. Notification-style.
	ObjDtor

	// MetaPre fires immediately before every dispatch of every point.
	MetaPre

	// MetaPost fires immediately after every dispatch of every point.
	MetaPost

	// NumTypes is the end marker; not a dispatchable point.
	NumTypes
)

var typeNames = [NumTypes]string{
	LoadFile:          "load_file",
	CallFunction:      "call_function",
	QueueEvent:        "queue_event",
	DrainEvents:       "drain_events",
	UpdateNetworkTime: "update_network_time",
	ObjDtor:           "obj_dtor",
	MetaPre:           "meta_pre",
	MetaPost:          "meta_post",
}

// Name returns a readable name for the extension point.
func (t Type) Name() string {
	if t < 0 || t >= NumTypes {
		return "unknown"
	}
	return typeNames[t]
}

// String implements fmt.Stringer.
func (t Type) String() string { return t.Name() }
