package plugin

// BifKind classifies a script-visible item a plugin contributes.
type BifKind int

// Item kinds. Values start at 1 so the zero value is not a valid kind.
const (
	BifFunction BifKind = iota + 1
	BifEvent
	BifConstant
	BifGlobal
	BifType
)

// String implements fmt.Stringer.
func (k BifKind) String() string {
	switch k {
	case BifFunction:
		return "Function"
	case BifEvent:
		return "Event"
	case BifConstant:
		return "Constant"
	case BifGlobal:
		return "Global"
	case BifType:
		return "Type"
	default:
		return "Unknown"
	}
}

// BifItem describes one script-visible item a plugin provides. It is
// informational only: recording an item here does not make the underlying
// symbol resolvable, that is the item registrar's job.
type BifItem struct {
	ID   string // fully qualified script-level name
	Kind BifKind
}

// Component is an opaque capability unit owned by a plugin. The extension
// core stores and enumerates components but never interprets them; their
// meaning belongs to the surrounding analysis and I/O subsystems.
type Component interface {
	// Name returns the component's identifier for listings.
	Name() string
}
