package plugin

// State is the lifecycle state of a plugin. Transitions are strictly
// sequential and occur exactly once each.
type State int

// Plugin lifecycle states.
const (
	// StateConstructed - the plugin exists but has not been configured.
	StateConstructed State = iota

	// StateConfigured - Configure ran and validated at registration.
	StateConfigured

	// StatePreScriptInit - InitPreScript has completed.
	StatePreScriptInit

	// StatePostScriptInit - InitPostScript has completed.
	StatePostScriptInit

	// StateDone - Done has run; the plugin receives no further calls.
	StateDone
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateConfigured:
		return "configured"
	case StatePreScriptInit:
		return "pre-script-initialized"
	case StatePostScriptInit:
		return "post-script-initialized"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
