// Package playback defines the lifecycle of a live stream bound to a video
// surface as an explicit state machine. All transitions go through Transition,
// which consumes tagged events and returns the next status plus the side effect
// the caller must perform on the media engine.
package playback

// State is the coarse playback state shown to the viewer.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StatePlaying State = "playing"
	StateError   State = "error"
)

// User-visible messages.
const (
	MessageNetworkRetry = "Errore di rete. Riprovo..."
	MessageMediaRetry   = "Errore media. Riprovo..."
	MessageFatal        = "Errore fatale durante lo streaming"
	MessageUnsupported  = "HLS non supportato su questo browser"
)

// NativeHLSMimeType is the manifest type probed on surfaces with built-in HLS support.
const NativeHLSMimeType = "application/vnd.apple.mpegurl"

// Status is the observable playback status. Message is empty unless a
// transient retry notice or a terminal error is being shown.
type Status struct {
	State   State
	Message string
}

// Terminal reports whether no further automatic recovery will happen.
func (s Status) Terminal() bool {
	return s.State == StateError
}

// Action is the side effect requested by a transition.
type Action int

const (
	ActionNone Action = iota
	ActionRequestPlay
	ActionReloadManifest
	ActionRecoverMedia
)

func (a Action) String() string {
	switch a {
	case ActionRequestPlay:
		return "request_play"
	case ActionReloadManifest:
		return "reload_manifest"
	case ActionRecoverMedia:
		return "recover_media"
	default:
		return "none"
	}
}

// Transition computes the next status for ev and the action to perform.
//
// Bound and Unbound always apply. Once in StateError every other event is
// ignored, as are engine events while idle.
func Transition(cur Status, ev Event) (Status, Action) {
	switch ev.(type) {
	case Unbound:
		return Status{State: StateIdle}, ActionNone
	case Bound:
		return Status{State: StateLoading}, ActionNone
	}

	if cur.State == StateError || cur.State == StateIdle {
		return cur, ActionNone
	}

	switch e := ev.(type) {
	case Unsupported:
		return Status{State: StateError, Message: MessageUnsupported}, ActionNone

	case ManifestParsed, MetadataLoaded:
		return Status{State: StatePlaying}, ActionRequestPlay

	case AutoplayBlocked:
		return cur, ActionNone

	case EngineError:
		if !e.Fatal {
			return cur, ActionNone
		}
		switch e.Kind {
		case ErrorNetwork:
			return Status{State: StateLoading, Message: MessageNetworkRetry}, ActionReloadManifest
		case ErrorMedia:
			return Status{State: StateLoading, Message: MessageMediaRetry}, ActionRecoverMedia
		default:
			return Status{State: StateError, Message: MessageFatal}, ActionNone
		}
	}

	return cur, ActionNone
}
