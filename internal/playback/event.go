package playback

// Event is a tagged input to Transition. The set is closed.
type Event interface {
	isEvent()
}

// ErrorKind classifies engine errors.
type ErrorKind string

const (
	ErrorNetwork ErrorKind = "network"
	ErrorMedia   ErrorKind = "media"
	ErrorOther   ErrorKind = "other"
)

// Bound marks the start of a new session on a surface.
type Bound struct{}

// Unbound marks the end of the current session.
type Unbound struct{}

// Unsupported is raised when neither the engine nor the surface can play HLS.
type Unsupported struct{}

// ManifestParsed is emitted by a software engine once the manifest is usable.
type ManifestParsed struct {
	Levels int
}

// MetadataLoaded is emitted by a surface playing HLS natively.
type MetadataLoaded struct{}

// AutoplayBlocked reports that the platform refused to start playback unattended.
type AutoplayBlocked struct {
	Err error
}

// EngineError is an error reported by the media engine.
type EngineError struct {
	Kind    ErrorKind
	Fatal   bool
	Details string
}

func (Bound) isEvent()           {}
func (Unbound) isEvent()         {}
func (Unsupported) isEvent()     {}
func (ManifestParsed) isEvent()  {}
func (MetadataLoaded) isEvent()  {}
func (AutoplayBlocked) isEvent() {}
func (EngineError) isEvent()     {}

// Notifier delivers events from an engine or surface to the session that owns it.
type Notifier func(Event)
