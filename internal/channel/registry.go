package channel

// Registry is an ordered, immutable set of channels indexed by id.
type Registry struct {
	channels []Channel
	byID     map[string]int
}

// NewRegistry builds a registry preserving the given order.
// Returns ErrNoChannels for an empty list and ErrDuplicateChannelID when two
// channels share an id.
func NewRegistry(channels []Channel) (*Registry, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	r := &Registry{
		channels: make([]Channel, len(channels)),
		byID:     make(map[string]int, len(channels)),
	}
	for i, ch := range channels {
		if _, exists := r.byID[ch.ID()]; exists {
			return nil, ErrDuplicateChannelID
		}
		r.channels[i] = ch
		r.byID[ch.ID()] = i
	}

	return r, nil
}

// All returns a copy of the channels in configuration order.
func (r *Registry) All() []Channel {
	out := make([]Channel, len(r.channels))
	copy(out, r.channels)
	return out
}

// Get returns the channel with the given id or ErrChannelNotFound.
func (r *Registry) Get(id string) (Channel, error) {
	i, ok := r.byID[id]
	if !ok {
		return Channel{}, ErrChannelNotFound
	}
	return r.channels[i], nil
}

// First returns the first configured channel.
func (r *Registry) First() Channel {
	return r.channels[0]
}

// FirstLive returns the first live channel, if any.
func (r *Registry) FirstLive() (Channel, bool) {
	for _, ch := range r.channels {
		if ch.IsLive() {
			return ch, true
		}
	}
	return Channel{}, false
}

// Len returns the number of channels.
func (r *Registry) Len() int {
	return len(r.channels)
}
