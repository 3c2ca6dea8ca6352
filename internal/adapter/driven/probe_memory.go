package driven

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/alorle/nexum-portal/internal/probe"
)

// ProbeMemoryRepository implements the ProbeRepository port in process memory.
// Results are kept per channel, ordered by timestamp ascending, and are lost on
// restart.
type ProbeMemoryRepository struct {
	mu      sync.RWMutex
	results map[string][]probe.Result
}

// NewProbeMemoryRepository creates an empty repository.
func NewProbeMemoryRepository() *ProbeMemoryRepository {
	return &ProbeMemoryRepository{
		results: make(map[string][]probe.Result),
	}
}

// Save stores a probe result.
func (r *ProbeMemoryRepository) Save(ctx context.Context, result probe.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.results[result.ChannelID()]
	i, _ := slices.BinarySearchFunc(list, result.Timestamp(), func(p probe.Result, t time.Time) int {
		return p.Timestamp().Compare(t)
	})
	r.results[result.ChannelID()] = slices.Insert(list, i, result)
	return nil
}

// FindByChannelSince retrieves probe results for a channel since the
// given time, ordered by timestamp descending.
func (r *ProbeMemoryRepository) FindByChannelSince(ctx context.Context, channelID string, since time.Time) ([]probe.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.results[channelID]
	results := []probe.Result{}
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Timestamp().Before(since) {
			break
		}
		results = append(results, list[i])
	}
	return results, nil
}

// DeleteBefore removes all probe results older than the given time.
func (r *ProbeMemoryRepository) DeleteBefore(ctx context.Context, before time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, list := range r.results {
		i := 0
		for i < len(list) && list[i].Timestamp().Before(before) {
			i++
		}
		if i == len(list) {
			delete(r.results, id)
			continue
		}
		r.results[id] = slices.Clone(list[i:])
	}
	return nil
}
