package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed fetch outcomes.
const (
	FeedOutcomeOK    = "ok"
	FeedOutcomeEmpty = "empty"
	FeedOutcomeError = "error"
)

var (
	// FeedFetches counts news feed fetches by outcome (ok, empty, error)
	FeedFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexum_feed_fetch_total",
		Help: "Total number of upstream news feed fetches",
	}, []string{"outcome"})

	// FeedFetchDuration tracks how long upstream feed fetches take
	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nexum_feed_fetch_duration_seconds",
		Help:    "Duration of upstream news feed fetches",
		Buckets: prometheus.DefBuckets,
	})

	// FeedItemsServed is the number of items returned by the last fetch
	FeedItemsServed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nexum_feed_items_served",
		Help: "Number of news items returned by the last fetch",
	})

	// PlaybackSessions counts playback sessions started
	PlaybackSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexum_playback_sessions_total",
		Help: "Total number of playback sessions started, by strategy",
	}, []string{"strategy"})

	// PlaybackEnginesDestroyed counts engine teardowns
	PlaybackEnginesDestroyed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexum_playback_engines_destroyed_total",
		Help: "Total number of media engines destroyed",
	})

	// PlaybackTransitions counts state transitions by target state
	PlaybackTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexum_playback_transitions_total",
		Help: "Total number of playback state transitions",
	}, []string{"state"})

	// PlaybackRecoveries counts automatic recoveries by action
	PlaybackRecoveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexum_playback_recoveries_total",
		Help: "Total number of automatic playback recoveries",
	}, []string{"action"})

	// FullscreenFailures counts rejected fullscreen requests
	FullscreenFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexum_fullscreen_failures_total",
		Help: "Total number of fullscreen requests rejected by every platform method",
	})

	// ProbeResults counts stream probes by result
	ProbeResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexum_probe_results_total",
		Help: "Total number of channel stream probes",
	}, []string{"channel", "result"})

	// HTTPRequests counts API requests by route and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexum_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"route", "code"})
)

// RecordFeedFetch records the outcome and duration of an upstream feed fetch
func RecordFeedFetch(outcome string, duration time.Duration, items int) {
	FeedFetches.WithLabelValues(outcome).Inc()
	FeedFetchDuration.Observe(duration.Seconds())
	FeedItemsServed.Set(float64(items))
}

// RecordPlaybackSession increments the session counter for a strategy
func RecordPlaybackSession(strategy string) {
	PlaybackSessions.WithLabelValues(strategy).Inc()
}

// RecordEngineDestroyed increments the engine teardown counter
func RecordEngineDestroyed() {
	PlaybackEnginesDestroyed.Inc()
}

// RecordPlaybackTransition increments the transition counter for a target state
func RecordPlaybackTransition(state string) {
	PlaybackTransitions.WithLabelValues(state).Inc()
}

// RecordPlaybackRecovery increments the recovery counter for an action
func RecordPlaybackRecovery(action string) {
	PlaybackRecoveries.WithLabelValues(action).Inc()
}

// RecordFullscreenFailure increments the fullscreen failure counter
func RecordFullscreenFailure() {
	FullscreenFailures.Inc()
}

// RecordProbe records a channel probe result
func RecordProbe(channelID string, reachable bool) {
	result := "unreachable"
	if reachable {
		result = "reachable"
	}
	ProbeResults.WithLabelValues(channelID, result).Inc()
}

// RecordHTTPRequest increments the request counter for a route and status code
func RecordHTTPRequest(route, code string) {
	HTTPRequests.WithLabelValues(route, code).Inc()
}
