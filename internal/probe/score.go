package probe

import "time"

// ComputeScore calculates a stream quality score from a summary.
// Returns a value in [0.0, 1.0] where 1.0 is the best possible quality.
//
// Formula:
//
//	score = (uptime_ratio * 0.70) +
//	        (startup_latency_score * 0.20) +
//	        (latency_stability * 0.10)
//
// maxLatency is the latency at which the startup component drops to zero,
// typically the probe timeout.
func ComputeScore(s Summary, maxLatency time.Duration) float64 {
	uptimeComponent := s.UptimeRatio() * 0.70

	maxMs := float64(maxLatency.Milliseconds())
	var latencyScore float64
	switch {
	case s.ReachableProbes() == 0:
		latencyScore = 0
	case maxMs <= 0 || s.AvgStartupLatency() <= 0:
		latencyScore = 1.0
	default:
		latencyScore = clamp(1.0-(s.AvgStartupLatency()/maxMs), 0, 1)
	}
	latencyComponent := latencyScore * 0.20

	var stability float64
	if s.ReachableProbes() > 0 {
		stability = 1.0
		if s.AvgStartupLatency() > 0 {
			stability = clamp(1.0-(s.LatencyStdDev()/s.AvgStartupLatency()), 0, 1)
		}
	}
	stabilityComponent := stability * 0.10

	return uptimeComponent + latencyComponent + stabilityComponent
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
