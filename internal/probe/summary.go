package probe

import "math"

// Summary holds aggregated figures derived from recent probes of one channel.
type Summary struct {
	channelID         string
	totalProbes       int
	reachableProbes   int
	uptimeRatio       float64
	avgStartupLatency float64 // milliseconds
	latencyStdDev     float64 // milliseconds
}

// NewSummary aggregates probe results for a channel.
// Returns ErrNoProbeData if results is empty.
func NewSummary(channelID string, results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoProbeData
	}

	total := len(results)
	reachable := 0
	var latencies []float64
	var totalLatency float64

	for _, r := range results {
		if r.Reachable() {
			reachable++
			ms := float64(r.StartupLatency().Milliseconds())
			totalLatency += ms
			latencies = append(latencies, ms)
		}
	}

	var avgLatency, stdDev float64
	if reachable > 0 {
		avgLatency = totalLatency / float64(reachable)

		var sumSquaredDiff float64
		for _, l := range latencies {
			diff := l - avgLatency
			sumSquaredDiff += diff * diff
		}
		stdDev = math.Sqrt(sumSquaredDiff / float64(len(latencies)))
	}

	return Summary{
		channelID:         channelID,
		totalProbes:       total,
		reachableProbes:   reachable,
		uptimeRatio:       float64(reachable) / float64(total),
		avgStartupLatency: avgLatency,
		latencyStdDev:     stdDev,
	}, nil
}

func (s Summary) ChannelID() string          { return s.channelID }
func (s Summary) TotalProbes() int           { return s.totalProbes }
func (s Summary) ReachableProbes() int       { return s.reachableProbes }
func (s Summary) UptimeRatio() float64       { return s.uptimeRatio }
func (s Summary) AvgStartupLatency() float64 { return s.avgStartupLatency }
func (s Summary) LatencyStdDev() float64     { return s.latencyStdDev }
