package config

import "time"

// MockTiming holds the artificial delays the engine applies. The
// defaults emulate a real inference backend; tests zero them out.
type MockTiming struct {
	// MinLatency and MaxLatency bound the uniformly-random per-request
	// delay applied before any response is produced. Half-open range:
	// [MinLatency, MaxLatency).
	MinLatency time.Duration
	MaxLatency time.Duration
	// WordDelay is the per-word streaming interval, measured from
	// stream start (word i is emitted at i*WordDelay).
	WordDelay time.Duration
}

// GetMockTiming reads the delay knobs from the environment.
func GetMockTiming() MockTiming {
	timing := MockTiming{
		MinLatency: time.Duration(parseEnvInt("MOCK_MIN_DELAY_MS", 500)) * time.Millisecond,
		MaxLatency: time.Duration(parseEnvInt("MOCK_MAX_DELAY_MS", 1500)) * time.Millisecond,
		WordDelay:  time.Duration(parseEnvInt("MOCK_STREAM_WORD_DELAY_MS", 100)) * time.Millisecond,
	}
	if timing.MaxLatency < timing.MinLatency {
		timing.MaxLatency = timing.MinLatency
	}
	return timing
}
