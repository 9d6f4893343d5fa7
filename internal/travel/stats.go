package travel

import "sync"

// CallStats tallies completed live calls per provider. Purely informative;
// exposed on the stats endpoint.
type CallStats struct {
	mu    sync.Mutex
	calls map[string]int64
}

func NewCallStats() *CallStats {
	return &CallStats{calls: make(map[string]int64)}
}

// Record counts one completed live call for the named provider.
func (s *CallStats) Record(provider string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[provider]++
}

// Snapshot copies the current tallies.
func (s *CallStats) Snapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64, len(s.calls))
	for k, v := range s.calls {
		out[k] = v
	}
	return out
}
