package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	mu.Unlock()
}

// TopN formats the N largest buckets of the current frame, e.g.
// "renderer.Render:4.2ms, meshing.BuildChunkMesh:2.1ms".
func TopN(n int) string {
	mu.Lock()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(frameTotals))
	for k, v := range frameTotals {
		list = append(list, pair{name: k, dur: v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n < len(list) {
		list = list[:n]
	}
	parts := make([]string, 0, len(list))
	for _, p := range list {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", p.name, float64(p.dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}
