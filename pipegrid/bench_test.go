package pipegrid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// BenchmarkParse measures Parse on a 140×140 block of mixed tiles,
// the size of a typical puzzle input.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 140
	const tiles = "|-LJ7F."
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r == n/2 && c == n/2 {
				sb.WriteByte('S')
				continue
			}
			sb.WriteByte(tiles[(r*7+c*3)%len(tiles)])
		}
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipegrid.ParseString(input); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkConnects measures the adjacency table lookup.
func BenchmarkConnects(b *testing.B) {
	var sink bool
	for i := 0; i < b.N; i++ {
		from := pipegrid.Kind(i % 8)
		to := pipegrid.Kind((i / 8) % 8)
		sink = pipegrid.Connects(from, to, pipegrid.Direction(i%4))
	}
	_ = sink
}
