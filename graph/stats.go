package graph

// Stats summarises a CSRGraph's degree distribution, the way a loader
// reports "[input graph]" diagnostics before an algorithm runs over it.
type Stats struct {
	N         VertexID
	M         int64
	MinDegree int32
	MaxDegree int32
	AvgDegree float64
	Density   float64
}

// Summarize computes degree statistics in a single O(n) pass.
func Summarize(g *CSRGraph) Stats {
	n := g.Size()
	if n == 0 {
		return Stats{}
	}

	minDeg, maxDeg := g.Degree(0), g.Degree(0)
	for u := VertexID(1); u < n; u++ {
		d := g.Degree(u)
		if d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
	}

	avg := 2 * float64(g.NumEdges()) / float64(n)
	var density float64
	if n > 1 {
		maxPossible := float64(n) * float64(n-1) / 2
		density = float64(g.NumEdges()) / maxPossible
	}

	return Stats{
		N:         n,
		M:         g.NumEdges(),
		MinDegree: minDeg,
		MaxDegree: maxDeg,
		AvgDegree: avg,
		Density:   density,
	}
}
