package rope

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats describes the shape of a rope.
type Stats struct {
	Leaves     int     `json:"leaves" yaml:"leaves"`
	Length     int     `json:"length" yaml:"length"`
	Depth      int     `json:"depth" yaml:"depth"`
	MinLeaf    int     `json:"minLeaf" yaml:"minLeaf"`
	MaxLeaf    int     `json:"maxLeaf" yaml:"maxLeaf"`
	MeanLeaf   float64 `json:"meanLeaf" yaml:"meanLeaf"`
	StdDevLeaf float64 `json:"stdDevLeaf" yaml:"stdDevLeaf"`
}

// Stats collects leaf length statistics. An empty rope reports zeros.
func (r *Rope) Stats() Stats {
	s := Stats{Leaves: r.leaves, Length: r.Len(), Depth: r.Depth()}
	if r.root == nil {
		return s
	}

	sizes := make([]float64, 0, r.leaves)
	r.walkLeaves(func(n *node) bool {
		sizes = append(sizes, float64(len(n.content)))
		return true
	})

	s.MinLeaf = int(floats.Min(sizes))
	s.MaxLeaf = int(floats.Max(sizes))
	if len(sizes) < 2 {
		s.MeanLeaf = sizes[0]
		return s
	}
	s.MeanLeaf, s.StdDevLeaf = stat.MeanStdDev(sizes, nil)
	return s
}
