package rope

import "fmt"

// Interval is the half-open byte range [Lo, Hi).
type Interval struct {
	Lo, Hi int
}

func (i Interval) Len() int {
	return max(0, i.Hi-i.Lo)
}

func (i Interval) IsEmpty() bool {
	return i.Lo >= i.Hi
}

func (i Interval) Intersection(o Interval) Interval {
	start := max(i.Lo, o.Lo)
	end := min(i.Hi, o.Hi)
	return Interval{start, max(start, end)}
}

func (i Interval) Translate(n int) Interval {
	return Interval{i.Lo + n, i.Hi + n}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Lo, i.Hi)
}

// Slice returns the text in iv, clipped to the rope.
func (r *Rope) Slice(iv Interval) string {
	iv = iv.Intersection(Interval{0, r.Len()})
	if iv.IsEmpty() {
		return ""
	}

	p := make([]byte, iv.Len())
	n, _ := r.ReadAt(p, int64(iv.Lo))
	return string(p[:n])
}
