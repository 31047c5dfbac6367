// Package layout places the boxes of the editor screen with a small flex
// model: a Flex lines its items up along one axis and shares the space
// between them according to their size constraints.
package layout

import "sort"

type Point struct {
	X, Y int
}

// Dimensions of a resolved box.
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

// LayoutBox draws into the space it was given.
type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}

type Direction int

const (
	Y Direction = iota
	X
)

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

type FlexItem struct {
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

// FlexItemBox creates an item drawn by box. When flex is not nil its items
// are laid out inside the same space afterwards.
func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}
	return int(s.rel * float64(size))
}

// StartLayouting lays the flex out on a screen of the given size.
func (f *Flex) StartLayouting(width, height int) {
	f.Layout(Dimensions{Width: width, Height: height})
}

// Layout resolves the items inside dims, draws them in order and recurses
// into nested flexes. Items whose minimum size does not fit an equal share
// of the main axis are skipped.
func (f *Flex) Layout(dims Dimensions) {
	if len(f.Items) == 0 {
		return
	}

	total := dims.Width
	if f.Dir == Y {
		total = dims.Height
	}

	smallestPossibleSize := total / len(f.Items)
	items := filter(f.Items, func(item FlexItem) bool {
		return item.Size.Min.toAbs(total) <= smallestPossibleSize
	})

	sizes := distribute(items, total)
	origin := dims.Origin
	for i, item := range items {
		var dim Dimensions
		if f.Dir == Y {
			dim = Dimensions{origin, dims.Width, sizes[i]}
			origin.Y += sizes[i]
		} else {
			dim = Dimensions{origin, sizes[i], dims.Height}
			origin.X += sizes[i]
		}

		if item.Box != nil {
			item.Box(dim)
		}
		if item.Flex != nil {
			item.Flex.Layout(dim)
		}
	}
}

// distribute hands out total starting with the items that want the least,
// so every item gets min(its max, an equal share of what is left).
func distribute(items []FlexItem, total int) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].Size.Max.toAbs(total) < items[order[b]].Size.Max.toAbs(total)
	})

	sizes := make([]int, len(items))
	remaining := total
	for pos, idx := range order {
		rest := len(order) - pos
		want := items[idx].Size.Max.toAbs(total)
		share := remaining / rest
		if want <= share {
			sizes[idx] = want
			remaining -= want
			continue
		}

		// everything left wants more than an equal share
		for i, idx := range order[pos:] {
			sizes[idx] = share
			if i < remaining%rest {
				sizes[idx]++
			}
		}
		break
	}
	return sizes
}

func filter[T any](ss []T, test func(t T) bool) (ret []T) {
	for _, s := range ss {
		if test(s) {
			ret = append(ret, s)
		}
	}
	return
}
