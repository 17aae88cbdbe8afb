package guikit

import "fmt"

// FindByPosition returns the item under point from a list sorted by
// ascending position, together with its index. The vertical axis is used
// unless horizontal is set.
//
// Positions come from the host's last layout pass. Items that have never
// been laid out may report a zero position and produce a wrong answer, so
// call this only once layout has settled (e.g. from the next frame).
func FindByPosition[T Positioned](t Tree, items []T, point Vec2, horizontal bool) (T, int, error) {
	var zero T
	if len(items) == 0 {
		return zero, -1, fmt.Errorf("guikit: find by position: %w", ErrNoItems)
	}

	want := point.Axis(horizontal)
	lo, hi := 0, len(items)
	for {
		mid := lo + (hi-lo)/2
		if mid == lo {
			break
		}
		pos, err := t.Pos(items[mid].ItemID())
		if err != nil {
			return zero, -1, err
		}
		if want >= pos.Axis(horizontal) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return items[lo], lo, nil
}
