package layout

import "github.com/grindlemire/go-flex/internal/debug"

// violationEpsilon absorbs floating point noise when summing clamp violations.
const violationEpsilon = 1e-9

// resolveFlexibleLengths sets target for every item of a line so that the
// outer sizes fill available, honouring grow, shrink and min/max.
//
// Items that hit a bound are frozen there and the remaining free space is
// redistributed among the rest. Each round freezes at least one item, so
// the loop runs at most len(items)+1 times.
func resolveFlexibleLengths(items []flexItem, available, gap float64) {
	n := len(items)
	if n == 0 {
		return
	}
	gaps := gap * float64(n-1)

	used := hypotheticalMain(items, gap)
	growing := used < available

	frozen := make([]bool, n)
	for i := range items {
		it := &items[i]
		it.target = it.hypo
		switch {
		case used == available:
			frozen[i] = true
		case growing && (it.grow == 0 || it.base > it.hypo):
			frozen[i] = true
		case !growing && (it.shrink == 0 || it.base < it.hypo):
			frozen[i] = true
		}
	}

	violations := make([]float64, n)
	for round := 0; round <= n; round++ {
		remaining := available - gaps
		var factors float64
		active := 0
		for i := range items {
			it := &items[i]
			if frozen[i] {
				remaining -= it.target + it.marginMain
				continue
			}
			remaining -= it.base + it.marginMain
			factors += flexFactor(it, growing)
			active++
		}
		if active == 0 {
			return
		}

		var total float64
		for i := range items {
			if frozen[i] {
				continue
			}
			it := &items[i]
			want := it.base
			if factors > 0 {
				want += remaining * flexFactor(it, growing) / factors
			}
			it.target = clamp(want, it.minMain, it.maxMain)
			violations[i] = it.target - want
			total += violations[i]
		}

		if debug.Enabled() {
			debug.Log("flex: round %d growing=%t remaining=%g violation=%g", round, growing, remaining, total)
		}

		switch {
		case total > violationEpsilon:
			freezeWhere(frozen, violations, func(v float64) bool { return v > 0 })
		case total < -violationEpsilon:
			freezeWhere(frozen, violations, func(v float64) bool { return v < 0 })
		default:
			return
		}
	}
}

// flexFactor is the weight an item takes of positive or negative free space.
func flexFactor(it *flexItem, growing bool) float64 {
	if growing {
		return it.grow
	}
	return it.shrink * it.base
}

func freezeWhere(frozen []bool, violations []float64, pred func(float64) bool) {
	for i := range frozen {
		if !frozen[i] && pred(violations[i]) {
			frozen[i] = true
		}
	}
}

// freeSpace returns the space left on a line after resolution.
func freeSpace(items []flexItem, available, gap float64) float64 {
	used := 0.0
	for i := range items {
		used += items[i].outerMain()
	}
	if len(items) > 1 {
		used += gap * float64(len(items)-1)
	}
	return available - used
}
