package zone

import "github.com/telepilot/telepilot/internal/keys"

// move performs one built-in directional step and reports whether the
// selection changed. Geometry zones search by item rectangles; the rest
// navigate by row assignment and list order.
func (z *Zone) move(code keys.Code) bool {
	cur := z.Current()
	if cur == nil {
		return z.selectFirst()
	}
	if z.cfg.UseGeometry {
		if idx := z.nearestInDirection(cur, code); idx >= 0 {
			return z.Select(idx)
		}
		return false
	}
	switch code {
	case keys.Left:
		return z.stepInRow(cur, -1)
	case keys.Right:
		return z.stepInRow(cur, +1)
	case keys.Up:
		return z.stepRow(cur, -1)
	case keys.Down:
		return z.stepRow(cur, +1)
	}
	return false
}

// stepInRow scans siblings of the current row in list order.
func (z *Zone) stepInRow(cur *Item, step int) bool {
	for i := z.current + step; i >= 0 && i < len(z.items); i += step {
		item := z.items[i]
		if item.Row != cur.Row {
			break
		}
		if z.selectable(item) {
			return z.Select(i)
		}
	}
	return false
}

// stepRow moves to the adjacent row, preferring the saved column when
// SaveRowPosition is on, otherwise the item at the nearest ordinal.
func (z *Zone) stepRow(cur *Item, dir int) bool {
	target, ok := z.adjacentRow(cur.Row, dir)
	if !ok {
		return false
	}
	if z.cfg.SaveRowPosition {
		if saved, ok := z.rowCols[target]; ok && saved < len(z.items) {
			item := z.items[saved]
			if item.Row == target && z.selectable(item) {
				return z.Select(saved)
			}
		}
	}
	col := z.ordinalInRow(z.current)
	best, bestDist := -1, 0
	for i, item := range z.items {
		if item.Row != target || !z.selectable(item) {
			continue
		}
		dist := z.ordinalInRow(i) - col
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return false
	}
	return z.Select(best)
}

// adjacentRow finds the nearest row number on the given side that has at
// least one selectable item.
func (z *Zone) adjacentRow(row, dir int) (int, bool) {
	best, found := 0, false
	for _, item := range z.items {
		if !z.selectable(item) {
			continue
		}
		if dir > 0 && item.Row <= row || dir < 0 && item.Row >= row {
			continue
		}
		if !found || (dir > 0 && item.Row < best) || (dir < 0 && item.Row > best) {
			best, found = item.Row, true
		}
	}
	return best, found
}

// ordinalInRow counts how many earlier items share the row with items[i].
func (z *Zone) ordinalInRow(i int) int {
	ord := 0
	for j := 0; j < i; j++ {
		if z.items[j].Row == z.items[i].Row {
			ord++
		}
	}
	return ord
}

// nearestInDirection is the geometric search: among selectable items whose
// center lies beyond the current item's edge in the pressed direction, pick
// the one with the smallest axis distance plus orthogonal misalignment.
func (z *Zone) nearestInDirection(cur *Item, code keys.Code) int {
	best, bestScore := -1, 0
	for i, item := range z.items {
		if item == cur || !z.selectable(item) {
			continue
		}
		score, ok := directionScore(cur.Rect, item.Rect, code)
		if !ok {
			continue
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func directionScore(from, to Rect, code keys.Code) (int, bool) {
	switch code {
	case keys.Left:
		if to.CenterX() >= from.X {
			return 0, false
		}
		return from.X - to.CenterX() + abs(to.CenterY()-from.CenterY()), true
	case keys.Right:
		if to.CenterX() <= from.X+from.W {
			return 0, false
		}
		return to.CenterX() - (from.X + from.W) + abs(to.CenterY()-from.CenterY()), true
	case keys.Up:
		if to.CenterY() >= from.Y {
			return 0, false
		}
		return from.Y - to.CenterY() + abs(to.CenterX()-from.CenterX()), true
	case keys.Down:
		if to.CenterY() <= from.Y+from.H {
			return 0, false
		}
		return to.CenterY() - (from.Y + from.H) + abs(to.CenterX()-from.CenterX()), true
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
