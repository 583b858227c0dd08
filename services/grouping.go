package services

// DefaultGroupingThreshold is the Chebyshev distance (in grid cells)
// within which two schematic points belong to the same render group.
const DefaultGroupingThreshold = 5

// SchematicItem is an object the surveyor placed on the 2D schematic
// grid.
type SchematicItem struct {
	ID                 string  `json:"id"`
	CellX              int     `json:"cell_x"`
	CellY              int     `json:"cell_y"`
	Category           string  `json:"category"`
	Name               string  `json:"name"`
	OriginalID         string  `json:"original_id"`
	RequiresDimensions bool    `json:"requires_dimensions"`
	AggregateEntry     bool    `json:"aggregate_entry"`
	Length             float64 `json:"length"`
	Width              float64 `json:"width"`
	Height             float64 `json:"height"`
	ItemType           string  `json:"item_type"` // "piece", "connectors" or "panel"
	PairID             string  `json:"pair_id"`   // shared by the two halves of a connector pair
}

// SpecialItem is a schematic annotation: a label anchored at one cell,
// or a measurement anchored at a start and end cell pair. Annotations
// group and render with the placed items but are never priced.
type SpecialItem struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"` // "label" or "measurement"
	CellX    int     `json:"cell_x"`
	CellY    int     `json:"cell_y"`
	EndX     int     `json:"end_x"`
	EndY     int     `json:"end_y"`
	Value    float64 `json:"value"`
	Rotation float64 `json:"rotation"`
	Text     string  `json:"text"`
}

// Group is one connected cluster of schematic content.
type Group struct {
	Placed   []SchematicItem
	Specials []SpecialItem
}

// Region is an axis-aligned square render window in grid coordinates,
// inclusive of both corners.
type Region struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Side returns the region's edge length in cells.
func (r Region) Side() int {
	return r.MaxX - r.MinX
}

// GroupConnectedItems clusters placed items and annotations into
// connected regions. Every placed item and label contributes one point;
// a measurement contributes both its endpoints. Points whose Chebyshev
// distance is within the threshold join the same group, closed
// transitively, and a measurement pulled in by either endpoint carries
// its other endpoint with it. A threshold of 0 or less falls back to
// DefaultGroupingThreshold.
func GroupConnectedItems(placed []SchematicItem, specials []SpecialItem, threshold int) []Group {
	if threshold <= 0 {
		threshold = DefaultGroupingThreshold
	}

	type point struct {
		x, y       int
		placedIdx  int // index into placed, or -1
		specialIdx int // index into specials, or -1
	}

	var points []point
	for i, it := range placed {
		points = append(points, point{x: it.CellX, y: it.CellY, placedIdx: i, specialIdx: -1})
	}
	for i, sp := range specials {
		points = append(points, point{x: sp.CellX, y: sp.CellY, placedIdx: -1, specialIdx: i})
		if sp.Kind == "measurement" {
			points = append(points, point{x: sp.EndX, y: sp.EndY, placedIdx: -1, specialIdx: i})
		}
	}
	if len(points) == 0 {
		return nil
	}

	assigned := make([]bool, len(points))
	var groups []Group

	for seed := range points {
		if assigned[seed] {
			continue
		}

		members := []int{seed}
		assigned[seed] = true

		// Iterative expansion: keep sweeping until no unassigned point
		// is in range of any member. Measurement endpoints travel as a
		// pair, so claiming one claims its sibling too.
		claimSiblings := func(idx int) {
			si := points[idx].specialIdx
			if si < 0 {
				return
			}
			for j := range points {
				if !assigned[j] && points[j].specialIdx == si {
					assigned[j] = true
					members = append(members, j)
				}
			}
		}
		claimSiblings(seed)

		for changed := true; changed; {
			changed = false
			for j := range points {
				if assigned[j] {
					continue
				}
				for _, m := range members {
					if chebyshev(points[m].x, points[m].y, points[j].x, points[j].y) <= threshold {
						assigned[j] = true
						members = append(members, j)
						claimSiblings(j)
						changed = true
						break
					}
				}
			}
		}

		var g Group
		seenSpecial := map[int]bool{}
		for _, m := range members {
			p := points[m]
			if p.placedIdx >= 0 {
				g.Placed = append(g.Placed, placed[p.placedIdx])
			}
			if p.specialIdx >= 0 && !seenSpecial[p.specialIdx] {
				seenSpecial[p.specialIdx] = true
				g.Specials = append(g.Specials, specials[p.specialIdx])
			}
		}
		groups = append(groups, g)
	}

	return groups
}

// BoundingRegion computes the square render window for a group: the
// min/max of all member points (both endpoints of each measurement),
// padded by one cell on every side, then grown along the shorter axis
// until square. When the growth does not split evenly the extra cell
// lands on the max side, keeping every coordinate an integer. Regions
// of separate groups may overlap; that is the renderer's problem.
func BoundingRegion(g Group) Region {
	first := true
	var minX, minY, maxX, maxY int

	include := func(x, y int) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, it := range g.Placed {
		include(it.CellX, it.CellY)
	}
	for _, sp := range g.Specials {
		include(sp.CellX, sp.CellY)
		if sp.Kind == "measurement" {
			include(sp.EndX, sp.EndY)
		}
	}
	if first {
		return Region{}
	}

	minX--
	minY--
	maxX++
	maxY++

	w := maxX - minX
	h := maxY - minY
	side := w
	if h > side {
		side = h
	}

	growX := side - w
	minX -= growX / 2
	maxX += growX - growX/2

	growY := side - h
	minY -= growY / 2
	maxY += growY - growY/2

	return Region{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func chebyshev(x1, y1, x2, y2 int) int {
	dx := absInt(x1 - x2)
	dy := absInt(y1 - y2)
	if dx > dy {
		return dx
	}
	return dy
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
