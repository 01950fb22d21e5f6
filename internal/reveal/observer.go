// Package reveal fires a one-time "visible" transition for page elements as
// they scroll into view.
package reveal

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o, empty if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Margin grows (positive) or shrinks (negative) the viewport before testing.
type Margin struct {
	Top, Right, Bottom, Left float64
}

func (m Margin) apply(r Rect) Rect {
	return Rect{
		X: r.X - m.Left,
		Y: r.Y - m.Top,
		W: r.W + m.Left + m.Right,
		H: r.H + m.Top + m.Bottom,
	}
}

// Entry is a change in an element's intersecting state.
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// Observer is the viewport intersection primitive. Each Check compares every
// watched element against the viewport and reports only elements whose
// intersecting state changed since the previous Check.
type Observer struct {
	Threshold float64
	Margin    Margin

	order   []string
	bounds  map[string]Rect
	last    map[string]bool
	checked map[string]bool
}

func NewObserver(threshold float64, margin Margin) *Observer {
	return &Observer{
		Threshold: threshold,
		Margin:    margin,
		bounds:    map[string]Rect{},
		last:      map[string]bool{},
		checked:   map[string]bool{},
	}
}

// Observe starts watching id at bounds. Re-observing updates the bounds.
func (o *Observer) Observe(id string, bounds Rect) {
	if _, ok := o.bounds[id]; !ok {
		o.order = append(o.order, id)
	}
	o.bounds[id] = bounds
}

// Unobserve stops watching id.
func (o *Observer) Unobserve(id string) {
	if _, ok := o.bounds[id]; !ok {
		return
	}
	delete(o.bounds, id)
	delete(o.last, id)
	delete(o.checked, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

func (o *Observer) Watching(id string) bool {
	_, ok := o.bounds[id]
	return ok
}

func (o *Observer) Len() int { return len(o.order) }

// Ratio is the visible fraction of bounds inside the margin-adjusted viewport.
func (o *Observer) Ratio(viewport, bounds Rect) float64 {
	area := bounds.Area()
	if area == 0 {
		return 0
	}
	return bounds.Intersect(o.Margin.apply(viewport)).Area() / area
}

func (o *Observer) intersecting(ratio float64) bool {
	if o.Threshold <= 0 {
		return ratio > 0
	}
	return ratio >= o.Threshold
}

// Check returns entries for every watched element whose state changed. The
// first Check after Observe always reports the element.
func (o *Observer) Check(viewport Rect) []Entry {
	var out []Entry
	for _, id := range o.order {
		ratio := o.Ratio(viewport, o.bounds[id])
		in := o.intersecting(ratio)
		if o.checked[id] && o.last[id] == in {
			continue
		}
		o.checked[id] = true
		o.last[id] = in
		out = append(out, Entry{ID: id, Ratio: ratio, Intersecting: in})
	}
	return out
}
