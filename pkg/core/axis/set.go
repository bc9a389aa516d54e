package axis

// Set owns the axes of one plot, indexed by direction and 1-based number.
// Axes are created on first use and persist for the life of the set.
type Set struct {
	axes     [2][]*Axis
	defaults [2]Options
	perAxis  [2][]Options
}

// NewSet returns an empty set using the built-in defaults.
func NewSet() *Set {
	return &Set{defaults: [2]Options{DefaultOptions(X), DefaultOptions(Y)}}
}

// Configure sets the shared options for one direction and the per-axis
// options for axes 1..len(perAxis). Per-axis values win over shared ones,
// which win over the built-in defaults. Axes that already exist are
// updated in place.
func (s *Set) Configure(dir Direction, shared Options, perAxis []Options) {
	s.defaults[dir] = shared.Merge(DefaultOptions(dir))
	s.perAxis[dir] = perAxis
	for i, a := range s.axes[dir] {
		if a != nil {
			a.Options = s.optionsFor(dir, i+1)
		}
	}
	for i := range perAxis {
		s.GetOrCreate(dir, i+1)
	}
}

func (s *Set) optionsFor(dir Direction, n int) Options {
	if n-1 < len(s.perAxis[dir]) {
		return s.perAxis[dir][n-1].Merge(s.defaults[dir])
	}
	return s.defaults[dir]
}

// GetOrCreate returns axis n in direction dir, creating it if needed.
// Numbers below 1 refer to axis 1.
func (s *Set) GetOrCreate(dir Direction, n int) *Axis {
	if n < 1 {
		n = 1
	}
	for len(s.axes[dir]) < n {
		s.axes[dir] = append(s.axes[dir], nil)
	}
	if a := s.axes[dir][n-1]; a != nil {
		return a
	}
	a := newAxis(dir, n, s.optionsFor(dir, n))
	s.axes[dir][n-1] = a
	return a
}

// Get returns axis n in direction dir if it exists.
func (s *Set) Get(dir Direction, n int) (*Axis, bool) {
	if n < 1 || n > len(s.axes[dir]) || s.axes[dir][n-1] == nil {
		return nil, false
	}
	return s.axes[dir][n-1], true
}

// Direction returns the existing axes of one direction in number order.
func (s *Set) Direction(dir Direction) []*Axis {
	out := make([]*Axis, 0, len(s.axes[dir]))
	for _, a := range s.axes[dir] {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// X returns the existing horizontal axes.
func (s *Set) X() []*Axis { return s.Direction(X) }

// Y returns the existing vertical axes.
func (s *Set) Y() []*Axis { return s.Direction(Y) }

// All returns every existing axis, X axes first.
func (s *Set) All() []*Axis { return append(s.X(), s.Y()...) }

// ResetUsage clears the used flag and data extent of every axis.
func (s *Set) ResetUsage() {
	for _, a := range s.All() {
		a.Used = false
		a.ResetExtent()
	}
}
