package interpreter

// Visits holds every cell the robot has occupied and latches the first one
// entered twice.

type Visits struct {
	seen  map[Position]struct{}
	first *Position
}

func NewVisits() *Visits {
	return &Visits{seen: map[Position]struct{}{Origin: {}}}
}

func (v *Visits) Contains(p Position) bool {
	_, ok := v.seen[p]
	return ok
}

func (v *Visits) Len() int {
	return len(v.seen)
}

// Record adds the cells crossed by one instruction. It reports whether this
// call latched the first duplicate.
func (v *Visits) Record(path []Position) bool {
	latched := false
	if v.first == nil {
		for _, p := range path {
			if v.Contains(p) {
				dup := p
				v.first = &dup
				latched = true
				break
			}
		}
	}
	for _, p := range path {
		v.seen[p] = struct{}{}
	}
	return latched
}

// FirstDuplicate returns the first revisited cell, if any.
func (v *Visits) FirstDuplicate() (Position, bool) {
	if v.first == nil {
		return Position{}, false
	}
	return *v.first, true
}
