package domain

// FractureSet is the fixed collection of fracture traces sampled by boreholes.
// It is built once at load time and shared read-only across trials.
type FractureSet struct {
	fractures []Segment
	domain    Domain
}

// NewFractureSet copies the fractures and derives the sampling domain from them.
func NewFractureSet(fractures []Segment) (*FractureSet, error) {
	d, err := DomainFromSegments(fractures)
	if err != nil {
		return nil, err
	}

	owned := make([]Segment, len(fractures))
	copy(owned, fractures)
	return &FractureSet{fractures: owned, domain: d}, nil
}

func (fs *FractureSet) Len() int { return len(fs.fractures) }

func (fs *FractureSet) At(i int) Segment { return fs.fractures[i] }

func (fs *FractureSet) Domain() Domain { return fs.domain }

// Segments returns a copy of the fractures in load order.
func (fs *FractureSet) Segments() []Segment {
	out := make([]Segment, len(fs.fractures))
	copy(out, fs.fractures)
	return out
}

// CountCrossings counts fractures crossed by the borehole with a linear scan.
func (fs *FractureSet) CountCrossings(borehole Segment) int {
	n := 0
	for _, f := range fs.fractures {
		if f.Crosses(borehole) {
			n++
		}
	}
	return n
}
