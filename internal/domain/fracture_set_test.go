package domain

import (
	"math"
	"testing"
)

func TestFractureSetCountCrossings(t *testing.T) {
	fs, err := NewFractureSet([]Segment{
		seg(0, 0, 10, 10),
		seg(0, 2, 2, 0),
		seg(8, 9, 9, 8),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fs.Len() != 3 {
		t.Fatalf("len = %d, want 3", fs.Len())
	}
	if d := fs.Domain(); d.XMax != 10 || d.YMax != 10 {
		t.Fatalf("domain = %+v, want 10x10", d)
	}

	borehole := seg(10, 0, 0, 10)
	if got := fs.CountCrossings(borehole); got != 1 {
		t.Fatalf("crossings = %d, want 1", got)
	}

	p10 := float64(fs.CountCrossings(borehole)) / borehole.Length()
	if want := 1 / math.Sqrt(200); math.Abs(p10-want) > 1e-12 {
		t.Fatalf("p10 = %v, want %v", p10, want)
	}
}

func TestFractureSetParallelFractureIsNotCounted(t *testing.T) {
	fs, err := NewFractureSet([]Segment{seg(0, 1, 10, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	borehole := seg(0, 0.5, 10, 0.5)
	if got := fs.CountCrossings(borehole); got != 0 {
		t.Fatalf("crossings = %d, want 0", got)
	}
}

func TestFractureSetIsACopy(t *testing.T) {
	in := []Segment{seg(0, 0, 1, 1)}
	fs, err := NewFractureSet(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in[0] = seg(5, 5, 6, 6)
	if fs.At(0) != seg(0, 0, 1, 1) {
		t.Fatalf("fracture set mutated through caller slice: %+v", fs.At(0))
	}

	out := fs.Segments()
	out[0] = seg(7, 7, 8, 8)
	if fs.At(0) != seg(0, 0, 1, 1) {
		t.Fatalf("fracture set mutated through Segments(): %+v", fs.At(0))
	}
}
