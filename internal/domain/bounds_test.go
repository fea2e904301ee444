package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestDomainFromSegmentsTakesMaxima(t *testing.T) {
	segments := []Segment{
		seg(1, 2, 3, 9),
		seg(12, 0.5, 4, 4),
		seg(0, 7, 2, 1),
	}

	d, err := DomainFromSegments(segments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.XMax != 12 {
		t.Fatalf("xmax = %v, want 12", d.XMax)
	}
	if d.YMax != 9 {
		t.Fatalf("ymax = %v, want 9", d.YMax)
	}
}

func TestDomainFromSegmentsEmpty(t *testing.T) {
	_, err := DomainFromSegments(nil)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestDomainValidate(t *testing.T) {
	if err := (Domain{XMax: 10, YMax: 5}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range []Domain{{XMax: 0, YMax: 5}, {XMax: 5, YMax: 0}, {XMax: -1, YMax: 3}} {
		err := d.Validate()
		if !IsGeometryKind(err, KindDegenerateDomain) {
			t.Errorf("Validate(%+v) = %v, want degenerate_domain", d, err)
		}
	}
}

func TestDomainEdges(t *testing.T) {
	d := Domain{XMax: 10, YMax: 4}
	cases := []struct {
		p    Point
		want []Edge
	}{
		{Point{X: 5, Y: 0}, []Edge{EdgeBottom}},
		{Point{X: 5, Y: 4}, []Edge{EdgeTop}},
		{Point{X: 0, Y: 2}, []Edge{EdgeLeft}},
		{Point{X: 10, Y: 2}, []Edge{EdgeRight}},
		{Point{X: 0, Y: 0}, []Edge{EdgeBottom, EdgeLeft}},
		{Point{X: 5, Y: 2}, nil},
		{Point{X: 11, Y: 0}, nil},
	}
	for _, c := range cases {
		if got := d.Edges(c.p); !slices.Equal(got, c.want) {
			t.Errorf("Edges(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}
