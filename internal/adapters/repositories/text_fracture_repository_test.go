package repositories

import (
	"context"
	"errors"
	"fracture-density-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFractures(t *testing.T) {
	input := strings.Join([]string{
		"# x0,y0,xf,yf",
		"0,0,10,10",
		"",
		"1.5, 2.5 ,3,4",
		"#2,2,3,3",
	}, "\n")

	fractures, err := ParseFractures(strings.NewReader(input), "tips.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fractures) != 2 {
		t.Fatalf("expected 2 fractures, got %d", len(fractures))
	}
	want := domain.Segment{P0: domain.Point{X: 1.5, Y: 2.5}, P1: domain.Point{X: 3, Y: 4}}
	if fractures[1] != want {
		t.Fatalf("second fracture = %+v, want %+v", fractures[1], want)
	}
}

func TestParseFracturesMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"too few fields", "0,0,1,1\n0,0,1", 2},
		{"too many fields", "0,0,1,1,5", 1},
		{"not a number", "# header\n0,zero,1,1", 2},
		{"zero length", "3,3,3,3", 1},
		{"nan field", "0,0,1,1\n0,NaN,1,1", 2},
		{"infinite field", "0,0,+Inf,1", 1},
	}
	for _, c := range cases {
		_, err := ParseFractures(strings.NewReader(c.input), "tips.txt")
		if !errors.Is(err, domain.ErrMalformedInput) {
			t.Errorf("%s: err = %v, want ErrMalformedInput", c.name, err)
			continue
		}

		var me *domain.MalformedInputError
		if !errors.As(err, &me) {
			t.Errorf("%s: expected *MalformedInputError, got %T", c.name, err)
			continue
		}
		if me.Line != c.line {
			t.Errorf("%s: line = %d, want %d", c.name, me.Line, c.line)
		}
	}
}

func TestTextFractureRepositoryListFractures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FractureTips.txt")
	if err := os.WriteFile(path, []byte("#tips\n0,0,4,4\n4,0,0,4\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fractures, err := NewTextFractureRepository(path).ListFractures(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fractures) != 2 {
		t.Fatalf("expected 2 fractures, got %d", len(fractures))
	}
}

func TestTextFractureRepositoryMissingFile(t *testing.T) {
	repo := NewTextFractureRepository(filepath.Join(t.TempDir(), "missing.txt"))
	if _, err := repo.ListFractures(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
