package repositories

import (
	"bufio"
	"context"
	"fmt"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/platform/obs"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Reads fracture tips from a plain text file: one "x0,y0,xf,yf" record per
// line, lines starting with '#' are comments.
type TextFractureRepository struct {
	Path string
}

func NewTextFractureRepository(path string) *TextFractureRepository {
	return &TextFractureRepository{Path: path}
}

func (r *TextFractureRepository) ListFractures(ctx context.Context) (_ []domain.Segment, err error) {
	defer obs.Time(ctx, "fractures.text.ListFractures")(&err)

	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("list fractures: open %q: %w", r.Path, err)
	}
	defer f.Close()

	return ParseFractures(f, r.Path)
}

// ParseFractures parses fracture records. Blank lines are skipped; any other
// non-comment line must hold exactly four floats describing a non-degenerate
// segment. path is only used in error messages.
func ParseFractures(rd io.Reader, path string) ([]domain.Segment, error) {
	sc := bufio.NewScanner(rd)

	fractures := make([]domain.Segment, 0, 64)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, &domain.MalformedInputError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
			}
		}

		var v [4]float64
		for i, field := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &domain.MalformedInputError{
					Path:   path,
					Line:   lineNo,
					Reason: fmt.Sprintf("field %d is not a number", i+1),
					Err:    err,
				}
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, &domain.MalformedInputError{
					Path:   path,
					Line:   lineNo,
					Reason: fmt.Sprintf("field %d is not finite", i+1),
				}
			}
			v[i] = x
		}

		s, err := domain.NewSegment(domain.Point{X: v[0], Y: v[1]}, domain.Point{X: v[2], Y: v[3]})
		if err != nil {
			return nil, &domain.MalformedInputError{Path: path, Line: lineNo, Reason: "zero-length fracture", Err: err}
		}
		fractures = append(fractures, s)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse fractures: read %q: %w", path, err)
	}

	return fractures, nil
}
