package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeTips(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "FractureTips.txt")
	content := "# x0,y0,xf,yf\n0,0,10,10\n0,10,10,0\n2,0,2,10\n0,5,10,5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootHasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, expected := range []string{"run", "serve", "version"} {
		if !names[expected] {
			t.Errorf("missing subcommand %q", expected)
		}
	}
}

func TestRunJSON(t *testing.T) {
	path := writeTips(t)

	out, err := execute(t, "run", "--input", path, "--trials", "40", "--seed", "7", "--format", "json", "--bins", "8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res runOutput
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(res.P10) != 40 {
		t.Fatalf("len(p10) = %d, want 40", len(res.P10))
	}
	if res.Seed != 7 || res.Fractures != 4 || res.XMax != 10 || res.YMax != 10 {
		t.Fatalf("output = %+v", res)
	}
	if len(res.Histogram) != 8 {
		t.Fatalf("expected 8 bins, got %d", len(res.Histogram))
	}
	if res.Source != path {
		t.Fatalf("source = %q, want %q", res.Source, path)
	}
}

func TestRunIsReproducibleAcrossWorkers(t *testing.T) {
	path := writeTips(t)

	a, err := execute(t, "run", "-i", path, "-n", "60", "--seed", "99", "--format", "yaml", "-j", "1")
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	b, err := execute(t, "run", "-i", path, "-n", "60", "--seed", "99", "--format", "yaml", "-j", "6")
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	var ra, rb runOutput
	if err := yaml.Unmarshal([]byte(a), &ra); err != nil {
		t.Fatalf("decode sequential: %v", err)
	}
	if err := yaml.Unmarshal([]byte(b), &rb); err != nil {
		t.Fatalf("decode parallel: %v", err)
	}

	if len(ra.P10) != 60 || len(rb.P10) != 60 {
		t.Fatalf("got %d and %d values, want 60", len(ra.P10), len(rb.P10))
	}
	for i := range ra.P10 {
		if ra.P10[i] != rb.P10[i] {
			t.Fatalf("p10[%d] differs: %v vs %v", i, ra.P10[i], rb.P10[i])
		}
	}
}

func TestRunPrettyAndGeoJSON(t *testing.T) {
	path := writeTips(t)
	geo := filepath.Join(t.TempDir(), "schematic.geojson")

	out, err := execute(t, "run", "--input", path, "--trials", "5", "--seed", "1", "--geojson", geo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Distribution of P10 values for 5 Simulations") {
		t.Fatalf("pretty output missing title:\n%s", out)
	}

	b, err := os.ReadFile(geo)
	if err != nil {
		t.Fatalf("read geojson: %v", err)
	}
	if !strings.Contains(string(b), `"FeatureCollection"`) || !strings.Contains(string(b), `"borehole"`) {
		t.Fatalf("unexpected geojson:\n%s", b)
	}
}

func TestRunErrors(t *testing.T) {
	path := writeTips(t)

	if _, err := execute(t, "run", "--input", path, "--format", "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("1,2,3\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := execute(t, "run", "--input", bad, "--format", "json"); err == nil {
		t.Fatal("expected error for malformed input")
	}

	if _, err := execute(t, "run", "--input", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRunUsesEnvironment(t *testing.T) {
	path := writeTips(t)
	t.Setenv("FRACTURES_PATH", path)
	t.Setenv("P10_TRIALS", "12")

	out, err := execute(t, "run", "--seed", "3", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res runOutput
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.Source != path {
		t.Fatalf("source = %q, want %q", res.Source, path)
	}
	if len(res.P10) != 12 {
		t.Fatalf("len(p10) = %d, want 12", len(res.P10))
	}
}

func TestRunReportsInvalidEnvironment(t *testing.T) {
	path := writeTips(t)
	t.Setenv("FRACTURES_PATH", path)
	t.Setenv("P10_BINS", "0")

	_, err := execute(t, "run", "--format", "json")
	if err == nil {
		t.Fatal("expected error for invalid P10_BINS")
	}
	if !strings.Contains(err.Error(), "P10_BINS") {
		t.Fatalf("err = %v, want it to name P10_BINS", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "p10 ") {
		t.Fatalf("version output = %q", out)
	}
}

func TestOpenRepositoryRequiresSource(t *testing.T) {
	_, cleanup, err := openRepository(context.Background(), fractureSource{})
	if err == nil {
		t.Fatal("expected error for empty source")
	}
	if cleanup == nil {
		t.Fatal("cleanup must never be nil")
	}
}
