package crater

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prettymuchbryce/reportbake/internal/fs"
	"github.com/prettymuchbryce/reportbake/internal/report"
	"github.com/prettymuchbryce/reportbake/internal/testutil"
	"github.com/spf13/afero"
)

func TestBake_WritesManifest(t *testing.T) {
	filesystem := fs.NewMem()
	root := testutil.Path("/", "work", "report")
	output := testutil.Path("/", "work", "output.json")
	makeCrate(t, filesystem, root, "fixed", "foo")
	writeReport(t, filesystem, root, "test-fail", "bar", "1.0.0", "log.txt", "panic at line 4")
	writeReport(t, filesystem, root, "broken", "old", "0.0.1", "log.txt", "yanked")

	var buf bytes.Buffer
	reporter := report.NewStructuredWithWriter(&buf, false)

	manifest, stats, err := Bake(filesystem, Options{
		ReportName: "log.txt",
		ReportDir:  root,
		Output:     output,
	}, reporter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Crates != 3 {
		t.Errorf("expected 3 crates, got %d", stats.Crates)
	}
	if stats.Counts[KindBuildFail] != 1 {
		t.Errorf("expected 1 BuildFail, got %d", stats.Counts[KindBuildFail])
	}

	written := readManifest(t, filesystem, output)
	if written.Len() != manifest.Len() {
		t.Fatalf("written manifest has %d crates, want %d", written.Len(), manifest.Len())
	}
	if got, _ := written.Get("bar"); got != TestFail("panic at line 4") {
		t.Errorf("bar = %+v", got)
	}

	out := buf.String()
	for _, want := range []string{"Baking JSON", "Checking fixed", "Checking test-fail", output} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestBake_FailureLeavesOutputUntouched(t *testing.T) {
	filesystem := fs.NewMem()
	root := testutil.Path("/", "work", "report")
	output := testutil.Path("/", "work", "output.json")
	makeCrate(t, filesystem, root, "fixed", "foo")
	writeReport(t, filesystem, root, "not-a-category", "bar", "1.0.0", "log.txt", "x")
	afero.WriteFile(filesystem, output, []byte("previous"), 0644)

	_, _, err := Bake(filesystem, Options{
		ReportName: "log.txt",
		ReportDir:  root,
		Output:     output,
	}, nil)
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	data, err := afero.ReadFile(filesystem, output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "previous" {
		t.Errorf("output was modified: %q", data)
	}
}

func TestBake_FailureCreatesNoOutput(t *testing.T) {
	filesystem := fs.NewMem()
	root := testutil.Path("/", "work", "report")
	output := testutil.Path("/", "work", "output.json")
	makeCrate(t, filesystem, root, "error", "hollow")

	_, _, err := Bake(filesystem, Options{
		ReportName: "log.txt",
		ReportDir:  root,
		Output:     output,
	}, nil)
	if !errors.Is(err, ErrNoVersion) {
		t.Fatalf("expected ErrNoVersion, got %v", err)
	}

	if _, err := filesystem.Stat(output); err == nil {
		t.Error("expected no output file after failed run")
	}
}

func TestBake_RequiresReportName(t *testing.T) {
	_, _, err := Bake(fs.NewMem(), Options{ReportDir: "report", Output: "output.json"}, nil)
	if err == nil || !strings.Contains(err.Error(), "report name") {
		t.Errorf("expected report name error, got %v", err)
	}
}

func TestBake_EmptyReportDirectory(t *testing.T) {
	filesystem := fs.NewMem()
	root := testutil.Path("/", "report")
	output := testutil.Path("/", "output.json")
	filesystem.MkdirAll(root, 0755)

	manifest, _, err := Bake(filesystem, Options{ReportName: "log.txt", ReportDir: root, Output: output}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manifest.Len() != 0 {
		t.Errorf("expected empty manifest, got %d", manifest.Len())
	}

	data, err := afero.ReadFile(filesystem, output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("output = %q, want {}", data)
	}
}
