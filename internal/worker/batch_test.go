package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aumai/openjudge/internal/model"
)

// stubAnalyzer echoes the input so results can be traced back to cases
type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(caseDescription string) model.Analysis {
	return model.Analysis{
		CaseDescription: caseDescription,
		Summary:         "analyzed: " + caseDescription,
		Disclaimer:      model.Disclaimer,
	}
}

func TestProcessCases_OrderedResults(t *testing.T) {
	processor := NewBatchProcessor(stubAnalyzer{}, 4)

	cases := []string{"first case", "second case", "third case"}
	results := processor.ProcessCases(context.Background(), cases)

	if len(results) != len(cases) {
		t.Fatalf("expected %d results, got %d", len(cases), len(results))
	}

	for i, result := range results {
		if result == nil {
			t.Fatalf("missing result at index %d", i)
		}
		if result.Error != nil {
			t.Errorf("case %d: unexpected error: %v", i, result.Error)
		}
		if result.Analysis.CaseDescription != cases[i] {
			t.Errorf("result %d out of order: got %q, want %q",
				i, result.Analysis.CaseDescription, cases[i])
		}
	}
}

func TestProcessCases_Empty(t *testing.T) {
	processor := NewBatchProcessor(stubAnalyzer{}, 2)

	results := processor.ProcessCases(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadCasesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	content := `# sample cases
The accused committed theft.

The accused committed theft.
Domestic cruelty by husband.
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cases, err := ReadCasesFromFile(path)
	if err != nil {
		t.Fatalf("ReadCasesFromFile: %v", err)
	}

	// comment, blank line, and the duplicate are dropped
	want := []string{
		"The accused committed theft.",
		"Domestic cruelty by husband.",
	}
	if len(cases) != len(want) {
		t.Fatalf("expected %d cases, got %d: %v", len(want), len(cases), cases)
	}
	for i := range want {
		if cases[i] != want[i] {
			t.Errorf("case %d: got %q, want %q", i, cases[i], want[i])
		}
	}
}

func TestReadCasesFromFile_Missing(t *testing.T) {
	if _, err := ReadCasesFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(stubAnalyzer{}, 2)
	results, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}
