package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aumai/openjudge/internal/model"
)

// CaseAnalyzer analyzes a single case description
type CaseAnalyzer interface {
	Analyze(caseDescription string) model.Analysis
}

// CaseJob analyzes one case description
type CaseJob struct {
	Index    int // Position in the input file, 0-based
	Text     string
	Analyzer CaseAnalyzer
}

// Execute runs the analysis. Analysis itself never fails; the only error
// surfaced here is context cancellation.
func (j *CaseJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &CaseResult{Index: j.Index, Text: j.Text, Error: err}
	}
	analysis := j.Analyzer.Analyze(j.Text)
	return &CaseResult{Index: j.Index, Text: j.Text, Analysis: &analysis}
}

// CaseResult is the outcome of one case analysis job
type CaseResult struct {
	Index    int
	Text     string
	Analysis *model.Analysis
	Error    error
}

// GetError returns the job error, if any
func (r *CaseResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many case descriptions concurrently
type BatchProcessor struct {
	analyzer    CaseAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer CaseAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessCases analyzes the given case descriptions concurrently. Results
// are returned sorted by input index.
func (b *BatchProcessor) ProcessCases(ctx context.Context, cases []string) []*CaseResult {
	if len(cases) == 0 {
		return []*CaseResult{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	go func() {
		for i, text := range cases {
			pool.Submit(&CaseJob{
				Index:    i,
				Text:     text,
				Analyzer: b.analyzer,
			})
		}
		pool.Close()
	}()

	ordered := make([]*CaseResult, len(cases))
	for result := range pool.Results() {
		cr := result.(*CaseResult)
		ordered[cr.Index] = cr
	}

	// jobs dropped on cancellation still get a slot
	for i, cr := range ordered {
		if cr == nil {
			ordered[i] = &CaseResult{Index: i, Text: cases[i], Error: ctx.Err()}
		}
	}
	return ordered
}

// ProcessFile reads case descriptions from a file and analyzes them
// concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CaseResult, error) {
	cases, err := ReadCasesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	return b.ProcessCases(ctx, cases), nil
}

// ReadCasesFromFile reads case descriptions from a file, one per line.
// Empty lines, comment lines, and duplicates are skipped.
func ReadCasesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var cases []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			cases = append(cases, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return cases, nil
}
