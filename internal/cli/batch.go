package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/aumai/openjudge/internal/analyze"
	"github.com/aumai/openjudge/internal/report"
	"github.com/aumai/openjudge/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchMD      bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple case descriptions from a file in parallel",
	Long: `Batch processes multiple case descriptions concurrently:
- Read case descriptions from the input file (one per line, # comments skipped)
- Analyze them in parallel with a configurable worker count
- Write an individual JSON report per case

Example:
  openjudge batch cases.txt
  openjudge batch cases.txt --concurrency 8 --output-dir ./reports
  openjudge batch cases.txt --md`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./openjudge-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 2*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchMD, "md", false, "also write a Markdown report per case")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable disclaimer footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(analyze.NewAnalyzer(), concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := report.NewRenderer(!noFooter)

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ case %d: %v\n", result.Index+1, result.Error)
			continue
		}

		name := fmt.Sprintf("case-%03d", result.Index+1)
		jsonPath := filepath.Join(outputDir, name+".json")
		if err := renderer.RenderJSON(result.Analysis, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ case %d: failed to write JSON: %v\n", result.Index+1, err)
			continue
		}
		if batchMD {
			mdPath := filepath.Join(outputDir, name+".md")
			if err := renderer.RenderMarkdown(result.Analysis, mdPath); err != nil {
				failureCount++
				fmt.Fprintf(os.Stderr, "✗ case %d: failed to write Markdown: %v\n", result.Index+1, err)
				continue
			}
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ case %d: %d sections matched\n",
			result.Index+1, len(result.Analysis.RelevantSections))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d cases\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)

	return nil
}
