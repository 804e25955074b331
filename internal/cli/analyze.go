package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aumai/openjudge/internal/analyze"
	"github.com/aumai/openjudge/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeFile string
	outJSON     string
	outMD       string
	noFooter    bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [case description]",
	Short: "Analyze a case description against IPC/BNS sections",
	Long: `Analyze matches a free-text case description against the statute
tables through keyword matching and reports:
- The matched IPC and BNS 2023 sections
- The IPC-to-BNS transition mapping for matched IPC sections
- A plain-English summary with the mandatory disclaimer

Example:
  openjudge analyze "The accused snatched a phone at knifepoint"
  openjudge analyze --file fir.txt --json analysis.json
  openjudge analyze "theft and intimidation" --md analysis.md`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "read the case description from a file instead of arguments")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable disclaimer footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := caseText(args)
	if err != nil {
		return err
	}

	analyzer := analyze.NewAnalyzer()
	result := analyzer.Analyze(text)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Matched %d sections\n", len(result.RelevantSections))
		fmt.Fprintf(os.Stderr, "✓ Found %d IPC->BNS mappings\n", len(result.IPCToBNSMapping))
		fmt.Fprintln(os.Stderr)
	}

	renderer := report.NewRenderer(!noFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(&result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(&result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.WriteText(os.Stdout, &result)
	return nil
}

// caseText resolves the case description from --file or the arguments
func caseText(args []string) (string, error) {
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("read case file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a case description as arguments or via --file")
	}
	return strings.Join(args, " "), nil
}
