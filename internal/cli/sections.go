package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/aumai/openjudge/internal/model"
	"github.com/aumai/openjudge/internal/report"
	"github.com/aumai/openjudge/internal/statute"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var sectionsFormat string

// sectionsCmd represents the sections command
var sectionsCmd = &cobra.Command{
	Use:   "sections <code>",
	Short: "List every section of a legal code",
	Long: `Sections lists all sections of one code family held in the
database, sorted by section number.

Example:
  openjudge sections IPC
  openjudge sections BNS --format json
  openjudge sections IPC --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)

	sectionsCmd.Flags().StringVar(&sectionsFormat, "format", "text", "output format: text, json, or yaml")
}

func runSections(cmd *cobra.Command, args []string) error {
	family, err := parseFamilyArg(args[0])
	if err != nil {
		return err
	}

	sections := statute.Default().AllOf(family)
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Number < sections[j].Number
	})

	switch sectionsFormat {
	case "text":
		fmt.Printf("%s: %d sections\n\n", family, len(sections))
		for _, sec := range sections {
			report.WriteSection(os.Stdout, &sec)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sections)
	case "yaml":
		data, err := yaml.Marshal(sections)
		if err != nil {
			return fmt.Errorf("marshal sections: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format: %q (want text, json, or yaml)", sectionsFormat)
	}

	return nil
}

// parseFamilyArg validates a user-supplied code family argument
func parseFamilyArg(arg string) (model.CodeFamily, error) {
	family, err := model.ParseCodeFamily(arg)
	if err != nil {
		return "", fmt.Errorf("%v (known: IPC, BNS, CrPC, BNSS, IT Act, POCSO)", err)
	}
	return family, nil
}
