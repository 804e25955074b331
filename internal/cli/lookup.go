package cli

import (
	"fmt"
	"os"

	"github.com/aumai/openjudge/internal/report"
	"github.com/aumai/openjudge/internal/statute"
	"github.com/spf13/cobra"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <code> <number>",
	Short: "Look up a single statute section",
	Long: `Lookup prints one section of a legal code by its number.

Example:
  openjudge lookup IPC 302
  openjudge lookup BNS 103
  openjudge lookup IPC 498A`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map <ipc-number>...",
	Short: "Map IPC sections to their BNS 2023 equivalents",
	Long: `Map prints the BNS 2023 equivalent for each given IPC section
number, with the transition status (replaced, amended, or repealed).

Example:
  openjudge map 302
  openjudge map 302 376 304A 420 498A 506`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(mapCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	store := statute.Default()

	// Parse is the only validation boundary; lookup itself never errors
	family, err := parseFamilyArg(args[0])
	if err != nil {
		return err
	}

	section, ok := store.Lookup(family, args[1])
	if !ok {
		fmt.Printf("%s %s: not in database\n", family, args[1])
		return nil
	}

	report.WriteSection(os.Stdout, section)
	return nil
}

func runMap(cmd *cobra.Command, args []string) error {
	store := statute.Default()

	fmt.Printf("  %6s  ->  %-6s  Status\n", "IPC", "BNS")
	fmt.Printf("  %6s  --  %-6s  %s\n", "------", "------", "----------")

	for _, number := range args {
		mapping, ok := store.MapToNewCode(number)
		if !ok {
			fmt.Printf("  %6s       (no BNS mapping recorded)\n", number)
			continue
		}
		fmt.Printf("  %6s  ->  %-6s  %s\n", mapping.OldSection, mapping.NewSection, mapping.Status)
	}

	return nil
}
