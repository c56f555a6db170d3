package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"carmarket-service/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd parses master files without touching the database or
// the search index
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Parse master files and report structural problems",
	Long: `Parse every catalog master file in the given directory and report
which ones a sync run would skip. Nothing is written anywhere.

Examples:
  carmarketctl validate ./database/json_master/models
  carmarketctl validate --master-dir ./database/json_master/models`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := masterDir
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			dir = os.Getenv("CATALOG_MASTER_DIR")
		}
		if dir == "" {
			return fmt.Errorf("no master directory given (use an argument, --master-dir, or CATALOG_MASTER_DIR)")
		}
		return runValidate(dir)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	loader := catalog.NewLoader(zap.NewNop())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tBRAND\tMODELS\tDOCUMENTS\tSTATUS")

	var bad int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		file, err := loader.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			bad++
			fmt.Fprintf(w, "%s\t-\t-\t-\t%v\n", entry.Name(), err)
			continue
		}

		docs := catalog.Project(file.Models, file.BrandID)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\tok\n",
			file.FileName, file.BrandID, len(file.Models), len(docs))

		if verbose {
			for _, m := range file.Models {
				fmt.Fprintf(w, "  %s\t\t%d years\t\t\n", m.Name, len(m.ModelYears))
			}
		}
	}
	w.Flush()

	if bad > 0 {
		return fmt.Errorf("%d file(s) would be skipped by a sync run", bad)
	}
	return nil
}
