package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	masterDir string
	verbose   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "carmarketctl",
	Short: "Operational tooling for the car marketplace catalog",
	Long: `carmarketctl drives the catalog synchronization pipeline from the
command line, outside the HTTP surface.

Commands:
  sync      - Run the full catalog resynchronization
  validate  - Parse master files and report structural problems`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&masterDir, "master-dir", "", "Catalog master directory (defaults to CATALOG_MASTER_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
