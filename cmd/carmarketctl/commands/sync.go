package commands

import (
	"context"
	"fmt"

	"carmarket-service/internal/searchsync"
	"carmarket-service/pkg/config"
	"carmarket-service/pkg/database"
	"carmarket-service/pkg/logger"
	"carmarket-service/pkg/search"

	"github.com/spf13/cobra"
)

// syncCmd runs the full catalog resynchronization
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run the full catalog resynchronization",
	Long: `Rebuild the relational catalog tables and the car-models search
index from the JSON master files. This is the same operation the admin
sync endpoint triggers.

Examples:
  carmarketctl sync
  carmarketctl sync --master-dir ./database/json_master/models`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(ctx context.Context) error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	if err := database.InitDB(appConfig); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}

	dir := masterDir
	if dir == "" {
		dir = appConfig.Catalog.MasterDir
	}

	index := search.NewTypesenseClient(&appConfig.Typesense, log)
	pipeline := searchsync.NewPipeline(database.GetDB(), index, dir, log)

	if err := pipeline.RunFull(ctx); err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}

	fmt.Println("Catalog synchronization completed")
	return nil
}
