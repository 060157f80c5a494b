// Package cli holds the grocery command line: the HTTP server plus local
// scan and recipe commands that share the server's services.
package cli

import (
	"context"
	"fmt"
	"os"

	"Grocery-Tracker/cmd/config"
	migration "Grocery-Tracker/cmd/database/migrate"
	"Grocery-Tracker/internal/utils"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	cfgFile string
	noColor bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "grocery",
	Short:         "Track groceries from receipt photos and get recipe ideas",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfigFrom(cfgFile)
		logger = utils.NewLogger(utils.GetConfig("LOG_LEVEL"), utils.GetConfig("LOG_FORMAT"), os.Stderr)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func Execute() error {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError("%v", err)
		return err
	}
	return nil
}

// openStore connects and migrates the inventory store.
func openStore() (*gorm.DB, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func loadServices(ctx context.Context) (*config.Services, error) {
	db, err := openStore()
	if err != nil {
		return nil, err
	}
	return config.NewServices(ctx, db, logger)
}
