// Command seed fills the database with demo rockets, cosmodromes and launches,
// or with the contents of a JSON file in the same shape.
//
//	go run ./cmd/seed                  # built-in demo data
//	go run ./cmd/seed --file data.json # custom dataset
//	go run ./cmd/seed --reset          # wipe the three tables first
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rockethub/database"
	"rockethub/internal/config"
	"rockethub/internal/logger"
	"rockethub/internal/seed"
)

var (
	file  string
	reset bool
)

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Import rockets, cosmodromes and launches",
	Long:          `seed imports a JSON dataset into the rockethub database in one transaction. Without --file the built-in demo data is used.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(file, reset)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "JSON dataset to import (default: built-in demo data)")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "delete all rockets, cosmodromes and launches before importing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(file string, reset bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, _, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ds, err := loadDataset(file)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	sum, err := seed.Import(ctx, db, ds, reset, log)
	if err != nil {
		return err
	}
	log.Info("import completed",
		zap.Int("rockets", sum.Rockets),
		zap.Int("cosmodromes", sum.Cosmodromes),
		zap.Int("launches", sum.Launches),
	)
	return nil
}

func loadDataset(file string) (*seed.Dataset, error) {
	if file == "" {
		return seed.Demo()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}
