package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/config"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "glabs",
	Short: "Normalize heterogeneous menu spreadsheets into a bilingual canonical schema",
	Long: `glabs ingests restaurant menu spreadsheet exports in inconsistent layouts,
normalizes their columns into one canonical bilingual schema, reconciles
English/Arabic fields (translating through the configured oracle), attaches
stored images, and re-exports standardized xlsx or csv files.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(modifiersCmd)
	rootCmd.AddCommand(assetsCmd)
}

func initConfig() {
	cfg = config.Load()
	var err error
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
}
