package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbsqlite "github.com/SHADYEHABOCOR/gLabs/internal/adapters/db/sqlite"
	expcsv "github.com/SHADYEHABOCOR/gLabs/internal/adapters/exporter/csv"
	exreg "github.com/SHADYEHABOCOR/gLabs/internal/adapters/exporter/registry"
	expxlsx "github.com/SHADYEHABOCOR/gLabs/internal/adapters/exporter/xlsx"
	oraclehttp "github.com/SHADYEHABOCOR/gLabs/internal/adapters/oracle/httpclient"
	oraclestatic "github.com/SHADYEHABOCOR/gLabs/internal/adapters/oracle/static"
	csvparser "github.com/SHADYEHABOCOR/gLabs/internal/adapters/parser/csv"
	parreg "github.com/SHADYEHABOCOR/gLabs/internal/adapters/parser/registry"
	xlsxparser "github.com/SHADYEHABOCOR/gLabs/internal/adapters/parser/xlsx"
	"github.com/SHADYEHABOCOR/gLabs/internal/assets"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/exporter"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/jobs"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/pipeline"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/reconciler"
)

var (
	inFile        string
	outFile       string
	flagToArabic  bool
	flagToEnglish bool
	flagImages    bool
	flagCalories  bool
	flagCurrency  string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a menu-item spreadsheet",
	Long: `Normalize a menu-item export: map headers to the canonical schema, absorb
[ar-ae]: translation rows, split currency prices, reconcile bilingual fields,
and write the reordered file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd.Context(), pipeline.ModeMenu)
	},
}

var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "Flatten a modifier-group spreadsheet",
	Long: `Flatten a two-level modifier group export into one row per modifier,
applying the same bilingual reconciliation rules as menu items.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd.Context(), pipeline.ModeModifiers)
	},
}

func init() {
	for _, c := range []*cobra.Command{normalizeCmd, modifiersCmd} {
		c.Flags().StringVarP(&inFile, "in", "i", "", "input spreadsheet (xlsx or csv, required)")
		c.Flags().StringVarP(&outFile, "out", "o", "", "output file (extension selects the format)")
		c.Flags().BoolVar(&flagToArabic, "to-arabic", true, "fill Arabic companions for bilingual fields")
		c.Flags().BoolVar(&flagToEnglish, "to-english", false, "translate Arabic base fields to English")
		c.Flags().BoolVar(&flagImages, "images", false, "resolve images from the asset store")
		c.Flags().BoolVar(&flagCalories, "calories", false, "estimate missing calorie values")
		c.Flags().StringVar(&flagCurrency, "currency", "", "default currency code for bare prices")
		_ = c.MarkFlagRequired("in")
	}
}

func runPipeline(ctx context.Context, mode pipeline.Mode) error {
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	parsers := parreg.New()
	parsers.Register(csvparser.New())
	parsers.Register(xlsxparser.New())
	format := fileFormat(inFile)
	parser, ok := parsers.Get(format)
	if !ok {
		return fmt.Errorf("unsupported input format: %s", format)
	}
	table, err := parser.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inFile, err)
	}

	pool := jobs.NewPool(cfg.Concurrency, logger)
	svc := pipeline.New(pipeline.Deps{
		Reconciler: reconciler.New(buildOracle(), pool, cfg.BatchSize, logger),
		Nutrition:  buildNutrition(),
		Resolver:   buildResolver(),
		Pool:       pool,
		BatchSize:  cfg.BatchSize,
		Log:        logger,
	})

	res, err := svc.Run(ctx, table, pipeline.Options{
		Mode:            mode,
		EnsureArabic:    flagToArabic,
		EnsureEnglish:   flagToEnglish,
		ResolveImages:   flagImages,
		EstimateCal:     flagCalories,
		DefaultCurrency: currencyOrDefault(),
		Progress: func(done, total int) {
			logger.Info("translating", zap.Int("done", done), zap.Int("total", total))
		},
	})
	if err != nil {
		return err
	}

	printSummary(res.Summary)
	if res.Summary.ZeroItems {
		return nil
	}

	out := outFile
	if out == "" {
		ext := filepath.Ext(inFile)
		out = strings.TrimSuffix(inFile, ext) + "-normalized" + ext
	}
	exporters := exreg.New()
	exporters.Register(expcsv.New())
	exporters.Register(expxlsx.New())
	exp := exporter.New(exporters)
	er, err := exp.Export(ctx, exporter.ExportArgs{
		Dataset:  res.Dataset,
		Format:   fileFormat(out),
		Basename: strings.TrimSuffix(out, filepath.Ext(out)),
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(er.Filename, er.Content, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Println(okStyle.Render("wrote " + er.Filename))
	return nil
}

func fileFormat(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "xlsx"
	}
	return ext
}

func currencyOrDefault() string {
	if flagCurrency != "" {
		return flagCurrency
	}
	return cfg.DefaultCurrency
}

func buildOracle() ports.Oracle {
	if cfg.OracleURL != "" {
		return oraclehttp.New(cfg.OracleURL, cfg.OracleKey)
	}
	logger.Warn("GLABS_ORACLE_URL not set, untranslated fields will be left as-is")
	return oraclestatic.New(nil, nil)
}

func buildNutrition() ports.NutritionEstimator {
	if !flagCalories || cfg.OracleURL == "" {
		return nil
	}
	return oraclehttp.New(cfg.OracleURL, cfg.OracleKey)
}

func buildResolver() *assets.Resolver {
	if !flagImages {
		return nil
	}
	db, err := dbsqlite.Init(cfg.DBPath)
	if err != nil {
		logger.Warn("asset store unavailable", zap.Error(err))
		return nil
	}
	return assets.NewResolver(dbsqlite.NewAssetRepo(db), cfg.FuzzyThreshold, logger)
}
