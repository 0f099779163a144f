package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbsqlite "github.com/SHADYEHABOCOR/gLabs/internal/adapters/db/sqlite"
	"github.com/SHADYEHABOCOR/gLabs/internal/assets"
	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage the stored image assets",
}

var assetsImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import a directory of images under derived identity keys",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetsImport,
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored asset keys",
	RunE:  runAssetsList,
}

func init() {
	assetsCmd.AddCommand(assetsImportCmd)
	assetsCmd.AddCommand(assetsListCmd)
}

func runAssetsImport(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()
	db, err := dbsqlite.Init(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open asset store: %w", err)
	}
	repo := dbsqlite.NewAssetRepo(db)

	entries, err := os.ReadDir(args[0])
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}
	imported := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		ct := mime.TypeByExtension(ext)
		if !strings.HasPrefix(ct, "image/") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		key := assets.DeriveKey(name)
		if key == "" {
			logger.Warn("skipping file with empty derived key", zap.String("file", e.Name()))
			continue
		}
		data, err := os.ReadFile(filepath.Join(args[0], e.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if err := repo.Put(cmd.Context(), &domain.Asset{Key: key, Name: name, ContentType: ct, Data: data}); err != nil {
			return fmt.Errorf("store %s: %w", e.Name(), err)
		}
		imported++
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("imported %d assets into %s", imported, cfg.DBPath)))
	return nil
}

func runAssetsList(cmd *cobra.Command, args []string) error {
	db, err := dbsqlite.Init(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open asset store: %w", err)
	}
	keys, err := dbsqlite.NewAssetRepo(db).ListKeys(cmd.Context())
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	fmt.Println(labelStyle.Render(fmt.Sprintf("%d assets", len(keys))))
	return nil
}
