package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/planck-ai/planck/cmd/planck/internal"
	"github.com/planck-ai/planck/internal/config"
	"github.com/planck-ai/planck/internal/render"
	"github.com/planck-ai/planck/internal/store"
	"github.com/planck-ai/planck/internal/types"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded planner runs",
	Long: `History lists the runs recorded by the solve command, newest first.

Recording is controlled by the store section of the configuration file and
is enabled by default.`,
	RunE: runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list (0 lists all)")
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load configuration", err)
	}
	if !cfg.Store.Enabled {
		cmd.Println("Run history is disabled (store.enabled: false)")
		return nil
	}

	db, err := openRunStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := store.NewRunDAO(db).List(cmd.Context(), historyLimit)
	if err != nil {
		return internal.WrapError(internal.ExitStoreError, "failed to list runs", err)
	}

	cmd.Print(render.NewRenderer().RenderRuns(runs))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(args[0])
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load configuration", err)
	}

	db, err := openRunStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// A missing run surfaces as RUN_NOT_FOUND from the DAO.
	if err := store.NewRunDAO(db).Delete(cmd.Context(), id); err != nil {
		return err
	}

	cmd.Printf("Deleted run %s\n", id.Short())
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load configuration", err)
	}

	db, err := openRunStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	dao := store.NewRunDAO(db)

	count, err := dao.Count(ctx)
	if err != nil {
		return internal.WrapError(internal.ExitStoreError, "failed to count runs", err)
	}
	if err := dao.DeleteAll(ctx); err != nil {
		return internal.WrapError(internal.ExitStoreError, "failed to delete runs", err)
	}
	// Reclaim the space held by the deleted rows.
	if err := db.Vacuum(ctx); err != nil {
		return internal.WrapError(internal.ExitStoreError, "failed to vacuum store", err)
	}

	cmd.Printf("Deleted %d run(s)\n", count)
	return nil
}

// openRunStore opens the run history store at the configured path, creating
// the directory and schema as needed.
func openRunStore(cfg *config.Config) (*store.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		return nil, types.WrapError(types.STORE_OPEN_FAILED, "failed to create store directory", err)
	}

	storeCfg := store.DefaultConfig(cfg.Store.Path)
	if cfg.Store.BusyTimeout > 0 {
		storeCfg.BusyTimeout = cfg.Store.BusyTimeout
	}

	db, err := store.OpenWithConfig(storeCfg)
	if err != nil {
		return nil, types.WrapError(types.STORE_OPEN_FAILED, "failed to open run history store", err)
	}

	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, types.WrapError(types.STORE_MIGRATE_FAILED, "failed to migrate run history store", err)
	}

	return db, nil
}
