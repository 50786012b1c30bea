package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"curio/internal/application/commands"
)

var syncFull bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the catalog search index",
	Long: `Refresh the SQLite search index from the catalog. By default only
files changed since the last sync are re-read; --full rebuilds from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		ctx := context.Background()
		stats, err := commands.NewSyncCommand(idx, syncFull).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("scanned %d file(s) in %s: +%d tools, ~%d updated, -%d deleted, %d tags\n",
			stats.FilesScanned, stats.Duration.Round(time.Millisecond),
			stats.ToolsAdded, stats.ToolsUpdated, stats.ToolsDeleted, stats.TagsAdded)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncFull, "full", false, "force a full rebuild")

	rootCmd.AddCommand(syncCmd)
}
