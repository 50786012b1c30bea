package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"curio/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog index",
	Long: `Fuzzy search over tool names, categories, descriptions, and tags.
Run "curio-cli sync" first to build the index.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		ctx := context.Background()
		results, err := commands.NewSearchCommand(idx, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("no results")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%-24s %-16s %s\n", r.Name, r.Category, r.MatchedText)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
