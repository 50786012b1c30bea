package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"curio/internal/application/commands"
	"curio/internal/domain"
)

var (
	themesStatus     string
	themesApprovedBy string
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage the theme registry",
	Long: `List, discover, and manage the lifecycle of themes.

Examples:
  curio-cli themes list --status under_review
  curio-cli themes discover
  curio-cli themes approve observability --by alice
  curio-cli themes bump observability code-quality
  curio-cli themes recount`,
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := domain.ThemeStatus(themesStatus)
		if status != "" && status != domain.StatusUnderReview && status != domain.StatusActive {
			return fmt.Errorf("invalid status %q (expected under_review or active)", themesStatus)
		}

		ctx := context.Background()
		themes, err := commands.NewListThemesCommand(GetThemes(), status).Execute(ctx)
		if err != nil {
			return err
		}

		for _, t := range themes {
			line := fmt.Sprintf("%-24s %-12s tools=%d", t.ID, t.Status, t.Metadata.ToolCount)
			if t.Metadata.ApprovedBy != "" {
				line += "  approved by " + t.Metadata.ApprovedBy
			}
			fmt.Println(line)
		}
		return nil
	},
}

var themesDiscoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Cluster catalog tools into candidate themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		candidates, err := commands.NewDiscoverThemesCommand(GetCatalog()).Execute(ctx)
		if err != nil {
			return err
		}

		if len(candidates) == 0 {
			fmt.Println("no theme candidates found")
			return nil
		}
		for _, c := range candidates {
			fmt.Printf("%-24s confidence=%.2f tools=%d keywords=%s\n",
				c.Name, c.Confidence, len(c.Tools), strings.Join(c.Keywords, ","))
		}
		return nil
	},
}

var themesApproveCmd = &cobra.Command{
	Use:   "approve <theme-id>",
	Short: "Promote an under-review theme to active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewApproveThemeCommand(GetThemes(), args[0], themesApprovedBy).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var themesBumpCmd = &cobra.Command{
	Use:   "bump <theme-id>...",
	Short: "Record a tool submission against one or more themes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewBumpToolCountsCommand(GetThemes(), args).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		if len(result.Unknown) > 0 {
			fmt.Printf("unknown theme(s): %s\n", strings.Join(result.Unknown, ", "))
		}
		return nil
	},
}

var themesRecountCmd = &cobra.Command{
	Use:   "recount",
	Short: "Reconcile cached tool counts with the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewRecountCommand(GetThemes(), GetCatalog()).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		ids := make([]string, 0, len(result.Updated))
		for id := range result.Updated {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("%s -> %d\n", id, result.Updated[id])
		}
		return nil
	},
}

func init() {
	themesListCmd.Flags().StringVar(&themesStatus, "status", "", "filter by status (under_review or active)")
	themesApproveCmd.Flags().StringVar(&themesApprovedBy, "by", "", "name of the approver")
	themesApproveCmd.MarkFlagRequired("by")

	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesDiscoverCmd)
	themesCmd.AddCommand(themesApproveCmd)
	themesCmd.AddCommand(themesBumpCmd)
	themesCmd.AddCommand(themesRecountCmd)
}
