package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"curio/internal/application/commands"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Validate and inspect tool tags",
	Long: `Validate tags against the suggested-tag vocabulary and inspect tag usage.

Examples:
  curio-cli tags validate "Code Review"
  curio-cli tags sweep
  curio-cli tags freq`,
}

var tagsValidateCmd = &cobra.Command{
	Use:   "validate <tag>",
	Short: "Normalize a tag and check it against the vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewValidateTagCommand(GetThemes(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		if !result.Valid {
			fmt.Println("invalid: tag normalizes to nothing")
			return nil
		}
		fmt.Printf("normalized: %s\n", result.Normalized)
		if result.Suggestion != "" {
			fmt.Printf("did you mean: %s\n", result.Suggestion)
		}
		return nil
	},
}

var tagsSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Validate every tag of every tool in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewSweepTagsCommand(GetCatalog(), GetThemes()).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("checked %d tag(s) across %d tool(s), %d issue(s)\n",
			result.TagsChecked, result.ToolsChecked, len(result.Issues))
		for _, issue := range result.Issues {
			line := fmt.Sprintf("%s: %q -> %q", issue.Tool, issue.Raw, issue.Normalized)
			if !issue.Valid {
				line = fmt.Sprintf("%s: %q is empty after normalization", issue.Tool, issue.Raw)
			} else if issue.Suggestion != "" {
				line += fmt.Sprintf(" (did you mean %q?)", issue.Suggestion)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var tagsFreqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Show tag usage counts from the search index",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		freq, err := idx.TagFrequency()
		if err != nil {
			return err
		}

		tags := make([]string, 0, len(freq))
		for tag := range freq {
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool {
			if freq[tags[i]] != freq[tags[j]] {
				return freq[tags[i]] > freq[tags[j]]
			}
			return tags[i] < tags[j]
		})

		for _, tag := range tags {
			fmt.Printf("%4d  %s\n", freq[tag], tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsValidateCmd)
	tagsCmd.AddCommand(tagsSweepCmd)
	tagsCmd.AddCommand(tagsFreqCmd)
}
