package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curio/internal/application/commands"
	"curio/internal/config"
)

var (
	reportThreshold float64
	reportOut       string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the catalog summary report",
	Long: `Assemble the JSON summary report: tool and theme totals, discovered
themes split by confidence, tag frequency, tag issues, and recommendations.

Examples:
  curio-cli report
  curio-cli report --threshold 0.7 --out report.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		report, err := commands.NewGenerateReportCommand(GetCatalog(), GetThemes(), commands.ReportOptions{
			ConfidenceThreshold: reportThreshold,
		}).Execute(ctx)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		out = append(out, '\n')

		if reportOut == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		if err := os.WriteFile(reportOut, out, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("wrote %s\n", reportOut)
		return nil
	},
}

func init() {
	reportCmd.Flags().Float64Var(&reportThreshold, "threshold", config.DefaultConfidenceThreshold, "confidence threshold for the high/low split")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}
