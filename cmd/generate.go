package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

var (
	generateTopic string
	generateUnit  string
	generateJSON  bool
)

// generateCmd drafts the AI-fillable report sections without opening the form.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate report content for an activity topic",
	Long: `Generate the five AI-drafted report sections (activities, moral values,
PiKeBM title and summary, KBAT element) for an activity topic, without
opening the interactive form.

Requires a Gemini API key (config "gemini.api_key" or GEMINI_API_KEY).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateTopic == "" {
			return fmt.Errorf("--topic is required")
		}

		report := domain.NewReportData()
		report.ActivityTopic = generateTopic
		report.UnitName = generateUnit

		content, err := app.service.GenerateContent(context.Background(), report)
		if err != nil {
			return fmt.Errorf("failed to generate content: %w", err)
		}

		if generateJSON {
			data, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode content: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println()
		fmt.Printf("  Topik: %s\n", generateTopic)
		if generateUnit != "" {
			fmt.Printf("  Unit:  %s\n", generateUnit)
		}
		fmt.Println()
		fmt.Println("  Perincian Aktiviti:")
		for i, act := range content.Activities {
			fmt.Printf("    %d. %s\n", i+1, act)
		}
		fmt.Println()
		fmt.Printf("  Nilai Murni:      %s\n", domain.JoinValues(content.Values))
		fmt.Printf("  Tajuk PiKeBM:     %s\n", content.PikebmTitle)
		fmt.Printf("  Ringkasan PiKeBM: %s\n", content.PikebmSummary)
		fmt.Printf("  Elemen KBAT:      %s\n", content.Kbat)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "Main activity topic (required)")
	generateCmd.Flags().StringVarP(&generateUnit, "unit", "u", "", "Unit or club name")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Output the generated content as JSON")
}
