package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/config"
)

// configCmd shows the current configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit application settings",
	Long:  `View the current configuration, or change a setting with the set-url, set-key, set-model, and notifications subcommands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		key := "(not set)"
		if app.config.Gemini.APIKey != "" {
			key = maskKey(app.config.Gemini.APIKey)
		}
		notif := "off"
		if app.config.Notifications.Enabled {
			notif = "on"
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("    Sheet URL:      %s\n", app.config.SheetURL)
		fmt.Printf("    Gemini API key: %s\n", key)
		fmt.Printf("    Gemini model:   %s\n", app.config.Gemini.Model)
		fmt.Printf("    Notifications:  %s\n", notif)
		fmt.Println()
		fmt.Printf("  Config file: %s\n", path)
		return nil
	},
}

var configSetURLCmd = &cobra.Command{
	Use:   "set-url <url>",
	Short: "Set the Google Apps Script submission endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.config.SheetURL = args[0]
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("  Saved: sheet URL set to %s\n", args[0])
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <api-key>",
	Short: "Set the Gemini API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.config.Gemini.APIKey = args[0]
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("  Saved: Gemini API key set to %s\n", maskKey(args[0]))
		return nil
	},
}

var configSetModelCmd = &cobra.Command{
	Use:   "set-model <model>",
	Short: "Set the Gemini generation model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.config.Gemini.Model = args[0]
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("  Saved: Gemini model set to %s\n", args[0])
		return nil
	},
}

var configNotificationsCmd = &cobra.Command{
	Use:   "notifications <on|off>",
	Short: "Toggle desktop notifications",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "on":
			app.config.Notifications.Enabled = true
		case "off":
			app.config.Notifications.Enabled = false
		default:
			return fmt.Errorf("invalid value %q: use on or off", args[0])
		}
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("  Saved: notifications %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetURLCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetModelCmd)
	configCmd.AddCommand(configNotificationsCmd)
	rootCmd.AddCommand(configCmd)
}

// maskKey hides all but the last four characters of a secret.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
