package cmd

import (
	"fmt"

	"gradebook/pkg/config"
	"gradebook/pkg/storage"
	"gradebook/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gradebook configuration",
	Long:  "View your local configuration, change single settings with the --set flags, or edit everything with --edit.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setFile, _ := cmd.Flags().GetString("set-file")
	setAccent, _ := cmd.Flags().GetString("set-accent")
	setLog, _ := cmd.Flags().GetString("set-log")
	edit, _ := cmd.Flags().GetBool("edit")

	if edit {
		if _, err := tui.EditSettings(cfg, cmd.OutOrStdout()); err != nil {
			return err
		}
		appCfg = cfg
	}

	changed := false
	if setFile != "" {
		cfg.DataFile = setFile
		changed = true
	}
	if setAccent != "" {
		if err := config.ValidateAccent(setAccent); err != nil {
			return fmt.Errorf("invalid accent color %q: %w", setAccent, err)
		}
		cfg.AccentColor = setAccent
		changed = true
	}
	if setLog != "" {
		cfg.LogFile = setLog
		changed = true
	}

	out := cmd.OutOrStdout()
	if changed {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintln(out, "✅ Configuration saved.")
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	st := styles()
	fmt.Fprintln(out, st.Title.Render(fmt.Sprintf("--- Current Configuration (%s) ---", path)))
	fmt.Fprintf(out, "Data File: %s\n", cfg.ResolveDataFile("", storage.DefaultFile))
	fmt.Fprintf(out, "Accent Color: %s\n", orDefault(cfg.AccentColor, "default"))
	fmt.Fprintf(out, "Log File: %s\n", orDefault(cfg.LogFile, "not set"))
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-file", "", "Set the default gradebook data file")
	configCmd.Flags().String("set-accent", "", "Set the accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().String("set-log", "", "Write debug logs to this file")
	configCmd.Flags().Bool("edit", false, "Edit the settings with interactive forms")
}
