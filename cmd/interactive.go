package cmd

import (
	"errors"
	"fmt"

	"gradebook/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var plainMenu bool

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"menu"},
	Short:   "Launch the interactive menu",
	Long:    `Open the menu to add, delete and modify grades. Changes are saved when you choose Exit.`,
	RunE:    runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	store := openStore()
	out := cmd.OutOrStdout()

	var p tui.Prompter
	if plainMenu {
		p = tui.NewLinePrompter(cmd.InOrStdin(), out, styles())
	} else {
		p = tui.NewFormPrompter(appCfg.AccentColor, out)
	}

	book, err := store.Load()
	if err != nil {
		return err
	}
	logger.Debug("interactive session started", zap.String("file", store.Path()), zap.Bool("plain", plainMenu))

	err = tui.NewSession(book, store, p, logger).Run()
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(out, styles().Error.Render("Exiting without saving."))
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().BoolVar(&plainMenu, "plain", false, "Use a numbered text menu instead of interactive forms")
}
