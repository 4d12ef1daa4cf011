package cmd

import (
	"fmt"
	"os"

	"gradebook/pkg/storage"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a copy of the gradebook",
	Long:  `Export the gradebook in its text format to stdout or to a file, for backups or for moving it to another machine.`,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	book, err := openStore().Load()
	if err != nil {
		return err
	}

	if output == "" || output == "-" {
		return storage.Encode(cmd.OutOrStdout(), book)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := storage.Encode(file, book); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Successfully exported %d classes to %s\n", len(book.Classes), output)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default stdout)")
}
