package cmd

import (
	"fmt"
	"os"

	"gradebook/pkg/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import REPORT.html",
	Short: "Import grades from an HTML table",
	Long: `Read every table in an HTML report and add one grade per row.

Tables with a header row are matched by the column names Class, Student,
Subject and Grade in any order; tables without a header are read as
class, student, subject, grade. Rows that cannot be added are listed and
skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()
	st := styles()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer file.Close()

	rows, err := importer.ParseHTML(file)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no grade rows found in %s", args[0])
	}

	store := openStore()
	book, err := store.Load()
	if err != nil {
		return err
	}

	added := 0
	for _, o := range importer.Apply(book, rows) {
		if o.Err != nil {
			logger.Info("import row skipped", zap.Any("row", o.Row), zap.Error(o.Err))
			fmt.Fprintln(out, st.Error.Render(fmt.Sprintf("skipped %s/%s/%s: %v", o.Row.Class, o.Row.Student, o.Row.Subject, o.Err)))
			continue
		}
		added++
	}

	fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("%d of %d grades imported", added, len(rows))))
	if dryRun || added == 0 {
		return nil
	}
	return store.Save(book)
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("dry-run", false, "Check the report without saving")
}
