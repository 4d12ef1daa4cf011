package cmd

import (
	"fmt"

	"gradebook/pkg/gradebook"
	"gradebook/pkg/tui"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add CLASS STUDENT SUBJECT GRADE",
	Short:   "Add a grade, creating the class and student if needed",
	Example: "  gradebook add CS101 JohnDoe Math 85.5",
	Args:    cobra.ExactArgs(4),
	RunE:    runAdd,
}

var deleteCmd = &cobra.Command{
	Use:     "delete CLASS STUDENT SUBJECT",
	Short:   "Delete one subject grade",
	Example: "  gradebook delete CS101 JohnDoe Math",
	Args:    cobra.ExactArgs(3),
	RunE:    runDelete,
}

var modifyCmd = &cobra.Command{
	Use:     "modify CLASS STUDENT SUBJECT GRADE",
	Short:   "Change an existing grade",
	Example: "  gradebook modify CS101 JohnDoe Math 91",
	Args:    cobra.ExactArgs(4),
	RunE:    runModify,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := validateNames(args[:3]); err != nil {
		return err
	}
	grade, err := gradebook.ParseGrade(args[3])
	if err != nil {
		return err
	}
	return applyAndSave(cmd, func(b *gradebook.Book) (gradebook.Result, error) {
		return b.AddGrade(args[0], args[1], args[2], grade)
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := validateNames(args); err != nil {
		return err
	}
	return applyAndSave(cmd, func(b *gradebook.Book) (gradebook.Result, error) {
		return b.DeleteGrade(args[0], args[1], args[2])
	})
}

func runModify(cmd *cobra.Command, args []string) error {
	if err := validateNames(args[:3]); err != nil {
		return err
	}
	grade, err := gradebook.ParseGrade(args[3])
	if err != nil {
		return err
	}
	return applyAndSave(cmd, func(b *gradebook.Book) (gradebook.Result, error) {
		return b.ModifyGrade(args[0], args[1], args[2], grade)
	})
}

func validateNames(names []string) error {
	for _, n := range names {
		if err := gradebook.ValidateName(n); err != nil {
			return fmt.Errorf("invalid name %q: %w", n, err)
		}
	}
	return nil
}

// applyAndSave loads the gradebook, runs op and writes the result back.
// Nothing is written when op fails.
func applyAndSave(cmd *cobra.Command, op func(*gradebook.Book) (gradebook.Result, error)) error {
	store := openStore()

	book, err := store.Load()
	if err != nil {
		return err
	}

	res, err := op(book)
	if err != nil {
		return err
	}

	if err := store.Save(book); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))
	return nil
}

func renderResult(res gradebook.Result) string {
	return tui.RenderResult(styles(), res)
}

func init() {
	rootCmd.AddCommand(addCmd, deleteCmd, modifyCmd)
}
