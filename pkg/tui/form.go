package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"gradebook/pkg/gradebook"
)

// FormPrompter asks questions with huh forms.
type FormPrompter struct {
	theme  *huh.Theme
	styles Styles
	out    io.Writer
}

// NewFormPrompter creates a prompter themed with accent. Results are
// printed to out between forms.
func NewFormPrompter(accent string, out io.Writer) *FormPrompter {
	return &FormPrompter{
		theme:  Theme(accent),
		styles: NewStyles(accent),
		out:    out,
	}
}

func (p *FormPrompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAborted, err)
	}
	return nil
}

func (p *FormPrompter) Menu() (Action, error) {
	var action Action

	options := make([]huh.Option[Action], 0, len(actionLabels))
	for a := ActionAdd; a <= ActionExit; a++ {
		options = append(options, huh.NewOption(a.String(), a))
	}

	err := p.run(huh.NewSelect[Action]().
		Title("Gradebook System Menu").
		Options(options...).
		Value(&action))
	return action, err
}

func (p *FormPrompter) Name(title, placeholder string) (string, error) {
	var input string

	err := p.run(huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		CharLimit(gradebook.MaxNameLen + 2).
		Value(&input).
		Validate(func(str string) error {
			return gradebook.ValidateName(strings.TrimSpace(str))
		}))
	return strings.TrimSpace(input), err
}

func (p *FormPrompter) Grade(title string) (float64, error) {
	var input string

	err := p.run(huh.NewInput().
		Title(title).
		Placeholder("0.0 - 100.0").
		Value(&input).
		Validate(func(str string) error {
			_, err := gradebook.ParseGrade(str)
			return err
		}))
	if err != nil {
		return 0, err
	}
	return gradebook.ParseGrade(input)
}

func (p *FormPrompter) Confirm(title string) (bool, error) {
	var ok bool

	err := p.run(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	return ok, err
}

func (p *FormPrompter) Show(r gradebook.Result) {
	fmt.Fprintln(p.out, RenderResult(p.styles, r))
}

func (p *FormPrompter) ShowError(err error) {
	fmt.Fprintln(p.out, RenderError(p.styles, err))
}

func (p *FormPrompter) Notice(msg string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(msg))
}
