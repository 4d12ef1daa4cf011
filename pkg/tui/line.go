package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gradebook/pkg/gradebook"
)

// LinePrompter reads answers one line at a time. It works on any reader,
// so it is used for piped input and with --plain.
type LinePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

// NewLinePrompter creates a prompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer, styles Styles) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, styles: styles}
}

func (p *LinePrompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, p.styles.Input.Render(prompt)+": ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts.
		if !errors.Is(err, io.EOF) || line == "" {
			fmt.Fprintln(p.out)
			if errors.Is(err, io.EOF) {
				return "", ErrAborted
			}
			return "", fmt.Errorf("%w: %v", ErrAborted, err)
		}
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) complain(msg string) {
	fmt.Fprintln(p.out, p.styles.Error.Render(msg))
}

// Menu prints the numbered menu until a valid choice is entered.
func (p *LinePrompter) Menu() (Action, error) {
	for {
		fmt.Fprintln(p.out, p.styles.Title.Render("===== Gradebook System Menu ====="))
		for a := ActionAdd; a <= ActionExit; a++ {
			fmt.Fprintf(p.out, "%d. %s\n", a, a)
		}

		line, err := p.readLine(fmt.Sprintf("Choose an option (%d-%d)", ActionAdd, ActionExit))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			p.complain(fmt.Sprintf("Invalid option. Please enter a number (%d-%d).", ActionAdd, ActionExit))
			continue
		}
		if Action(n) < ActionAdd || Action(n) > ActionExit {
			p.complain(fmt.Sprintf("Invalid option. Please enter a number between %d and %d.", ActionAdd, ActionExit))
			continue
		}
		return Action(n), nil
	}
}

// Name re-prompts until the input is a valid name.
func (p *LinePrompter) Name(title, placeholder string) (string, error) {
	prompt := title
	if placeholder != "" {
		prompt = fmt.Sprintf("%s (%s)", title, placeholder)
	}
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if err := gradebook.ValidateName(line); err != nil {
			p.complain(capitalize(err.Error()) + ". Please try again.")
			continue
		}
		return line, nil
	}
}

// Grade re-prompts until the input is a number in the grade range.
func (p *LinePrompter) Grade(title string) (float64, error) {
	for {
		line, err := p.readLine(title)
		if err != nil {
			return 0, err
		}
		grade, err := gradebook.ParseGrade(line)
		if err != nil {
			p.complain(capitalize(err.Error()) + ". Try again.")
			continue
		}
		return grade, nil
	}
}

// Confirm accepts y or yes, case-insensitively. Anything else is a no.
func (p *LinePrompter) Confirm(title string) (bool, error) {
	line, err := p.readLine(title + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *LinePrompter) Show(r gradebook.Result) {
	fmt.Fprintln(p.out, RenderResult(p.styles, r))
}

func (p *LinePrompter) ShowError(err error) {
	fmt.Fprintln(p.out, RenderError(p.styles, err))
}

func (p *LinePrompter) Notice(msg string) {
	fmt.Fprintln(p.out, p.styles.Title.Render(msg))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
