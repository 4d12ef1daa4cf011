package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"gradebook/pkg/config"
)

const customAccent = "custom"

// accentPresets are offered before the custom hex option.
var accentPresets = []struct {
	Label string
	Color string
}{
	{"Gradebook Purple", DefaultAccent},
	{"Sakura Pink", "205"},
	{"Ocean Blue", "86"},
	{"Matrix Green", "42"},
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// accentChoice maps a saved accent to the select value and the custom hex
// field. Colors outside the presets open as Custom with the hex filled in;
// a huh select whose value matches no option falls back to the first one.
func accentChoice(accent string) (choice, hex string) {
	if accent == "" {
		return DefaultAccent, ""
	}
	for _, p := range accentPresets {
		if p.Color == accent {
			return accent, ""
		}
	}
	return customAccent, accent
}

// EditSettings walks through the configurable settings with huh forms and
// saves the result. It reports whether anything was written.
func EditSettings(cfg *config.AppConfig, out io.Writer) (bool, error) {
	theme := Theme(cfg.AccentColor)

	choice, hex := accentChoice(cfg.AccentColor)
	options := make([]huh.Option[string], 0, len(accentPresets)+1)
	for _, p := range accentPresets {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s", colorBlock(p.Color), p.Label), p.Color))
	}
	options = append(options, huh.NewOption("Custom Color", customAccent))

	dataFile := cfg.DataFile
	logFile := cfg.LogFile

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an accent color").
				Description("Pick a preset or choose Custom to enter your own hex code.").
				Options(options...).
				Value(&choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Enter a color").
				Description("A hex code with the # symbol, or an ANSI number. Example: #FF00FF").
				Placeholder("#").
				Value(&hex).
				Validate(config.ValidateAccent),
		).WithHideFunc(func() bool { return choice != customAccent }),
		huh.NewGroup(
			huh.NewInput().
				Title("Gradebook data file").
				Description("Leave empty to use gradebook.txt in the current directory.").
				Value(&dataFile),
			huh.NewInput().
				Title("Debug log file").
				Description("Leave empty to disable logging.").
				Value(&logFile),
		),
	).WithTheme(theme)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	if choice == customAccent {
		choice = hex
	}
	if cfg.AccentColor == "" && choice == DefaultAccent {
		choice = ""
	}
	updated := *cfg
	updated.AccentColor = choice
	updated.DataFile = strings.TrimSpace(dataFile)
	updated.LogFile = strings.TrimSpace(logFile)

	if updated == *cfg {
		fmt.Fprintln(out, "No changes.")
		return false, nil
	}
	if err := config.Save(&updated); err != nil {
		return false, err
	}
	*cfg = updated

	fmt.Fprintln(out, NewStyles(cfg.AccentColor).Title.Render("✅ Settings saved."))
	return true, nil
}
