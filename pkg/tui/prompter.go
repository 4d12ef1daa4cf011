// Package tui is the terminal front end of the gradebook: a Prompter that
// collects validated input and a Session that runs the main menu.
package tui

import (
	"errors"

	"gradebook/pkg/gradebook"
)

// ErrAborted is returned when the user leaves the session without choosing
// Exit, for example with Ctrl-C or by closing stdin.
var ErrAborted = errors.New("session aborted")

// Action is a main menu entry. The values match the numbers shown in the
// plain menu.
type Action int

const (
	ActionAdd Action = iota + 1
	ActionDelete
	ActionModify
	ActionExit
)

var actionLabels = map[Action]string{
	ActionAdd:    "Add Grade",
	ActionDelete: "Delete Grade",
	ActionModify: "Modify Grade",
	ActionExit:   "Exit",
}

func (a Action) String() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return "Unknown"
}

// Prompter is the terminal surface used by Session. Name and Grade only
// return once the input is valid; every method returns an error wrapping
// ErrAborted when input ends.
type Prompter interface {
	Menu() (Action, error)
	Name(title, placeholder string) (string, error)
	Grade(title string) (float64, error)
	Confirm(title string) (bool, error)
	Show(r gradebook.Result)
	ShowError(err error)
	Notice(msg string)
}
