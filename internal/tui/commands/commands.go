// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osalguero/muster/internal/roster"
)

// RosterLoadedMsg is sent when the roster is loaded from storage.
type RosterLoadedMsg struct {
	Elements []roster.Element
}

// RosterSavedMsg is sent when the roster is persisted successfully.
type RosterSavedMsg struct {
	Count int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadRoster loads the stored roster.
func LoadRoster(repo roster.Repository) tea.Cmd {
	return func() tea.Msg {
		elems, err := repo.LoadRoster(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return RosterLoadedMsg{Elements: elems}
	}
}

// SaveRoster writes the given element sequence through to storage.
func SaveRoster(repo roster.Repository, elems []roster.Element) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := repo.SaveRoster(context.Background(), elems); err != nil {
			return ErrMsg{Err: err}
		}
		return RosterSavedMsg{Count: len(elems)}
	}
}
