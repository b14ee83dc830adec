// Package command executes user-issued textual commands against the address
// book model. Commands are values; executing one yields a Result carrying the
// message shown to the user.
package command

import (
	"context"
	"errors"

	"github.com/jask/addressbook/internal/database/repository"
)

var errNilModel = errors.New("command: nil model")

// Model is what commands need from the address book.
type Model interface {
	ArchiveDirectoryPath() string
	Persons(ctx context.Context) ([]repository.Person, error)
	ReplacePersons(ctx context.Context, persons []repository.Person) error
}

// Command is a parsed user command.
type Command interface {
	Execute(ctx context.Context, m Model) (Result, error)
}

// Result is the outcome of executing a command.
type Result struct {
	Feedback string
	// ShowHelp asks the UI to show the command reference.
	ShowHelp bool
	// Exit asks the UI to quit.
	Exit bool
	// Reload tells the UI the stored persons changed.
	Reload bool
}

func NewResult(feedback string) Result { return Result{Feedback: feedback} }
