package commands

import (
	"context"
)

const (
	UndoCommandWord = "undo"
	RedoCommandWord = "redo"
	HelpCommandWord = "help"
	ExitCommandWord = "exit"
)

const (
	MessageUndoSuccess     = "Undo success!"
	MessageUndoError       = "Unable to undo: "
	MessageRedoSuccess     = "Redo success!"
	MessageRedoError       = "Unable to redo: "
	MessageShowingHelp     = "Opened help window."
	MessageExitAcknowledge = "Exiting Scrolls as requested ..."
)

// Undo restores the previous committed state.
type Undo struct{}

func (Undo) Word() string { return UndoCommandWord }

func (Undo) Execute(ctx context.Context, model Model) (Result, error) {
	if err := model.Undo(ctx); err != nil {
		return Result{}, fail(MessageUndoError, err)
	}
	return Result{Feedback: MessageUndoSuccess}, nil
}

// Redo re-applies the most recently undone state.
type Redo struct{}

func (Redo) Word() string { return RedoCommandWord }

func (Redo) Execute(ctx context.Context, model Model) (Result, error) {
	if err := model.Redo(ctx); err != nil {
		return Result{}, fail(MessageRedoError, err)
	}
	return Result{Feedback: MessageRedoSuccess}, nil
}

// Help asks the front end to show Usage.
type Help struct {
	Usage string
}

func (Help) Word() string { return HelpCommandWord }

func (c Help) Execute(context.Context, Model) (Result, error) {
	feedback := MessageShowingHelp
	if c.Usage != "" {
		feedback = c.Usage
	}
	return Result{Feedback: feedback, ShowHelp: true}, nil
}

// Exit asks the front end to terminate.
type Exit struct{}

func (Exit) Word() string { return ExitCommandWord }

func (Exit) Execute(context.Context, Model) (Result, error) {
	return Result{Feedback: MessageExitAcknowledge, Exit: true}, nil
}
