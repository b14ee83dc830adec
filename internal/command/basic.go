package command

import "context"

const (
	ListWord  = "list"
	ListUsage = ListWord + ": Lists all persons in the address book.\n" +
		"Example: " + ListWord
	MessageListSuccess = "Listed all persons"

	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Parameters: [COMMAND]\n" +
		"Example: " + HelpWord + " " + DeleteArchiveWord
	MessageShowingHelp = "Opened help window."

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program.\n" +
		"Example: " + ExitWord
	MessageExit = "Exiting Address Book as requested ..."
)

type List struct{}

func (List) Execute(context.Context, Model) (Result, error) {
	res := NewResult(MessageListSuccess)
	res.Reload = true
	return res, nil
}

// Help opens the command reference, or prints one command's usage when Word
// is set.
type Help struct {
	Word  string
	Usage string
}

func (c Help) Execute(context.Context, Model) (Result, error) {
	if c.Word != "" {
		return NewResult(c.Usage), nil
	}
	res := NewResult(MessageShowingHelp)
	res.ShowHelp = true
	return res, nil
}

type Exit struct{}

func (Exit) Execute(context.Context, Model) (Result, error) {
	res := NewResult(MessageExit)
	res.Exit = true
	return res, nil
}
