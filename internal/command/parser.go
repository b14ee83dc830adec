package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/jask/addressbook/internal/archive"
)

// ErrUnknownCommand is wrapped by parse errors for unrecognised command words.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidFormat is wrapped by parse errors for malformed arguments.
var ErrInvalidFormat = errors.New("invalid command format")

const maxSuggestionDistance = 3

// ParseError explains why an input line could not become a Command.
type ParseError struct {
	Err        error
	Detail     string
	Usage      string
	Suggestion string
}

// Error renders the message shown to the user.
func (e *ParseError) Error() string {
	var b strings.Builder
	switch {
	case errors.Is(e.Err, ErrUnknownCommand):
		b.WriteString("Unknown command")
	case errors.Is(e.Err, ErrInvalidFormat):
		b.WriteString("Invalid command format!")
	default:
		b.WriteString(e.Err.Error())
	}
	if e.Detail != "" {
		b.WriteString(" ")
		b.WriteString(e.Detail)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	if e.Usage != "" {
		b.WriteString("\n")
		b.WriteString(e.Usage)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Spec describes one command word.
type Spec struct {
	Word  string
	Usage string
	Parse func(args string) (Command, error)
}

// Registry maps command words to their parsers.
type Registry struct {
	specs map[string]Spec
	order []string
}

func NewRegistry(specs []Spec) *Registry {
	r := &Registry{specs: map[string]Spec{}}
	for _, s := range specs {
		r.Register(s)
	}
	return r
}

// DefaultRegistry knows every built-in command.
func DefaultRegistry() *Registry {
	r := NewRegistry([]Spec{
		{Word: ListWord, Usage: ListUsage, Parse: noArgs(List{})},
		{Word: ArchiveWord, Usage: ArchiveUsage, Parse: func(args string) (Command, error) {
			if strings.IndexFunc(args, unicode.IsSpace) >= 0 {
				return nil, errors.New("archive labels cannot contain spaces")
			}
			if err := archive.ValidLabel(args); err != nil {
				return nil, err
			}
			return Archive{Label: args}, nil
		}},
		{Word: ListArchivesWord, Usage: ListArchivesUsage, Parse: noArgs(ListArchives{})},
		{Word: LoadArchiveWord, Usage: LoadArchiveUsage, Parse: func(args string) (Command, error) {
			name, err := archive.ParseFilename(args)
			if err != nil {
				return nil, err
			}
			return LoadArchive{Filename: name}, nil
		}},
		{Word: DeleteArchiveWord, Usage: DeleteArchiveUsage, Parse: func(args string) (Command, error) {
			name, err := archive.ParseFilename(args)
			if err != nil {
				return nil, err
			}
			return NewDeleteArchive(name), nil
		}},
	})
	r.Register(Spec{Word: HelpWord, Usage: HelpUsage, Parse: r.parseHelp})
	r.Register(Spec{Word: ExitWord, Usage: ExitUsage, Parse: noArgs(Exit{})})
	return r
}

// parseHelp accepts an optional command word to describe.
func (r *Registry) parseHelp(args string) (Command, error) {
	if args == "" {
		return Help{}, nil
	}
	usage, ok := r.Usage(args)
	if !ok {
		return nil, fmt.Errorf("no command %q; known commands: %s", args, strings.Join(r.Words(), ", "))
	}
	return Help{Word: args, Usage: usage}, nil
}

func noArgs(c Command) func(string) (Command, error) {
	return func(string) (Command, error) { return c, nil }
}

func (r *Registry) Register(s Spec) {
	if s.Word == "" || s.Parse == nil {
		return
	}
	if _, ok := r.specs[s.Word]; !ok {
		r.order = append(r.order, s.Word)
	}
	r.specs[s.Word] = s
}

// Parse turns "word [args]" into a Command.
func (r *Registry) Parse(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &ParseError{Err: ErrInvalidFormat, Usage: r.Help()}
	}
	word, args := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, args = trimmed[:i], strings.TrimSpace(trimmed[i:])
	}

	spec, ok := r.specs[word]
	if !ok {
		suggestion, _ := r.Suggest(word)
		return nil, &ParseError{Err: ErrUnknownCommand, Suggestion: suggestion}
	}
	cmd, err := spec.Parse(args)
	if err != nil {
		return nil, &ParseError{Err: ErrInvalidFormat, Detail: err.Error(), Usage: spec.Usage}
	}
	return cmd, nil
}

// Suggest returns the closest known command word to word.
func (r *Registry) Suggest(word string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	needle := strings.ToLower(word)
	for _, w := range r.order {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(w))
		if d < bestDist {
			best, bestDist = w, d
		}
	}
	return best, best != ""
}

// Words lists the registered command words in registration order.
func (r *Registry) Words() []string { return append([]string(nil), r.order...) }

// Usage returns the usage text for word.
func (r *Registry) Usage(word string) (string, bool) {
	s, ok := r.specs[word]
	return s.Usage, ok
}

// Help joins every usage text.
func (r *Registry) Help() string {
	parts := make([]string, 0, len(r.order))
	for _, w := range r.order {
		parts = append(parts, r.specs[w].Usage)
	}
	return strings.Join(parts, "\n\n")
}
