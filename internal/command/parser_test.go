package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/addressbook/internal/archive"
)

func TestParseDeleteArchive(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	cmd, err := r.Parse("deleteArchive   addressbook-20241023_114324-example.json ")
	require.NoError(t, err)
	require.True(t, NewDeleteArchive("addressbook-20241023_114324-example.json").Equal(cmd))

	for _, input := range []string{"deleteArchive\ta.json", "deleteArchive \t a.json", "\tdeleteArchive\na.json"} {
		cmd, err = r.Parse(input)
		require.NoError(t, err, "%q", input)
		require.True(t, NewDeleteArchive("a.json").Equal(cmd), "%q", input)
	}

	_, err = r.Parse("deleteArchive")
	require.ErrorIs(t, err, ErrInvalidFormat)
	require.True(t, strings.HasPrefix(err.Error(), "Invalid command format!"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, DeleteArchiveUsage, perr.Usage)
	require.Contains(t, perr.Detail, archive.ErrInvalidFilename.Error())

	_, err = r.Parse("deleteArchive ../etc/passwd.json")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseEveryWord(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	cases := map[string]Command{
		"list":                List{},
		"help":                Help{},
		"exit":                Exit{},
		"listArchives":        ListArchives{},
		"loadArchive a.json":  LoadArchive{Filename: "a.json"},
		"archive":             Archive{},
		"archive nightly-run": Archive{Label: "nightly-run"},
	}
	for input, want := range cases {
		got, err := r.Parse(input)
		require.NoError(t, err, input)
		if eq, ok := want.(interface{ Equal(Command) bool }); ok {
			require.True(t, eq.Equal(got), input)
			continue
		}
		require.Equal(t, want, got, input)
	}

	_, err := r.Parse("archive two words")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = r.Parse("archive two\twords")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseArchiveRejectsBadLabel(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, input := range []string{"archive a/b", "archive ../x", "archive x.json"} {
		_, err := r.Parse(input)
		require.ErrorIs(t, err, ErrInvalidFormat, input)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, input)
		require.Equal(t, ArchiveUsage, perr.Usage)
	}
}

func TestParseHelpForOneCommand(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	cmd, err := r.Parse("help deleteArchive")
	require.NoError(t, err)
	require.Equal(t, Help{Word: DeleteArchiveWord, Usage: DeleteArchiveUsage}, cmd)

	_, err = r.Parse("help frobnicate")
	require.ErrorIs(t, err, ErrInvalidFormat)
	require.Contains(t, err.Error(), "known commands: list, archive")
}

func TestErrorSentinelsAreLowercase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unknown command", ErrUnknownCommand.Error())
	require.Equal(t, "invalid command format", ErrInvalidFormat.Error())
}

func TestParseUnknownSuggests(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	_, err := r.Parse("deletearchive a.json")
	require.ErrorIs(t, err, ErrUnknownCommand)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "deleteArchive", perr.Suggestion)
	require.True(t, strings.HasPrefix(err.Error(), "Unknown command"))
	require.Contains(t, err.Error(), `did you mean "deleteArchive"?`)

	_, err = r.Parse("frobnicate")
	require.ErrorIs(t, err, ErrUnknownCommand)
	require.ErrorAs(t, err, &perr)
	require.Empty(t, perr.Suggestion)

	_, err = r.Parse("   ")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRegistryHelpListsEveryWord(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	help := r.Help()
	for _, w := range r.Words() {
		usage, ok := r.Usage(w)
		require.True(t, ok)
		require.Contains(t, help, usage)
	}
	require.Equal(t, []string{"list", "archive", "listArchives", "loadArchive", "deleteArchive", "help", "exit"}, r.Words())
}
