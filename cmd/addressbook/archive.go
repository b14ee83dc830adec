package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/addressbook/internal/command"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage address book snapshots in the archive directory",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archive files, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine(cmd, command.ListArchivesWord)
	},
}

var archiveCreateCmd = &cobra.Command{
	Use:   "create [LABEL]",
	Short: "Write a snapshot of the address book",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := command.ArchiveWord
		if len(args) == 1 {
			line += " " + args[0]
		}
		return runLine(cmd, line)
	},
}

var archiveLoadCmd = &cobra.Command{
	Use:   "load FILENAME",
	Short: "Replace the address book with an archive file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine(cmd, command.LoadArchiveWord+" "+args[0])
	},
}

var archiveDeleteCmd = &cobra.Command{
	Use:     "delete FILENAME",
	Short:   "Delete an archive file",
	Example: "  addressbook archive delete addressbook-20241023_114324-example.json",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine(cmd, command.DeleteArchiveWord+" "+args[0])
	},
}

func init() {
	archiveCmd.AddCommand(archiveListCmd, archiveCreateCmd, archiveLoadCmd, archiveDeleteCmd)
}
