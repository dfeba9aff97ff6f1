package main

import (
	"strings"

	"github.com/spf13/cobra"

	"casetrack/internal/command"
	"casetrack/pkg/domain"
)

func (a *app) newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage case notes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add INDEX TEXT...",
			Short: "Append a note to the patient at INDEX",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := command.ParseIndex(args[0])
				if err != nil {
					return err
				}
				note, err := domain.NewNote(strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				return a.run(cmd.Context(), cmd.OutOrStdout(), command.AddNote{Index: idx, Note: note})
			},
		},
		&cobra.Command{
			Use:   "delete INDEX NOTE_INDEX",
			Short: "Delete note NOTE_INDEX from the patient at INDEX",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := command.ParseIndex(args[0])
				if err != nil {
					return err
				}
				noteIdx, err := command.ParseIndex(args[1])
				if err != nil {
					return err
				}
				return a.run(cmd.Context(), cmd.OutOrStdout(), command.DeleteNote{Index: idx, NoteIndex: noteIdx})
			},
		},
	)
	return cmd
}
