package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"casetrack/internal/backup"
	"casetrack/internal/blob"
)

func (a *app) backupService() (*backup.Service, error) {
	store, err := blob.Open(a.cfg.Backup)
	if err != nil {
		return nil, fmt.Errorf("open backup store: %w", err)
	}
	return backup.New(store, backup.WithLogger(a.logger)), nil
}

func (a *app) newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive and restore the address book",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Archive the current address book",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := a.backupService()
				if err != nil {
					return err
				}
				return a.withSession(cmd.Context(), func(s *session) error {
					entry, err := svc.Create(cmd.Context(), s.manager.AddressBook())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s (%d patients)\n", entry.Key, entry.Patients)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List backups, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := a.backupService()
				if err != nil {
					return err
				}
				entries, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No backups found")
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%s\t%d patients\t%d bytes\n", e.Key, e.Patients, e.Size)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "restore KEY",
			Short: "Replace the address book with the backup at KEY",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.backupService()
				if err != nil {
					return err
				}
				return a.withSession(cmd.Context(), func(s *session) error {
					entry, err := svc.Restore(cmd.Context(), args[0], s.manager)
					if err != nil {
						return err
					}
					s.dirty = true
					fmt.Fprintf(cmd.OutOrStdout(), "Restored %s (%d patients)\n", entry.Key, entry.Patients)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete KEY",
			Short: "Delete the backup at KEY",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.backupService()
				if err != nil {
					return err
				}
				if err := svc.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted backup %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
