package main

import (
	"errors"

	"github.com/spf13/cobra"

	"casetrack/internal/command"
	"casetrack/pkg/domain"
)

const (
	flagName        = "name"
	flagPhone       = "phone"
	flagEmail       = "email"
	flagAddress     = "address"
	flagIncome      = "income"
	flagMedicalInfo = "medical-info"
	flagTag         = "tag"
	flagClearTags   = "clear-tags"
	flagNote        = "note"
	flagSubstring   = "substring"
)

// patientFlags are the raw field values accepted by add and edit.
type patientFlags struct {
	name, phone, email, address, income, medicalInfo string
	tags                                             []string
}

func (f *patientFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.name, flagName, "n", "", "patient name")
	fl.StringVarP(&f.phone, flagPhone, "p", "", "phone number")
	fl.StringVarP(&f.email, flagEmail, "e", "", "email address")
	fl.StringVarP(&f.address, flagAddress, "a", "", "postal address")
	fl.StringVarP(&f.income, flagIncome, "i", "", "monthly income")
	fl.StringVarP(&f.medicalInfo, flagMedicalInfo, "m", "", "medical information")
	fl.StringArrayVarP(&f.tags, flagTag, "t", nil, "tag (repeatable)")
}

// details validates the supplied values. Unset required fields are left zero so
// the patient constructor reports them as missing.
func (f *patientFlags) details() (domain.Details, error) {
	var d domain.Details
	var err error
	if f.name != "" {
		if d.Name, err = domain.NewName(f.name); err != nil {
			return d, err
		}
	}
	if f.phone != "" {
		if d.Phone, err = domain.NewPhone(f.phone); err != nil {
			return d, err
		}
	}
	if f.email != "" {
		if d.Email, err = domain.NewEmail(f.email); err != nil {
			return d, err
		}
	}
	if f.address != "" {
		if d.Address, err = domain.NewAddress(f.address); err != nil {
			return d, err
		}
	}
	if f.income != "" {
		if d.Income, err = domain.NewIncome(f.income); err != nil {
			return d, err
		}
	}
	if f.medicalInfo != "" {
		if d.MedicalInfo, err = domain.NewMedicalInfo(f.medicalInfo); err != nil {
			return d, err
		}
	}
	if d.Tags, err = domain.NewTags(f.tags...); err != nil {
		return d, err
	}
	return d, nil
}

// descriptor validates only the flags set on cmd.
func (f *patientFlags) descriptor(cmd *cobra.Command, clearTags bool) (command.Descriptor, error) {
	var desc command.Descriptor
	changed := cmd.Flags().Changed
	if changed(flagName) {
		v, err := domain.NewName(f.name)
		if err != nil {
			return desc, err
		}
		desc.Name = &v
	}
	if changed(flagPhone) {
		v, err := domain.NewPhone(f.phone)
		if err != nil {
			return desc, err
		}
		desc.Phone = &v
	}
	if changed(flagEmail) {
		v, err := domain.NewEmail(f.email)
		if err != nil {
			return desc, err
		}
		desc.Email = &v
	}
	if changed(flagAddress) {
		v, err := domain.NewAddress(f.address)
		if err != nil {
			return desc, err
		}
		desc.Address = &v
	}
	if changed(flagIncome) {
		v, err := domain.NewIncome(f.income)
		if err != nil {
			return desc, err
		}
		desc.Income = &v
	}
	if changed(flagMedicalInfo) {
		v, err := domain.NewMedicalInfo(f.medicalInfo)
		if err != nil {
			return desc, err
		}
		desc.MedicalInfo = &v
	}
	if changed(flagTag) || clearTags {
		tags, err := domain.NewTags(f.tags...)
		if err != nil {
			return desc, err
		}
		desc.Tags = &tags
	}
	return desc, nil
}

func (a *app) newAddCmd() *cobra.Command {
	var f patientFlags
	var notes []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		Example: `  casetrack add -n "John Doe" -p 98765432 -e johnd@example.com \
    -a "311, Clementi Ave 2, #02-25" -i 2500 -m Asthma -t friends`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := f.details()
			if err != nil {
				return err
			}
			for _, raw := range notes {
				n, err := domain.NewNote(raw)
				if err != nil {
					return err
				}
				d.Notes = append(d.Notes, n)
			}
			p, err := domain.NewPatient(d)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), command.Add{Patient: p})
		},
	}
	f.register(cmd)
	cmd.Flags().StringArrayVar(&notes, flagNote, nil, "case note (repeatable)")
	return cmd
}

func (a *app) newEditCmd() *cobra.Command {
	var f patientFlags
	var clearTags bool
	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit the patient at INDEX",
		Long: `Replaces the given fields of the patient at INDEX. Tags given with --tag
replace the existing tags; --clear-tags removes them all. Notes are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := command.ParseIndex(args[0])
			if err != nil {
				return err
			}
			desc, err := f.descriptor(cmd, clearTags)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), command.Edit{Index: idx, Descriptor: desc})
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&clearTags, flagClearTags, false, "remove every tag")
	return cmd
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the patient at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := command.ParseIndex(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), command.Delete{Index: idx})
		},
	}
}

func (a *app) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), command.Clear{})
		},
	}
}

func (a *app) newFindCmd() *cobra.Command {
	var tag, substring string
	cmd := &cobra.Command{
		Use:   "find [KEYWORD...]",
		Short: "List patients matching every given criterion",
		Long: `Lists patients whose name contains any KEYWORD as a whole word. --substring
matches part of a name and --tag requires the tag; all given criteria must hold.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && substring == "" && tag == "" {
				return errors.New("provide at least one keyword, --substring or --tag")
			}
			var t domain.Tag
			if tag != "" {
				var err error
				if t, err = domain.NewTag(tag); err != nil {
					return err
				}
			}
			var c command.Command = command.Find{Keywords: args, Substring: substring, Tag: t}
			if len(args) == 0 && substring == "" {
				c = command.FindTag{Tag: t}
			}
			return a.listWith(cmd, c)
		},
	}
	cmd.Flags().StringVarP(&tag, flagTag, "t", "", "tag to match")
	cmd.Flags().StringVarP(&substring, flagSubstring, "s", "", "part of a name to match")
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.listWith(cmd, command.List{})
		},
	}
}

// listWith runs a filtering command and prints the visible patients numbered by
// their position in the full list, which is what later invocations index.
func (a *app) listWith(cmd *cobra.Command, c command.Command) error {
	out := cmd.OutOrStdout()
	return a.withSession(cmd.Context(), func(s *session) error {
		if _, err := s.execute(c, out); err != nil {
			return err
		}
		printPatients(out, s.manager.Patients(), s.manager.FilteredPatients())
		return nil
	})
}

func (a *app) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view INDEX",
		Short: "Show every field and note of the patient at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := command.ParseIndex(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), cmd.OutOrStdout(), command.View{Index: idx})
		},
	}
}
