package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/localnerve/guardroster/internal/models"
	"github.com/localnerve/guardroster/internal/report"
	"github.com/localnerve/guardroster/internal/roster"
	"github.com/localnerve/guardroster/internal/schedule"
	"github.com/localnerve/guardroster/internal/scoring"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newLoginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and print the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(opts.out, res.Token)
			return nil
		},
	}
}

func newGuardsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guards",
		Short: "List, add and delete guards",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List guards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			guards, err := opts.client().Guards(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(opts.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tID NUMBER\tPHONE")
			for _, g := range guards {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.ID, g.FullName(), g.IDNumber, g.Phone)
			}
			return w.Flush()
		},
	}

	var firstName, lastName, idNumber, phone string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a guard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			guards, err := client.Guards(cmd.Context())
			if err != nil {
				return err
			}
			if err := roster.ValidateNewGuard(len(guards), firstName, lastName, idNumber, phone); err != nil {
				return err
			}
			guard, err := client.AddGuard(cmd.Context(), firstName, lastName, idNumber, phone)
			if err != nil {
				return err
			}
			fmt.Fprintln(opts.out, guard.ID)
			return nil
		},
	}
	add.Flags().StringVar(&firstName, "first-name", "", "first name")
	add.Flags().StringVar(&lastName, "last-name", "", "last name")
	add.Flags().StringVar(&idNumber, "id-number", "", "9 digit identity number")
	add.Flags().StringVar(&phone, "phone", "", "mobile number, 05XXXXXXXX")

	del := &cobra.Command{
		Use:   "delete <guard-id>",
		Short: "Delete a guard with all its inspections and exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().DeleteGuard(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func guardNames(guards []models.Guard) map[string]string {
	names := make(map[string]string, len(guards))
	for _, g := range guards {
		names[g.ID] = g.FullName()
	}
	return names
}

func newInspectionsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspections",
		Short: "List and delete inspections",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List inspections with their scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			guards, err := client.Guards(cmd.Context())
			if err != nil {
				return err
			}
			inspections, err := client.Inspections(cmd.Context())
			if err != nil {
				return err
			}
			names := guardNames(guards)

			w := tabwriter.NewWriter(opts.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tGUARD\tINSPECTOR\tSCORE\tTIER")
			for _, i := range inspections {
				b := scoring.ScoreInspection(i)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g/%g\t%s\n",
					i.ID, i.Date.Format(dateLayout), names[i.GuardID], i.InspectorName,
					b.Total, b.Max, scoring.TierFor(b.Total))
			}
			return w.Flush()
		},
	}

	del := &cobra.Command{
		Use:   "delete <inspection-id>",
		Short: "Delete an inspection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().DeleteInspection(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newExercisesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List and delete exercises",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List exercises with their scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			guards, err := client.Guards(cmd.Context())
			if err != nil {
				return err
			}
			exercises, err := client.Exercises(cmd.Context())
			if err != nil {
				return err
			}
			names := guardNames(guards)

			w := tabwriter.NewWriter(opts.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tGUARD\tINSTRUCTOR\tTYPE\tSCORE\tTIER")
			for _, e := range exercises {
				b := scoring.ScoreExercise(e)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\t%s\n",
					e.ID, e.Date.Format(dateLayout), names[e.GuardID], e.InstructorName, e.ExerciseType,
					b.Total, scoring.ExerciseMax, scoring.TierFor(float64(b.Total)))
			}
			return w.Flush()
		},
	}

	del := &cobra.Command{
		Use:   "delete <exercise-id>",
		Short: "Delete an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().DeleteExercise(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newRemindersCmd(opts *options) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Show guards ordered by their next due inspection or exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			guards, err := client.Guards(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now()
			var reminders []schedule.Reminder
			switch kind {
			case "inspections":
				inspections, err := client.Inspections(cmd.Context())
				if err != nil {
					return err
				}
				reminders = schedule.InspectionReminders(guards, inspections, now)
			case "exercises":
				exercises, err := client.Exercises(cmd.Context())
				if err != nil {
					return err
				}
				reminders = schedule.ExerciseReminders(guards, exercises, now)
			default:
				return fmt.Errorf("unknown reminder kind %q, use inspections or exercises", kind)
			}

			w := tabwriter.NewWriter(opts.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GUARD\tLAST\tDAYS\tSTATUS")
			for _, r := range reminders {
				last := "never"
				if r.LastActivity != nil {
					last = r.LastActivity.Format(dateLayout)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Guard.FullName(), last, r.DaysUntilNext, reminderStatus(r))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "inspections", "inspections or exercises")
	return cmd
}

func reminderStatus(r schedule.Reminder) string {
	switch {
	case r.IsOverdue:
		return "overdue"
	case r.IsDueSoon:
		return "due soon"
	}
	return "ok"
}

func newExportCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export guards, inspections and exercises with scores to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			var data report.Data
			var err error
			if data.Guards, err = client.Guards(cmd.Context()); err != nil {
				return err
			}
			if data.Inspections, err = client.Inspections(cmd.Context()); err != nil {
				return err
			}
			if data.Exercises, err = client.Exercises(cmd.Context()); err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := report.Write(f, data, time.Now()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(opts.out, "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "guardroster.xlsx", "output file")
	return cmd
}
