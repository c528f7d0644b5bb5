package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/timeslots"
)

func newAssignCommand(state *app) *cobra.Command {
	var shift bool

	cmd := &cobra.Command{
		Use:   "assign <batch.yaml>",
		Short: "Place the assignments of a batch file and report each outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, assignments, outcomes, errLoad := state.loadRegistry(args[0], shift)
			if errLoad != nil {
				return errLoad
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "#\tCALENDAR\tRESOURCE\tREQUESTED\tPAYLOAD\tOUTCOME")

			for ix, assignment := range assignments {
				fmt.Fprintf(
					w,
					"%d\t%s\t%s\t%s\t%s\t%s\n",

					ix+1,
					assignment.CalendarKey,
					assignment.ResourceID,
					state.formatInterval(
						timeslots.Interval[int64]{
							TimeStart: assignment.TimeStart,
							TimeEnd:   assignment.TimeEnd,
						},
					),
					assignment.Payload,
					outcomes[ix],
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&shift, "shift", false, "move conflicting assignments to the next free gap")

	return cmd
}

func newAtCommand(state *app) *cobra.Command {
	var shift bool

	cmd := &cobra.Command{
		Use:   "at <batch.yaml> <RFC3339 time>",
		Short: "List the slots active at a point in time across all calendars",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			point, errParse := state.parseInstant(args[1])
			if errParse != nil {
				return errParse
			}

			registry, _, _, errLoad := state.loadRegistry(args[0], shift)
			if errLoad != nil {
				return errLoad
			}

			hits := registry.AllSlotsAt(point)
			if len(hits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no slots active")

				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "CALENDAR\tRESOURCE\tSLOT\tPAYLOAD")

			for _, hit := range hits {
				fmt.Fprintf(
					w,
					"%s\t%s\t%s\t%s\n",

					hit.CalendarKey,
					hit.ResourceID,
					state.formatInterval(hit.Interval()),
					hit.Payload,
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&shift, "shift", false, "load the batch with shifting")

	return cmd
}

func newFreeCommand(state *app) *cobra.Command {
	var shift bool

	cmd := &cobra.Command{
		Use:   "free <batch.yaml> <calendar> <resource> <from> <to>",
		Short: "List the free gaps of a resource inside a window",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, errFrom := state.parseInstant(args[3])
			if errFrom != nil {
				return errFrom
			}

			to, errTo := state.parseInstant(args[4])
			if errTo != nil {
				return errTo
			}

			registry, _, _, errLoad := state.loadRegistry(args[0], shift)
			if errLoad != nil {
				return errLoad
			}

			resources, exists := registry.Calendar(args[1])
			if !exists {
				return fmt.Errorf("%w: %s", timeslots.ErrCalendarNotFound, args[1])
			}

			index, exists := resources.Index(args[2])
			if !exists {
				return fmt.Errorf("%w: %s", timeslots.ErrResourceNotFound, args[2])
			}

			gaps, fullyFree := index.FreeIntervals(
				timeslots.Interval[int64]{
					TimeStart: from,
					TimeEnd:   to,
				},
			)

			return state.printGaps(cmd.OutOrStdout(), gaps, fullyFree)
		},
	}

	cmd.Flags().BoolVar(&shift, "shift", false, "load the batch with shifting")

	return cmd
}

func (a *app) printGaps(out io.Writer, gaps []timeslots.Interval[int64], fullyFree bool) error {
	switch {
	case fullyFree:
		_, errWrite := fmt.Fprintln(out, okColor.Sprint("fully available"))

		return errWrite

	case len(gaps) == 0:
		_, errWrite := fmt.Fprintln(out, failColor.Sprint("fully booked"))

		return errWrite
	}

	for _, gap := range gaps {
		if _, errWrite := fmt.Fprintln(out, a.formatInterval(gap)); errWrite != nil {
			return errWrite
		}
	}

	return nil
}
