package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newRescheduleCmd() *cobra.Command {
	var (
		opts         calendarOpts
		shiftMinutes int
		message      string
		noNotify     bool
	)

	cmd := &cobra.Command{
		Use:   "reschedule <title>",
		Short: "Shift a meeting and notify attendees",
		Long: `Find the day's event whose title contains the given text and move it by
--shift-minutes, keeping its duration. A positive shift pushes the
meeting later, a negative one pulls it earlier. The optional --message
is prepended to the event description so attendees see why it moved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if shiftMinutes == 0 {
				return fmt.Errorf("--shift-minutes must be non-zero")
			}

			day, loc, err := opts.resolve()
			if err != nil {
				return err
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			event, err := client.FindEventByTitle(opts.calendarID, day, loc, args[0])
			if err != nil {
				return err
			}

			shift := time.Duration(shiftMinutes) * time.Minute
			newStart := event.Start.Add(shift)
			newEnd := event.End.Add(shift)

			if _, err := client.RescheduleEvent(opts.calendarID, event.ID, newStart, newEnd, loc.String(), message, !noNotify); err != nil {
				return fmt.Errorf("failed to reschedule %q: %w", event.Title, err)
			}

			cmd.Printf("🔀 Rescheduled %q to %s - %s\n", event.Title, agenda.Clock(newStart), agenda.Clock(newEnd))
			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	cmd.Flags().IntVar(&shiftMinutes, "shift-minutes", 0, "Minutes to move the meeting by (negative moves it earlier)")
	cmd.Flags().StringVar(&message, "message", "", "Note for attendees explaining the move")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Do not notify attendees about the new time")
	_ = cmd.MarkFlagRequired("shift-minutes")
	return cmd
}
