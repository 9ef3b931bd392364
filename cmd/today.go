package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newTodayCmd() *cobra.Command {
	var (
		opts       calendarOpts
		includeAll bool
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List the day's agenda",
		Long: `Print the day's events in chronological order with times, attendance
status, and meeting links. Declined events are hidden unless --all is
given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, loc, err := opts.resolve()
			if err != nil {
				return err
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			events, err := client.ListDayEvents(opts.calendarID, day, loc, includeAll)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			if len(events) == 0 {
				cmd.Printf("No events on %s. Enjoy the quiet.\n", day.Format("Mon, Jan 2"))
				return nil
			}

			cmd.Printf("📅 %s — %d events\n\n", day.Format("Mon, Jan 2 2006"), len(events))
			for _, e := range events {
				cmd.Printf("%s  %s - %s  %s\n", statusIcon(e.Status), agenda.Clock(e.Start), agenda.Clock(e.End), e.Title)
				if e.Location != "" {
					cmd.Printf("    📍 %s\n", e.Location)
				}
				if e.MeetingLink {
					cmd.Printf("    📹 video call\n")
				}
			}

			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	cmd.Flags().BoolVar(&includeAll, "all", false, "Include events you have declined")
	return cmd
}
