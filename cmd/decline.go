package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newDeclineCmd() *cobra.Command {
	var (
		opts     calendarOpts
		noNotify bool
	)

	cmd := &cobra.Command{
		Use:   "decline <title>",
		Short: "Decline a meeting found by title",
		Long: `Find the day's event whose title contains the given text and decline it
on your behalf. The title must match exactly one event; use a longer
fragment when several meetings share a word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := client.DeclineEvent(opts.calendarID, event.ID, !noNotify); err != nil {
				return fmt.Errorf("failed to decline %q: %w", event.Title, err)
			}

			cmd.Printf("❌ Declined %q (%s - %s)\n", event.Title, agenda.Clock(event.Start), agenda.Clock(event.End))
			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Do not notify the organizer about the decline")
	return cmd
}
