package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newCommuteCmd() *cobra.Command {
	var (
		opts        calendarOpts
		description string
	)

	cmd := &cobra.Command{
		Use:   "commute <start HH:MM> <end HH:MM>",
		Short: "Put a commute buffer on the calendar",
		Long: `Create a travel buffer for the given span so nobody books you while you
are on the road. The block gets a reminder long enough to leave on
time.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, loc, err := opts.resolve()
			if err != nil {
				return err
			}

			start, err := parseClock(day, loc, args[0])
			if err != nil {
				return err
			}
			end, err := parseClock(day, loc, args[1])
			if err != nil {
				return err
			}
			if !end.After(start) {
				return fmt.Errorf("end %s is not after start %s", args[1], args[0])
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			created, err := client.CreateCommuteBlock(opts.calendarID, description, start, end, loc.String())
			if err != nil {
				return fmt.Errorf("failed to create commute block: %w", err)
			}

			cmd.Printf("🚗 %s (%s - %s)\n", created.Summary, agenda.Clock(start), agenda.Clock(end))
			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	cmd.Flags().StringVar(&description, "description", "", "Notes for the block, e.g. the route or destination")
	return cmd
}
