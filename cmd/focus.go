package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newFocusCmd() *cobra.Command {
	var (
		opts        calendarOpts
		description string
	)

	cmd := &cobra.Command{
		Use:   "focus <title> <start HH:MM> <end HH:MM>",
		Short: "Put a focus block on the calendar",
		Long: `Create a deep-work block for the given span. The block gets the focus
marker in its title, a distinct color, and a short reminder so you
actually start on time.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, loc, err := opts.resolve()
			if err != nil {
				return err
			}

			start, err := parseClock(day, loc, args[1])
			if err != nil {
				return err
			}
			end, err := parseClock(day, loc, args[2])
			if err != nil {
				return err
			}
			if !end.After(start) {
				return fmt.Errorf("end %s is not after start %s", args[2], args[1])
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			created, err := client.CreateFocusBlock(opts.calendarID, args[0], description, start, end, loc.String())
			if err != nil {
				return fmt.Errorf("failed to create focus block: %w", err)
			}

			cmd.Printf("🎯 %s (%s - %s)\n", created.Summary, agenda.Clock(start), agenda.Clock(end))
			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	cmd.Flags().StringVar(&description, "description", "", "Notes for the block")
	return cmd
}
