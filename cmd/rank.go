package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newRankCmd() *cobra.Command {
	var opts calendarOpts

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Sort the day's meetings into priority tiers",
		Long: `Classify every meeting of the day as critical, important, moderate, or
cancelable based on its title, so you know which ones to protect and
which ones to drop when the day gets tight.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, loc, err := opts.resolve()
			if err != nil {
				return err
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			events, err := client.ListDayEvents(opts.calendarID, day, loc, false)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			ranking := agenda.Rank(events)

			cmd.Printf("🏷  Meeting priorities for %s\n", day.Format("Mon, Jan 2 2006"))
			total := 0
			for _, tier := range agenda.Tiers {
				tierEvents := ranking.ByTier(tier)
				if len(tierEvents) == 0 {
					continue
				}
				total += len(tierEvents)
				cmd.Printf("\n%s %s\n", tierIcon(tier), strings.ToUpper(string(tier)))
				for _, e := range tierEvents {
					cmd.Printf("  %s - %s  %s\n", agenda.Clock(e.Start), agenda.Clock(e.End), e.Title)
				}
			}

			if total == 0 {
				cmd.Println("\nNo meetings to rank.")
			}

			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	return cmd
}
