package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		opts         calendarOpts
		minFree      int
		workdayStart string
		workdayEnd   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Find free blocks and back-to-back stretches in a day",
		Long: `Analyze the day's schedule: free blocks of at least --min-free minutes
inside the workday window, the number of back-to-back meetings, and
how the day splits between meeting and focus time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, loc, err := opts.resolve()
			if err != nil {
				return err
			}

			windowStart, err := parseClock(day, loc, workdayStart)
			if err != nil {
				return fmt.Errorf("invalid --workday-start: %w", err)
			}
			windowEnd, err := parseClock(day, loc, workdayEnd)
			if err != nil {
				return fmt.Errorf("invalid --workday-end: %w", err)
			}
			if !windowEnd.After(windowStart) {
				return fmt.Errorf("workday end %s is not after start %s", workdayEnd, workdayStart)
			}

			client, err := opts.newClient(cmd.Context())
			if err != nil {
				return err
			}

			events, err := client.ListDayEvents(opts.calendarID, day, loc, false)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			window := agenda.Window{Start: windowStart, End: windowEnd}
			analysis := agenda.Analyze(events, window, time.Duration(minFree)*time.Minute)

			cmd.Printf("📊 %s\n\n", day.Format("Mon, Jan 2 2006"))
			cmd.Printf("Events: %d (%d meetings)\n", analysis.TotalEvents, analysis.TotalMeetings)
			cmd.Printf("Meeting time: %s\n", agenda.FormatDuration(time.Duration(analysis.MeetingMinutes)*time.Minute))
			if analysis.FocusMinutes > 0 {
				cmd.Printf("Focus time: %s\n", agenda.FormatDuration(time.Duration(analysis.FocusMinutes)*time.Minute))
			}
			if analysis.BackToBack > 0 {
				cmd.Printf("⚡ Back-to-back meetings: %d\n", analysis.BackToBack)
			}
			cmd.Println()

			if len(analysis.FreeBlocks) == 0 {
				cmd.Printf("No free blocks of %dm or longer. Consider declining something.\n", minFree)
				return nil
			}

			cmd.Printf("🟢 Free blocks:\n")
			for _, b := range analysis.FreeBlocks {
				cmd.Printf("  %s - %s (%s)\n", agenda.Clock(b.Start), agenda.Clock(b.End), agenda.FormatDuration(b.Duration()))
			}

			return nil
		},
	}

	addCalendarFlags(cmd, &opts)
	cmd.Flags().IntVar(&minFree, "min-free", 30, "Minimum free gap to report, in minutes")
	cmd.Flags().StringVar(&workdayStart, "workday-start", "09:00", "Start of the workday window (HH:MM)")
	cmd.Flags().StringVar(&workdayEnd, "workday-end", "22:00", "End of the workday window (HH:MM)")
	return cmd
}
