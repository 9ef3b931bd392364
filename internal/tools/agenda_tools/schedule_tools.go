package agenda_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/dayplan/internal/agenda"
	"github.com/teemow/dayplan/internal/instrumentation"
	"github.com/teemow/dayplan/internal/server"
	"github.com/teemow/dayplan/internal/tools/common"
)

// RegisterScheduleTools registers the schedule analysis and meeting
// ranking tools. Both are read-only and always available.
func RegisterScheduleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	analyzeTool := mcp.NewTool("calendar_analyze_schedule",
		mcp.WithDescription("Analyze a day's schedule: free blocks within the workday, back-to-back meetings, and time totals"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("day",
			mcp.Description("Day to analyze (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name. Defaults to the TZ environment variable, then Asia/Kolkata."),
		),
		mcp.WithNumber("minFreeMinutes",
			mcp.Description("Minimum gap length in minutes to report as a free block (default: 30)"),
		),
	)

	s.AddTool(analyzeTool, common.InstrumentedToolHandlerWithService(
		"calendar_analyze_schedule", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAnalyzeSchedule(ctx, request, sc)
		}))

	rankTool := mcp.NewTool("calendar_rank_meetings",
		mcp.WithDescription("Rank a day's meetings into priority tiers (critical, important, moderate, cancelable) by title keywords"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("day",
			mcp.Description("Day to rank (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name. Defaults to the TZ environment variable, then Asia/Kolkata."),
		),
	)

	s.AddTool(rankTool, common.InstrumentedToolHandlerWithService(
		"calendar_rank_meetings", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRankMeetings(ctx, request, sc)
		}))

	return nil
}

func handleAnalyzeSchedule(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	day, loc, err := resolveDayArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	minFree := agenda.DefaultMinFree
	if v, ok := args["minFreeMinutes"].(float64); ok && v > 0 {
		minFree = time.Duration(v) * time.Minute
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.ListDayEvents(getCalendarID(args), day, loc, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	analysis := agenda.Analyze(events, agenda.DayWindow(day), minFree)

	freeMinutes := 0
	for _, b := range analysis.FreeBlocks {
		freeMinutes += int(b.Duration().Minutes())
	}
	if m := sc.Metrics(); m != nil {
		m.RecordScheduleAnalysis(ctx, float64(freeMinutes))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Schedule analysis for %s:\n\n", day.Format("2006-01-02"))
	fmt.Fprintf(&b, "Events: %d (%d meetings)\n", analysis.TotalEvents, analysis.TotalMeetings)
	fmt.Fprintf(&b, "Meeting time: %s\n", agenda.FormatDuration(time.Duration(analysis.MeetingMinutes)*time.Minute))
	if analysis.FocusMinutes > 0 {
		fmt.Fprintf(&b, "Focus time: %s\n", agenda.FormatDuration(time.Duration(analysis.FocusMinutes)*time.Minute))
	}
	fmt.Fprintf(&b, "Back-to-back meetings: %d\n\n", analysis.BackToBack)

	if len(analysis.FreeBlocks) == 0 {
		fmt.Fprintf(&b, "No free blocks of %s or longer.\n", agenda.FormatDuration(minFree))
	} else {
		fmt.Fprintf(&b, "Free blocks (%s+):\n", agenda.FormatDuration(minFree))
		for _, fb := range analysis.FreeBlocks {
			fmt.Fprintf(&b, "  %s - %s (%s)\n", agenda.Clock(fb.Start), agenda.Clock(fb.End),
				agenda.FormatDuration(fb.Duration()))
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleRankMeetings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	day, loc, err := resolveDayArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.ListDayEvents(getCalendarID(args), day, loc, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	ranking := agenda.Rank(events)

	var b strings.Builder
	fmt.Fprintf(&b, "Meeting priorities for %s:\n", day.Format("2006-01-02"))
	total := 0
	for _, tier := range agenda.Tiers {
		tierEvents := ranking.ByTier(tier)
		if len(tierEvents) == 0 {
			continue
		}
		total += len(tierEvents)
		fmt.Fprintf(&b, "\n%s (%d):\n", strings.ToUpper(string(tier)), len(tierEvents))
		for _, e := range tierEvents {
			fmt.Fprintf(&b, "  %s - %s  %s (ID: %s)\n", agenda.Clock(e.Start), agenda.Clock(e.End), e.Title, e.ID)
			if m := sc.Metrics(); m != nil {
				m.RecordMeetingClassified(ctx, string(tier))
			}
		}
	}
	if total == 0 {
		b.WriteString("\nNo meetings to rank.\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}
