package agenda_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/dayplan/internal/agenda"
	"github.com/teemow/dayplan/internal/calendar"
	"github.com/teemow/dayplan/internal/instrumentation"
	"github.com/teemow/dayplan/internal/server"
	"github.com/teemow/dayplan/internal/tools/common"
)

// RegisterEventTools registers event listing and block creation tools
// with the MCP server. Creation tools are only exposed when writes are
// enabled.
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List events tool (read-only, always available)
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List the calendar events of a single day in chronological order"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("day",
			mcp.Description("Day to list (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name (e.g., 'Europe/Berlin'). Defaults to the TZ environment variable, then Asia/Kolkata."),
		),
		mcp.WithBoolean("includeDeclined",
			mcp.Description("Include events you have already declined (default: false)"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	if !sc.WritesEnabled() {
		return nil
	}

	// Create event tool
	createEventTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a new calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339 format, e.g., '2025-01-15T14:00:00+05:30')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339 format, e.g., '2025-01-15T15:00:00+05:30')"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the event times"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithBoolean("allDay",
			mcp.Description("Create as all-day event (ignores time portion of start/end)"),
		),
		mcp.WithBoolean("addGoogleMeet",
			mcp.Description("Automatically add a Google Meet link to the event"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_create_event", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	// Create focus block tool
	createFocusTool := mcp.NewTool("calendar_create_focus_block",
		mcp.WithDescription("Create a deep-work focus block on the calendar with a short reminder"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("What the focus block is for (e.g., 'Quarterly planning doc')"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339 format)"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339 format)"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the block"),
		),
		mcp.WithString("description",
			mcp.Description("Optional notes for the block"),
		),
	)

	s.AddTool(createFocusTool, common.InstrumentedToolHandlerWithService(
		"calendar_create_focus_block", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateFocusBlock(ctx, request, sc)
		}))

	// Create commute block tool
	createCommuteTool := mcp.NewTool("calendar_create_commute_block",
		mcp.WithDescription("Create a commute/travel buffer on the calendar with a leave-on-time reminder"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339 format)"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339 format)"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the block"),
		),
		mcp.WithString("description",
			mcp.Description("Optional notes for the block, e.g. the route or destination"),
		),
	)

	s.AddTool(createCommuteTool, common.InstrumentedToolHandlerWithService(
		"calendar_create_commute_block", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateCommuteBlock(ctx, request, sc)
		}))

	return nil
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	day, loc, err := resolveDayArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	includeDeclined := false
	if v, ok := args["includeDeclined"].(bool); ok {
		includeDeclined = v
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.ListDayEvents(getCalendarID(args), day, loc, includeDeclined)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	if len(events) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No events on %s.", day.Format("2006-01-02"))), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Events on %s (%d):\n\n", day.Format("2006-01-02"), len(events))
	for i, e := range events {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Title)
		fmt.Fprintf(&b, "   ID: %s\n", e.ID)
		fmt.Fprintf(&b, "   Time: %s - %s (%s)\n", agenda.Clock(e.Start), agenda.Clock(e.End),
			agenda.FormatDuration(e.End.Sub(e.Start)))
		fmt.Fprintf(&b, "   Status: %s\n", e.Status)
		if e.Location != "" {
			fmt.Fprintf(&b, "   Location: %s\n", e.Location)
		}
		if e.MeetingLink {
			b.WriteString("   Video call: yes\n")
		}
		if len(e.Attendees) > 0 {
			fmt.Fprintf(&b, "   Attendees: %d\n", len(e.Attendees))
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

// parseTimeArg parses a required RFC3339 time argument.
func parseTimeArg(args map[string]interface{}, name string) (time.Time, error) {
	raw, ok := args[name].(string)
	if !ok || raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return t, nil
}

// timezoneArg extracts the optional timezone argument, resolving the
// default chain when absent.
func timezoneArg(args map[string]interface{}) (string, error) {
	tz := ""
	if tzVal, ok := args["timezone"].(string); ok {
		tz = tzVal
	}
	loc, err := agenda.ResolveLocation(tz)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	summary, ok := args["summary"].(string)
	if !ok || summary == "" {
		return mcp.NewToolResultError("summary is required"), nil
	}

	start, err := parseTimeArg(args, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := parseTimeArg(args, "end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tz, err := timezoneArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	input := calendar.EventInput{
		Summary:  summary,
		Start:    start,
		End:      end,
		TimeZone: tz,
	}

	if desc, ok := args["description"].(string); ok {
		input.Description = desc
	}
	if loc, ok := args["location"].(string); ok {
		input.Location = loc
	}
	if allDay, ok := args["allDay"].(bool); ok {
		input.AllDay = allDay
	}
	if addMeet, ok := args["addGoogleMeet"].(bool); ok {
		input.UseDefaultConferenceData = addMeet
	}
	if attendeesStr, ok := args["attendees"].(string); ok && attendeesStr != "" {
		for _, email := range strings.Split(attendeesStr, ",") {
			if email = strings.TrimSpace(email); email != "" {
				input.Attendees = append(input.Attendees, email)
			}
		}
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := client.CreateEvent(getCalendarID(args), input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordBlockCreated(ctx, instrumentation.BlockKindEvent)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event created: %s (ID: %s)", created.Summary, created.Id)), nil
}

func handleCreateFocusBlock(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	start, err := parseTimeArg(args, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := parseTimeArg(args, "end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tz, err := timezoneArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	description := ""
	if v, ok := args["description"].(string); ok {
		description = v
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := client.CreateFocusBlock(getCalendarID(args), title, description, start, end, tz)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create focus block: %v", err)), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordBlockCreated(ctx, instrumentation.BlockKindFocus)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Focus block created: %s (%s - %s, ID: %s)",
		created.Summary, agenda.Clock(start), agenda.Clock(end), created.Id)), nil
}

func handleCreateCommuteBlock(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	start, err := parseTimeArg(args, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := parseTimeArg(args, "end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tz, err := timezoneArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	description := ""
	if v, ok := args["description"].(string); ok {
		description = v
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := client.CreateCommuteBlock(getCalendarID(args), description, start, end, tz)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create commute block: %v", err)), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordBlockCreated(ctx, instrumentation.BlockKindCommute)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Commute block created: %s - %s (ID: %s)",
		agenda.Clock(start), agenda.Clock(end), created.Id)), nil
}
