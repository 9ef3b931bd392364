package agenda_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/dayplan/internal/agenda"
	"github.com/teemow/dayplan/internal/instrumentation"
	"github.com/teemow/dayplan/internal/server"
	"github.com/teemow/dayplan/internal/tools/batch"
	"github.com/teemow/dayplan/internal/tools/common"
)

// RegisterResponseTools registers the tools that change attendance or
// timing of existing events. They are only exposed when writes are
// enabled.
func RegisterResponseTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if !sc.WritesEnabled() {
		return nil
	}

	declineTool := mcp.NewTool("calendar_decline_event",
		mcp.WithDescription("Decline one or more calendar events. Accepts event IDs directly, or a title to look up on a given day."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("eventId",
			mcp.Description("Event ID(s) to decline - single ID or array of IDs. Either eventId or title is required."),
		),
		mcp.WithString("title",
			mcp.Description("Event title to search for on the given day (case-insensitive substring, must match exactly one event)"),
		),
		mcp.WithString("day",
			mcp.Description("Day to search when using title (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the title search. Defaults to the TZ environment variable, then Asia/Kolkata."),
		),
		mcp.WithBoolean("notify",
			mcp.Description("Notify the organizer and attendees about the decline (default: false)"),
		),
	)

	s.AddTool(declineTool, common.InstrumentedToolHandlerWithService(
		"calendar_decline_event", instrumentation.ServiceCalendar, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeclineEvent(ctx, request, sc)
		}))

	rescheduleTool := mcp.NewTool("calendar_reschedule_event",
		mcp.WithDescription("Move an event to a new time and notify attendees with a short message"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (use 'primary' for primary calendar)"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("Event ID to reschedule"),
		),
		mcp.WithString("newStart",
			mcp.Required(),
			mcp.Description("New start time (RFC3339 format)"),
		),
		mcp.WithString("newEnd",
			mcp.Required(),
			mcp.Description("New end time (RFC3339 format)"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the new times"),
		),
		mcp.WithString("message",
			mcp.Description("Short note for attendees explaining the move, prepended to the event description"),
		),
		mcp.WithBoolean("notify",
			mcp.Description("Notify attendees about the new time (default: true)"),
		),
	)

	s.AddTool(rescheduleTool, common.InstrumentedToolHandlerWithService(
		"calendar_reschedule_event", instrumentation.ServiceCalendar, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRescheduleEvent(ctx, request, sc)
		}))

	return nil
}

func handleDeclineEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)
	calendarID := getCalendarID(args)

	notify := false
	if v, ok := args["notify"].(bool); ok {
		notify = v
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var eventIDs []string
	if raw, ok := args["eventId"]; ok && raw != nil {
		eventIDs, err = batch.ParseStringOrArray(raw, "eventId")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else if title, ok := args["title"].(string); ok && title != "" {
		day, loc, err := resolveDayArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		event, err := client.FindEventByTitle(calendarID, day, loc, title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		eventIDs = []string{event.ID}
	} else {
		return mcp.NewToolResultError("either eventId or title is required"), nil
	}

	if len(eventIDs) == 1 {
		if err := client.DeclineEvent(calendarID, eventIDs[0], notify); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to decline event: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Event %s declined", eventIDs[0])), nil
	}

	results := batch.ProcessBatch(eventIDs, func(id string) (string, error) {
		if err := client.DeclineEvent(calendarID, id, notify); err != nil {
			return "", err
		}
		return "declined", nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleRescheduleEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	newStart, err := parseTimeArg(args, "newStart")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newEnd, err := parseTimeArg(args, "newEnd")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !newEnd.After(newStart) {
		return mcp.NewToolResultError("newEnd must be after newStart"), nil
	}

	tz, err := timezoneArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	message := ""
	if v, ok := args["message"].(string); ok {
		message = v
	}
	notify := true
	if v, ok := args["notify"].(bool); ok {
		notify = v
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := client.RescheduleEvent(getCalendarID(args), eventID, newStart, newEnd, tz, message, notify)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to reschedule event: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event rescheduled: %s now %s - %s",
		updated.Summary, agenda.Clock(newStart), agenda.Clock(newEnd))), nil
}
