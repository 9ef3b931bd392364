package agenda_tools

import (
	"context"
	"fmt"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/dayplan/internal/agenda"
	"github.com/teemow/dayplan/internal/calendar"
	"github.com/teemow/dayplan/internal/server"
)

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !calendar.HasTokenForAccount(account) {
			authURL := calendar.GetAuthURLForAccount(account)
			return nil, fmt.Errorf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Calendar
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, authURL, account)
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

// resolveDayArgs resolves the shared day and timezone arguments. The
// day defaults to today in the resolved timezone.
func resolveDayArgs(args map[string]interface{}) (time.Time, *time.Location, error) {
	tz := ""
	if tzVal, ok := args["timezone"].(string); ok {
		tz = tzVal
	}
	loc, err := agenda.ResolveLocation(tz)
	if err != nil {
		return time.Time{}, nil, err
	}

	day := time.Now().In(loc)
	if dayVal, ok := args["day"].(string); ok && dayVal != "" {
		day, err = time.ParseInLocation("2006-01-02", dayVal, loc)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid day %q, expected YYYY-MM-DD: %w", dayVal, err)
		}
	}

	return day, loc, nil
}

// getCalendarID extracts the calendar ID argument, defaulting to "primary"
func getCalendarID(args map[string]interface{}) string {
	if calIDVal, ok := args["calendarId"].(string); ok && calIDVal != "" {
		return calIDVal
	}
	return "primary"
}

// RegisterAgendaTools registers all day-planning tools with the MCP server
func RegisterAgendaTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register event listing and block creation tools
	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	// Register schedule analysis tools
	if err := RegisterScheduleTools(s, sc); err != nil {
		return fmt.Errorf("failed to register schedule tools: %w", err)
	}

	// Register decline/reschedule tools
	if err := RegisterResponseTools(s, sc); err != nil {
		return fmt.Errorf("failed to register response tools: %w", err)
	}

	return nil
}
