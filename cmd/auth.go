package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access",
		Long: `Run the OAuth flow for a Google account: print the authorization URL,
then read the code Google hands back and store the token under the
user cache directory. Each account keeps its own token, so you can
authorize work and personal calendars side by side.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !google.ValidAccountName(account) {
				return fmt.Errorf("invalid account name %q: only letters, digits, '-' and '_' are allowed", account)
			}

			if google.HasTokenForAccount(account) {
				cmd.Printf("Account %q is already authorized. Continuing will replace its token.\n\n", account)
			}

			cmd.Printf("Visit this URL in your browser and grant access to Google Calendar:\n\n  %s\n\n", google.GetAuthURLForAccount(account))
			cmd.Print("Enter the authorization code: ")

			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			authCode := strings.TrimSpace(line)
			if authCode == "" {
				return fmt.Errorf("no authorization code entered")
			}

			if err := google.SaveTokenForAccount(cmd.Context(), account, authCode); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			cmd.Printf("✅ Account %q authorized. You can now use the calendar commands.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authorize")
	return cmd
}
