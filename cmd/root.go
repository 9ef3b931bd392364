package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the dayplan application
var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Plan your day around your Google Calendar",
	Long: `dayplan reads your Google Calendar and helps you take back your day:
it lists the agenda, finds free blocks, ranks meetings by how much they
matter, and schedules focus and commute blocks.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dayplan version %s\n" .Version}}`)

	// If no subcommand is provided, show today's agenda by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "today")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newDeclineCmd())
	rootCmd.AddCommand(newRescheduleCmd())
	rootCmd.AddCommand(newFocusCmd())
	rootCmd.AddCommand(newCommuteCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dayplan version %s\n", version)
		},
	}
}
