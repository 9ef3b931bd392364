// Package google_tools provides the MCP tools for the Google OAuth
// flow: obtaining the authorization URL and exchanging the returned
// code for a stored token. These tools are always registered so an
// agent can complete authentication before using any calendar tool.
package google_tools
