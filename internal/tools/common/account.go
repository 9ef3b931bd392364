package common

// GetAccountFromArgs extracts the account name from request arguments.
// Defaults to "default" when the argument is absent or empty, so every
// tool resolves accounts the same way.
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
