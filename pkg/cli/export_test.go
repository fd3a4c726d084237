package cli

// Export unexported functions for testing
var (
	ParseRemoteURLForTest = parseRemoteURL
)
