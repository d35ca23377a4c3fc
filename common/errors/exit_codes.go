package errors

type ExitCode int

const (
	// API, transport, or provisioning failure
	CollaboratorFailureExitCode ExitCode = 1

	// Missing or invalid flags, unreadable config file
	UsageExitCode ExitCode = 2

	// Log file could not be created
	LogSetupFailureExitCode ExitCode = 3
)
