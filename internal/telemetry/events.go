package telemetry

// TrackCLICommandExecuted records a CLI command run.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	c.Track("cli_command_executed", map[string]interface{}{
		"command_name": commandName,
		"has_flags":    hasFlags,
		"duration_ms":  durationMs,
	})
}

// TrackCLIError records a command failure by error category.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	c.Track("cli_error", map[string]interface{}{
		"command_name": commandName,
		"error_type":   errorType,
	})
}

// TrackCLIHelpViewed records a --help invocation.
func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	c.Track("cli_help_viewed", map[string]interface{}{
		"command_name": commandName,
		"arg_count":    len(cliArgs),
	})
}

// TrackLogin records a successful login.
func (c *posthogClient) TrackLogin(role string, offline bool) {
	c.Track("login", map[string]interface{}{
		"role":    role,
		"offline": offline,
	})
}

// TrackImportCompleted records a batch import.
func (c *posthogClient) TrackImportCompleted(termCount int, offline bool) {
	c.Track("import_completed", map[string]interface{}{
		"term_count": termCount,
		"offline":    offline,
	})
}

// TrackProcessRunCompleted records the outcome of a scheduler run.
func (c *posthogClient) TrackProcessRunCompleted(processed, completed, errored int, durationMs int64) {
	c.Track("process_run_completed", map[string]interface{}{
		"processed":   processed,
		"completed":   completed,
		"errored":     errored,
		"duration_ms": durationMs,
	})
}

// TrackGenerationFailed records a single generation failure.
func (c *posthogClient) TrackGenerationFailed(provider string) {
	c.Track("generation_failed", map[string]interface{}{
		"provider": provider,
	})
}

// TrackItemsDeleted records a delete operation.
func (c *posthogClient) TrackItemsDeleted(count int, offline bool) {
	c.Track("items_deleted", map[string]interface{}{
		"count":   count,
		"offline": offline,
	})
}

// TrackItemEdited records a manual field edit by scope kind.
func (c *posthogClient) TrackItemEdited(scope string) {
	c.Track("item_edited", map[string]interface{}{
		"scope": scope,
	})
}

// TrackAppStarted records process start.
func (c *posthogClient) TrackAppStarted(mode string) {
	c.Track("app_started", map[string]interface{}{
		"mode": mode,
	})
}

// TrackAppExited records process exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	c.Track("app_exited", map[string]interface{}{
		"mode":                mode,
		"session_duration_ms": sessionDurationMs,
	})
}

// No-op implementations for disabled telemetry.

func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                                 {}
func (c *noopClient) TrackCLIHelpViewed(commandName string, cliArgs []string)                     {}
func (c *noopClient) TrackLogin(role string, offline bool)                                        {}
func (c *noopClient) TrackImportCompleted(termCount int, offline bool)                            {}
func (c *noopClient) TrackProcessRunCompleted(processed, completed, errored int, durationMs int64) {
}
func (c *noopClient) TrackGenerationFailed(provider string)        {}
func (c *noopClient) TrackItemsDeleted(count int, offline bool)    {}
func (c *noopClient) TrackItemEdited(scope string)                 {}
func (c *noopClient) TrackAppStarted(mode string)                  {}
func (c *noopClient) TrackAppExited(mode string, durationMs int64) {}
