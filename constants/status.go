package constants

// RunStatus is the canonical status for rows in ingest_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusRunning RunStatus = "RUNNING" // in progress
	RunStatusDone    RunStatus = "DONE"    // committed (possibly zero items)
	RunStatusFailed  RunStatus = "FAILED"  // terminal failure
)
