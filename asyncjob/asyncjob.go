// Package asyncjob describes jobs the directory runs asynchronously, such as bulk data
// exports, and provides the poller used to await their completion.
package asyncjob

import "strings"

// Status is the state of a job as reported by the directory.
type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	// StatusUnknown covers statuses the directory reports which are not understood.
	StatusUnknown Status = "UNKNOWN"
)

// IsTerminal states whether a job with this status has finished, successfully or not.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus maps a raw status string onto a Status. Statuses which are not
// recognised map onto StatusUnknown rather than failing, so that a directory rolling
// out new states does not break a watcher.
func ParseStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "RUNNING", "IN_PROGRESS", "PENDING":
		return StatusRunning
	case "COMPLETED", "SUCCEEDED":
		return StatusCompleted
	case "FAILED", "FAILURE":
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// Job describes a server-side job which completes asynchronously.
type Job struct {
	// ID identifies the job on the directory.
	ID string
	// Status is the last status the directory reported for the job.
	Status Status
	// Attributes carries any further fields the directory reported alongside the
	// status. They are kept for logging and troubleshooting only.
	Attributes map[string]any
}
