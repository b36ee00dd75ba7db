package directory

import (
	"strings"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// faultSignatures maps textual markers found in CLI output onto the error taxonomy.
// Entries are matched in order. Anything unmatched is reported as
// commonerrors.ErrUnknown, which the retry policies treat as permanent: an error this
// tool has never seen is not worth retrying blind.
var faultSignatures = []struct {
	sentinel error
	markers  []string
}{
	{commonerrors.ErrConflict, []string{"duplicate", "already exists"}},
	{commonerrors.ErrTooManyRequests, []string{"rate limit", "quota", "too many requests"}},
	{commonerrors.ErrUnavailable, []string{"backend error", "unavailable", "try again"}},
	{commonerrors.ErrForbidden, []string{"permission", "forbidden", "authorization"}},
	{commonerrors.ErrNotFound, []string{"does not exist", "not found"}},
	{commonerrors.ErrTimeout, []string{"timed out", "timeout", "deadline exceeded"}},
	{commonerrors.ErrInvalid, []string{"invalid"}},
}

// classifyFault turns a failed CLI invocation into a typed error carrying the most
// informative line of output.
func classifyFault(operation string, exitStatus int, stdout, stderr string) error {
	description := strings.ToLower(stderr + "\n" + stdout)
	sentinel := commonerrors.ErrUnknown
	for i := range faultSignatures {
		if containsAny(description, faultSignatures[i].markers) {
			sentinel = faultSignatures[i].sentinel
			break
		}
	}
	return commonerrors.Newf(sentinel, "directory operation [%v] failed with status %v: %v", operation, exitStatus, failureDetail(stdout, stderr))
}

func containsAny(description string, markers []string) bool {
	for i := range markers {
		if strings.Contains(description, markers[i]) {
			return true
		}
	}
	return false
}

// failureDetail returns the last non-blank line of the output, favouring stderr, so
// that errors stay on one line.
func failureDetail(stdout, stderr string) string {
	for _, output := range []string{stderr, stdout} {
		lines := strings.Split(output, "\n")
		for i := len(lines) - 1; i >= 0; i-- {
			line := strings.TrimSpace(lines[i])
			if line != "" {
				return line
			}
		}
	}
	return "no output"
}
