package archive

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/identity"
)

// Entry is one line of a ledger: a single artifact operation, successful or not.
type Entry struct {
	Time     time.Time `json:"time"`
	Subject  string    `json:"subject"`
	JobID    string    `json:"job_id"`
	Artifact string    `json:"artifact"`
	Checksum string    `json:"checksum,omitempty"`
	// Failure carries the serialised error for failure ledgers and stays empty in
	// success ledgers.
	Failure string `json:"failure,omitempty"`
}

// FailureReason deserialises the failure the entry was recorded with.
func (e *Entry) FailureReason() (error, error) {
	return commonerrors.DeserialiseError([]byte(e.Failure))
}

// Ledger is an append-only record of archive operations, one JSON document per line.
// Appends survive process crashes: the file is opened, written and synced per entry.
type Ledger struct {
	mu   deadlock.Mutex
	fs   filesystem.FS
	path string
}

// NewLedger creates a ledger persisted at path. The file is created lazily on first
// append.
func NewLedger(fs filesystem.FS, path string) (ledger *Ledger, err error) {
	if fs == nil {
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	if strings.TrimSpace(path) == "" {
		err = commonerrors.UndefinedVariable("ledger path")
		return
	}
	ledger = &Ledger{
		fs:   fs,
		path: path,
	}
	return
}

// RecordSuccess appends an entry stating that an artifact was uploaded.
func (l *Ledger) RecordSuccess(subject identity.Address, jobID, artifact, checksum string) error {
	return l.append(&Entry{
		Subject:  subject.String(),
		JobID:    jobID,
		Artifact: artifact,
		Checksum: checksum,
	})
}

// RecordFailure appends an entry stating that an artifact operation failed, carrying
// the serialised failure.
func (l *Ledger) RecordFailure(subject identity.Address, jobID, artifact string, failure error) error {
	serialised, err := commonerrors.SerialiseError(failure)
	if err != nil {
		return err
	}
	return l.append(&Entry{
		Subject:  subject.String(),
		JobID:    jobID,
		Artifact: artifact,
		Failure:  string(serialised),
	})
}

func (l *Ledger) append(entry *Entry) (err error) {
	if entry.Artifact == "" {
		return commonerrors.UndefinedVariable("artifact name")
	}
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not serialise the ledger entry")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not open the ledger [%v]", l.path)
	}
	defer func() { _ = file.Close() }()
	_, err = file.Write(append(line, '\n'))
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not append to the ledger [%v]", l.path)
	}
	err = file.Sync()
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not sync the ledger [%v]", l.path)
	}
	return
}

// Entries returns every entry in the ledger, oldest first. A ledger which has never
// been written to is empty rather than an error. Unparsable lines are skipped so that
// a torn write from a killed run does not make the whole ledger unreadable.
func (l *Ledger) Entries() (entries []Entry, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.fs.Exists(l.path) {
		return
	}
	content, err := l.fs.ReadFile(l.path)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not read the ledger [%v]", l.path)
		return
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry Entry
		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return
}

// Contains states whether the ledger has an entry for this subject and artifact. A
// non-empty checksum must match too, so that a re-exported artifact with different
// content is not mistaken for an already-archived one.
func (l *Ledger) Contains(subject identity.Address, artifact, checksum string) (found bool, err error) {
	entries, err := l.Entries()
	if err != nil {
		return
	}
	for i := range entries {
		entry := entries[i]
		if entry.Subject != subject.String() || entry.Artifact != artifact {
			continue
		}
		if checksum == "" || entry.Checksum == checksum {
			found = true
			return
		}
	}
	return
}
