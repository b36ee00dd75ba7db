package archive_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/archive"
	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/directory/directorytest"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/logs"
)

const (
	testSubject = "jane.doe@example.com"
	testAccount = "jane.doe@suspended.example.com"
)

func newTestArchiveConfiguration() *archive.Configuration {
	cfg := archive.DefaultConfiguration()
	cfg.StagingDirectory = "/staging"
	cfg.SuccessLedger = "/ledgers/successes.log"
	cfg.FailureLedger = "/ledgers/failures.log"
	cfg.Poller.Interval = time.Millisecond
	return cfg
}

func newTestArchiver(t *testing.T, cfg *archive.Configuration) (*directorytest.Fake, *archive.Archiver) {
	t.Helper()
	fake := directorytest.NewFake(filesystem.NewInMemoryFileSystem())
	loggers, err := logs.CreateStdLogger("Test")
	require.NoError(t, err)
	archiver, err := archive.NewArchiver(loggers, fake, fake.Filesystem(), cfg)
	require.NoError(t, err)
	return fake, archiver
}

func TestNewArchiverValidation(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake := directorytest.NewFake(nil)
	loggers, err := logs.CreateStdLogger("Test")
	require.NoError(t, err)

	_, err = archive.NewArchiver(nil, fake, fake.Filesystem(), newTestArchiveConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)

	_, err = archive.NewArchiver(loggers, nil, fake.Filesystem(), newTestArchiveConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = archive.NewArchiver(loggers, fake, nil, newTestArchiveConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = archive.NewArchiver(loggers, fake, fake.Filesystem(), nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = archive.NewArchiver(loggers, fake, fake.Filesystem(), &archive.Configuration{})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestArchiverRun(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, archiver := newTestArchiver(t, newTestArchiveConfiguration())
	fake.ScriptExportStatuses(asyncjob.StatusRunning, asyncjob.StatusCompleted)
	fake.ScriptExportArtifacts(map[string][]byte{
		"mail.mbox": []byte("From: jane.doe@example.com\n"),
		"drive.zip": []byte("PK archive"),
	})

	require.NoError(t, archiver.Run(context.Background(), testSubject, testAccount))

	assert.Equal(t, 1, fake.CallsFor(directory.OpLaunchBulkExport))
	assert.Equal(t, 2, fake.CallsFor(directory.OpGetJobStatus))
	assert.Equal(t, 1, fake.CallsFor(directory.OpDownloadExport))
	// Both artifacts and the manifest itself.
	assert.Equal(t, 3, fake.CallsFor(directory.OpUploadToStorage))
	assert.Len(t, fake.UploadedArtifacts("export-001"), 3)

	completed, err := archiver.HasCompleted(testSubject)
	require.NoError(t, err)
	assert.True(t, completed)

	entries, err := archiver.SuccessLedger().Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, directory.ManifestFileName, entries[2].Artifact)

	// The matter is named after the subject, not the renamed account.
	for _, call := range fake.Calls() {
		if call.Operation == directory.OpLaunchBulkExport {
			assert.True(t, strings.HasPrefix(call.Args[0], "offboard-jane.doe-"), call.Args[0])
		}
	}
}

func TestArchiverRunIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, archiver := newTestArchiver(t, newTestArchiveConfiguration())
	fake.ScriptExportArtifacts(map[string][]byte{
		"mail.mbox": []byte("From: jane.doe@example.com\n"),
	})
	require.NoError(t, archiver.Run(context.Background(), testSubject, testAccount))
	require.Equal(t, 2, fake.CallsFor(directory.OpUploadToStorage))

	// Nothing is re-exported or re-uploaded once the full set is in the ledger.
	require.NoError(t, archiver.Run(context.Background(), testSubject, testAccount))
	assert.Equal(t, 1, fake.CallsFor(directory.OpLaunchBulkExport))
	assert.Equal(t, 2, fake.CallsFor(directory.OpUploadToStorage))
}

func TestArchiverResumesAfterPartialUpload(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, archiver := newTestArchiver(t, newTestArchiveConfiguration())
	fake.ScriptExportArtifacts(map[string][]byte{
		"drive.zip": []byte("PK archive"),
		"mail.mbox": []byte("From: jane.doe@example.com\n"),
	})
	fake.QueueFailure(directory.OpUploadToStorage, commonerrors.New(commonerrors.ErrUnavailable, "backend error, try again later"))

	err := archiver.Run(context.Background(), testSubject, testAccount)
	errortest.AssertError(t, err, commonerrors.ErrUnavailable)

	completed, err := archiver.HasCompleted(testSubject)
	require.NoError(t, err)
	assert.False(t, completed)
	failures, err := archiver.FailureLedger().Entries()
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "drive.zip", failures[0].Artifact)
	reason, err := failures[0].FailureReason()
	require.NoError(t, err)
	errortest.AssertError(t, reason, commonerrors.ErrUnavailable)

	// The re-run reuses the staged artifacts and only uploads what is missing.
	require.NoError(t, archiver.Run(context.Background(), testSubject, testAccount))
	assert.Equal(t, 1, fake.CallsFor(directory.OpLaunchBulkExport))
	assert.Equal(t, 4, fake.CallsFor(directory.OpUploadToStorage))
	completed, err = archiver.HasCompleted(testSubject)
	require.NoError(t, err)
	assert.True(t, completed)
}

func TestArchiverHonoursExclusionPatterns(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := newTestArchiveConfiguration()
	cfg.ExclusionPatterns = []string{"*.tmp"}
	fake, archiver := newTestArchiver(t, cfg)
	fake.ScriptExportArtifacts(map[string][]byte{
		"mail.mbox":   []byte("From: jane.doe@example.com\n"),
		"scratch.tmp": []byte("work in progress"),
	})

	require.NoError(t, archiver.Run(context.Background(), testSubject, testAccount))

	assert.Equal(t, 2, fake.CallsFor(directory.OpUploadToStorage))
	entries, err := archiver.SuccessLedger().Entries()
	require.NoError(t, err)
	for i := range entries {
		assert.NotEqual(t, "scratch.tmp", entries[i].Artifact)
	}
}

func TestArchiverReportsExportFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	fake, archiver := newTestArchiver(t, newTestArchiveConfiguration())
	fake.ScriptExportStatuses(asyncjob.StatusRunning, asyncjob.StatusFailed)

	err := archiver.Run(context.Background(), testSubject, testAccount)
	errortest.AssertError(t, err, commonerrors.ErrFailed)
	assert.Zero(t, fake.CallsFor(directory.OpDownloadExport))
	completed, err := archiver.HasCompleted(testSubject)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestArchiverRunValidation(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, archiver := newTestArchiver(t, newTestArchiveConfiguration())

	err := archiver.Run(context.Background(), "", testAccount)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = archiver.Run(ctx, testSubject, testAccount)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}
