package directorytest

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/commonerrors/errortest"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/identity"
)

func TestFakeUserLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	fake := NewFake(nil)
	fake.AddUser("jane.doe@example.com")
	fake.AddAlias("jd@example.com", "jane.doe@example.com")

	err := fake.CreateUser(ctx, "jane.doe@example.com", "Jane Doe")
	errortest.AssertError(t, err, commonerrors.ErrConflict)
	// An alias squats the address too.
	err = fake.CreateUser(ctx, "jd@example.com", "Jane Doe")
	errortest.AssertError(t, err, commonerrors.ErrConflict)

	require.NoError(t, fake.RenameUser(ctx, "jane.doe@example.com", "jane.doe@suspended.example.com"))
	assert.False(t, fake.HasUser("jane.doe@example.com"))
	assert.True(t, fake.HasUser("jane.doe@suspended.example.com"))
	assert.Equal(t, []identity.Address{"jd@example.com"}, fake.UserAliases("jane.doe@suspended.example.com"))

	err = fake.DeleteUser(ctx, "jane.doe@example.com")
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	require.NoError(t, fake.DeleteUser(ctx, "jane.doe@suspended.example.com"))
	assert.Empty(t, fake.UserAliases("jane.doe@suspended.example.com"))
}

func TestFakeQueuedFailuresAreConsumedInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	fake := NewFake(nil)
	fake.QueueFailure(directory.OpCreateGroup,
		commonerrors.New(commonerrors.ErrUnavailable, "backend error, try again later"),
		commonerrors.New(commonerrors.ErrUnavailable, "backend error, try again later"),
	)

	err := fake.CreateGroup(ctx, "archive-jane@example.com")
	errortest.AssertError(t, err, commonerrors.ErrUnavailable)
	err = fake.CreateGroup(ctx, "archive-jane@example.com")
	errortest.AssertError(t, err, commonerrors.ErrUnavailable)
	require.NoError(t, fake.CreateGroup(ctx, "archive-jane@example.com"))
	assert.True(t, fake.HasGroup("archive-jane@example.com"))
	assert.Equal(t, 3, fake.CallsFor(directory.OpCreateGroup))
}

func TestFakeGroupOwnership(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	fake := NewFake(nil)
	require.NoError(t, fake.CreateGroup(ctx, "archive-jane@example.com"))
	require.NoError(t, fake.AddGroupOwner(ctx, "archive-jane@example.com", "john.doe@example.com"))

	err := fake.AddGroupOwner(ctx, "archive-jane@example.com", "john.doe@example.com")
	errortest.AssertError(t, err, commonerrors.ErrConflict)

	owners, err := fake.ListGroupOwners(ctx, "archive-jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, []identity.Address{"john.doe@example.com"}, owners)

	err = fake.RemoveGroupOwner(ctx, "archive-jane@example.com", "someone.else@example.com")
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	require.NoError(t, fake.RemoveGroupOwner(ctx, "archive-jane@example.com", "john.doe@example.com"))
	assert.Empty(t, fake.GroupOwners("archive-jane@example.com"))
}

func TestFakeExportPipeline(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	fake := NewFake(nil)
	fake.ScriptExportStatuses(asyncjob.StatusRunning, asyncjob.StatusCompleted)
	fake.ScriptExportArtifacts(map[string][]byte{
		"mail.mbox":  []byte("From: jane.doe@example.com\n"),
		"drive.zip":  []byte("PK archive"),
		"report.csv": []byte("name,size\n"),
	})

	jobID, err := fake.StartExport(ctx, "offboard-jane-doe", directory.DefaultExportScope())
	require.NoError(t, err)
	assert.Equal(t, "export-001", jobID)

	// The download is refused until the scripted statuses reach completion.
	destination := filepath.Join("/export", jobID)
	err = fake.DownloadExport(ctx, jobID, destination)
	errortest.AssertError(t, err, commonerrors.ErrConflict)

	job, err := fake.GetJobStatus(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, asyncjob.StatusRunning, job.Status)
	job, err = fake.GetJobStatus(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, asyncjob.StatusCompleted, job.Status)
	// The terminal status is sticky.
	job, err = fake.GetJobStatus(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, asyncjob.StatusCompleted, job.Status)

	require.NoError(t, fake.DownloadExport(ctx, jobID, destination))
	manifestDocument, err := fake.Filesystem().ReadFile(filepath.Join(destination, directory.ManifestFileName))
	require.NoError(t, err)
	var manifest directory.ExportManifest
	require.NoError(t, json.Unmarshal(manifestDocument, &manifest))
	assert.Equal(t, jobID, manifest.JobID)
	require.Len(t, manifest.Artifacts, 3)
	for i := range manifest.Artifacts {
		artifact := manifest.Artifacts[i]
		assert.True(t, fake.Filesystem().Exists(filepath.Join(destination, artifact.Name)))
		assert.NotEmpty(t, artifact.Checksum)
	}

	err = fake.UploadArchive(ctx, jobID, filepath.Join(destination, "missing.zip"))
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	require.NoError(t, fake.UploadArchive(ctx, jobID, filepath.Join(destination, "mail.mbox")))
	assert.Equal(t, []string{filepath.Join(destination, "mail.mbox")}, fake.UploadedArtifacts(jobID))
}

func TestFakeRecordsTransfersAndSignatures(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	fake := NewFake(nil)
	fake.AddUser("jane.doe@example.com")
	fake.AddUser("john.doe@example.com")

	require.NoError(t, fake.StartDataTransfer(ctx, directory.TransferDrive, "jane.doe@example.com", "john.doe@example.com"))
	transfers := fake.Transfers()
	require.Len(t, transfers, 1)
	assert.Equal(t, directory.TransferDrive, transfers[0].Kind)

	require.NoError(t, fake.SetSendAsSignature(ctx, "jane.doe@example.com", "/etc/lifecycle/signature.html"))
	assert.Equal(t, "/etc/lifecycle/signature.html", fake.SignaturePath("jane.doe@example.com"))
}
