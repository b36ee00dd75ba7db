// Package directorytest provides a scriptable in-memory directory for testing
// lifecycle flows without a real administration CLI. The in-memory state is
// immediately consistent; propagation races are scripted through QueueFailure.
package directorytest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/directory"
	"github.com/ARM-software/identity-lifecycle/filesystem"
	"github.com/ARM-software/identity-lifecycle/hashing"
	"github.com/ARM-software/identity-lifecycle/identity"
	"github.com/ARM-software/identity-lifecycle/scheduling"
)

// Call records one operation the fake served.
type Call struct {
	Operation string
	Args      []string
}

// TransferRecord records a data transfer the fake accepted.
type TransferRecord struct {
	Kind directory.TransferKind
	From identity.Address
	To   identity.Address
}

type userRecord struct {
	suspended     bool
	displayName   string
	signaturePath string
}

type groupRecord struct {
	owners mapset.Set[string]
}

type exportRecord struct {
	matter    string
	statuses  []asyncjob.Status
	cursor    int
	artifacts map[string][]byte
	uploaded  []string
}

// Fake is an in-memory directory implementing directory.IClient.
type Fake struct {
	mu                 sync.Mutex
	fs                 filesystem.FS
	users              map[identity.Address]*userRecord
	aliases            map[identity.Address]identity.Address
	groups             map[identity.Address]*groupRecord
	transfers          []TransferRecord
	exports            map[string]*exportRecord
	exportCount        int
	nextExportStatuses []asyncjob.Status
	nextExportContent  map[string][]byte
	failures           map[string][]error
	calls              []Call
}

// NewFake creates an empty fake directory. Downloaded export artifacts are written
// through fs; passing nil uses an in-memory filesystem.
func NewFake(fs filesystem.FS) *Fake {
	if fs == nil {
		fs = filesystem.NewInMemoryFileSystem()
	}
	return &Fake{
		fs:       fs,
		users:    map[identity.Address]*userRecord{},
		aliases:  map[identity.Address]identity.Address{},
		groups:   map[identity.Address]*groupRecord{},
		exports:  map[string]*exportRecord{},
		failures: map[string][]error{},
	}
}

// Filesystem returns the filesystem downloaded artifacts are written through.
func (f *Fake) Filesystem() filesystem.FS {
	return f.fs
}

// AddUser seeds an active account.
func (f *Fake) AddUser(address identity.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[address] = &userRecord{}
}

// AddAlias seeds an alias attached to owner.
func (f *Fake) AddAlias(alias, owner identity.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aliases[alias] = owner
}

// AddGroup seeds a group with the given owners.
func (f *Fake) AddGroup(group identity.Address, owners ...identity.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record := &groupRecord{owners: mapset.NewSet[string]()}
	for i := range owners {
		record.owners.Add(owners[i].String())
	}
	f.groups[group] = record
}

// QueueFailure arranges for the next invocations of operation to fail with the given
// errors in order, after which the fake's own semantics apply again.
func (f *Fake) QueueFailure(operation string, errs ...error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[operation] = append(f.failures[operation], errs...)
}

// ScriptExportStatuses sets the status sequence the next started export reports. The
// last status repeats once the sequence is exhausted.
func (f *Fake) ScriptExportStatuses(statuses ...asyncjob.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextExportStatuses = statuses
}

// ScriptExportArtifacts sets the artifact files the next started export will download.
func (f *Fake) ScriptExportArtifacts(artifacts map[string][]byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextExportContent = artifacts
}

// Calls returns every operation served so far, in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CallsFor returns how many times an operation was served.
func (f *Fake) CallsFor(operation string) (count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.calls {
		if f.calls[i].Operation == operation {
			count++
		}
	}
	return
}

// HasUser states whether an account exists.
func (f *Fake) HasUser(address identity.Address) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[address]
	return ok
}

// HasGroup states whether a group exists.
func (f *Fake) HasGroup(group identity.Address) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.groups[group]
	return ok
}

// GroupOwners returns the owners of a group, sorted.
func (f *Fake) GroupOwners(group identity.Address) []identity.Address {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.groups[group]
	if !ok {
		return nil
	}
	return sortedAddresses(record.owners.ToSlice())
}

// UserAliases returns the aliases attached to owner, sorted.
func (f *Fake) UserAliases(owner identity.Address) (aliases []identity.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.aliasesOf(owner)
}

// Transfers returns the data transfers accepted so far.
func (f *Fake) Transfers() []TransferRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.transfers)
}

// UploadedArtifacts returns the artifact paths pushed to storage for a job.
func (f *Fake) UploadedArtifacts(jobID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.exports[jobID]
	if !ok {
		return nil
	}
	return slices.Clone(record.uploaded)
}

// SignaturePath returns the signature file set for an account, if any.
func (f *Fake) SignaturePath(address identity.Address) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.users[address]
	if !ok {
		return ""
	}
	return record.signaturePath
}

// begin records the call and serves any queued failure. Callers hold the lock.
func (f *Fake) begin(ctx context.Context, operation string, args ...string) error {
	err := scheduling.DetermineContextError(ctx)
	if err != nil {
		return err
	}
	f.calls = append(f.calls, Call{Operation: operation, Args: args})
	queue := f.failures[operation]
	if len(queue) > 0 {
		err := queue[0]
		f.failures[operation] = queue[1:]
		return err
	}
	return nil
}

func (f *Fake) aliasesOf(owner identity.Address) (aliases []identity.Address) {
	for alias, target := range f.aliases {
		if target == owner {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return
}

func (f *Fake) addressInUse(address identity.Address) bool {
	if _, ok := f.users[address]; ok {
		return true
	}
	if _, ok := f.groups[address]; ok {
		return true
	}
	if _, ok := f.aliases[address]; ok {
		return true
	}
	return false
}

func notFound(kind, name string) error {
	return commonerrors.Newf(commonerrors.ErrNotFound, "%v '%v' does not exist", kind, name)
}

func duplicate(kind, name string) error {
	return commonerrors.Newf(commonerrors.ErrConflict, "%v '%v' already exists", kind, name)
}

func (f *Fake) GetUser(ctx context.Context, address identity.Address) (*directory.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpGetUser, address.String()); err != nil {
		return nil, err
	}
	record, ok := f.users[address]
	if !ok {
		return nil, notFound("user", address.String())
	}
	return &directory.User{Address: address, Suspended: record.suspended}, nil
}

func (f *Fake) CreateUser(ctx context.Context, address identity.Address, displayName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpCreateUser, address.String(), displayName); err != nil {
		return err
	}
	if f.addressInUse(address) {
		return duplicate("user", address.String())
	}
	f.users[address] = &userRecord{displayName: displayName}
	return nil
}

func (f *Fake) DeleteUser(ctx context.Context, address identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpDeleteUser, address.String()); err != nil {
		return err
	}
	if _, ok := f.users[address]; !ok {
		return notFound("user", address.String())
	}
	delete(f.users, address)
	for alias, owner := range f.aliases {
		if owner == address {
			delete(f.aliases, alias)
		}
	}
	return nil
}

func (f *Fake) SetUserSuspended(ctx context.Context, address identity.Address, suspended bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpUpdateUserSuspended, address.String(), fmt.Sprintf("%v", suspended)); err != nil {
		return err
	}
	record, ok := f.users[address]
	if !ok {
		return notFound("user", address.String())
	}
	record.suspended = suspended
	return nil
}

func (f *Fake) RenameUser(ctx context.Context, from, to identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpUpdateUserRename, from.String(), to.String()); err != nil {
		return err
	}
	record, ok := f.users[from]
	if !ok {
		return notFound("user", from.String())
	}
	if f.addressInUse(to) {
		return duplicate("user", to.String())
	}
	delete(f.users, from)
	f.users[to] = record
	for alias, owner := range f.aliases {
		if owner == from {
			f.aliases[alias] = to
		}
	}
	return nil
}

func (f *Fake) ListAliases(ctx context.Context, address identity.Address) ([]identity.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpListAliases, address.String()); err != nil {
		return nil, err
	}
	if _, ok := f.users[address]; !ok {
		return nil, notFound("user", address.String())
	}
	return f.aliasesOf(address), nil
}

func (f *Fake) RedirectAlias(ctx context.Context, alias, to identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpUpdateAliasOwner, alias.String(), to.String()); err != nil {
		return err
	}
	if _, ok := f.aliases[alias]; !ok {
		return notFound("alias", alias.String())
	}
	if _, ok := f.users[to]; !ok {
		return notFound("user", to.String())
	}
	f.aliases[alias] = to
	return nil
}

func (f *Fake) DeleteAlias(ctx context.Context, alias identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpDeleteAlias, alias.String()); err != nil {
		return err
	}
	if _, ok := f.aliases[alias]; !ok {
		return notFound("alias", alias.String())
	}
	delete(f.aliases, alias)
	return nil
}

func (f *Fake) CreateGroup(ctx context.Context, address identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpCreateGroup, address.String()); err != nil {
		return err
	}
	if f.addressInUse(address) {
		return duplicate("group", address.String())
	}
	f.groups[address] = &groupRecord{owners: mapset.NewSet[string]()}
	return nil
}

func (f *Fake) DeleteGroup(ctx context.Context, address identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpDeleteGroup, address.String()); err != nil {
		return err
	}
	if _, ok := f.groups[address]; !ok {
		return notFound("group", address.String())
	}
	delete(f.groups, address)
	return nil
}

func (f *Fake) AddGroupOwner(ctx context.Context, group, owner identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpUpdateGroupOwner, group.String(), owner.String()); err != nil {
		return err
	}
	record, ok := f.groups[group]
	if !ok {
		return notFound("group", group.String())
	}
	if record.owners.Contains(owner.String()) {
		return duplicate("owner", owner.String())
	}
	record.owners.Add(owner.String())
	return nil
}

func (f *Fake) RemoveGroupOwner(ctx context.Context, group, owner identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpRemoveOwner, group.String(), owner.String()); err != nil {
		return err
	}
	record, ok := f.groups[group]
	if !ok {
		return notFound("group", group.String())
	}
	if !record.owners.Contains(owner.String()) {
		return notFound("owner", owner.String())
	}
	record.owners.Remove(owner.String())
	return nil
}

func (f *Fake) ListGroupOwners(ctx context.Context, group identity.Address) ([]identity.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpListGroupOwners, group.String()); err != nil {
		return nil, err
	}
	record, ok := f.groups[group]
	if !ok {
		return nil, notFound("group", group.String())
	}
	return sortedAddresses(record.owners.ToSlice()), nil
}

func (f *Fake) StartDataTransfer(ctx context.Context, kind directory.TransferKind, from, to identity.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpLaunchDataTransfer, string(kind), from.String(), to.String()); err != nil {
		return err
	}
	if _, ok := f.users[from]; !ok {
		return notFound("user", from.String())
	}
	if _, ok := f.users[to]; !ok {
		return notFound("user", to.String())
	}
	f.transfers = append(f.transfers, TransferRecord{Kind: kind, From: from, To: to})
	return nil
}

func (f *Fake) StartExport(ctx context.Context, matter string, scope *directory.ExportScope) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpLaunchBulkExport, matter); err != nil {
		return "", err
	}
	if scope == nil {
		return "", commonerrors.UndefinedVariable("export scope")
	}
	f.exportCount++
	jobID := fmt.Sprintf("export-%03d", f.exportCount)
	statuses := f.nextExportStatuses
	if len(statuses) == 0 {
		statuses = []asyncjob.Status{asyncjob.StatusCompleted}
	}
	f.exports[jobID] = &exportRecord{
		matter:    matter,
		statuses:  statuses,
		artifacts: f.nextExportContent,
	}
	f.nextExportStatuses = nil
	f.nextExportContent = nil
	return jobID, nil
}

func (f *Fake) GetJobStatus(ctx context.Context, jobID string) (*asyncjob.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpGetJobStatus, jobID); err != nil {
		return nil, err
	}
	record, ok := f.exports[jobID]
	if !ok {
		return nil, notFound("job", jobID)
	}
	status := record.statuses[record.cursor]
	if record.cursor < len(record.statuses)-1 {
		record.cursor++
	}
	return &asyncjob.Job{ID: jobID, Status: status}, nil
}

func (f *Fake) DownloadExport(ctx context.Context, jobID, destinationDir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpDownloadExport, jobID, destinationDir); err != nil {
		return err
	}
	record, ok := f.exports[jobID]
	if !ok {
		return notFound("job", jobID)
	}
	if record.statuses[record.cursor] != asyncjob.StatusCompleted {
		return commonerrors.Newf(commonerrors.ErrConflict, "export '%v' has not completed", jobID)
	}
	err := f.fs.MkDir(destinationDir)
	if err != nil {
		return err
	}
	manifest := directory.ExportManifest{JobID: jobID}
	for _, name := range slices.Sorted(maps.Keys(record.artifacts)) {
		content := record.artifacts[name]
		err = f.fs.WriteFile(filepath.Join(destinationDir, name), content, 0644)
		if err != nil {
			return err
		}
		checksum, err := artifactChecksum(content)
		if err != nil {
			return err
		}
		manifest.Artifacts = append(manifest.Artifacts, directory.ExportArtifact{
			Name:     name,
			Size:     int64(len(content)),
			Checksum: checksum,
		})
	}
	document, err := json.MarshalIndent(&manifest, "", "  ")
	if err != nil {
		return err
	}
	return f.fs.WriteFile(filepath.Join(destinationDir, directory.ManifestFileName), document, 0644)
}

func (f *Fake) UploadArchive(ctx context.Context, jobID, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpUploadToStorage, jobID, path); err != nil {
		return err
	}
	record, ok := f.exports[jobID]
	if !ok {
		return notFound("job", jobID)
	}
	if !f.fs.Exists(path) {
		return notFound("artifact", path)
	}
	record.uploaded = append(record.uploaded, path)
	return nil
}

func (f *Fake) SetSendAsSignature(ctx context.Context, address identity.Address, signaturePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(ctx, directory.OpUpdateSignature, address.String(), signaturePath); err != nil {
		return err
	}
	record, ok := f.users[address]
	if !ok {
		return notFound("user", address.String())
	}
	record.signaturePath = signaturePath
	return nil
}

func artifactChecksum(content []byte) (string, error) {
	algo, err := hashing.NewHashingAlgorithm(hashing.HashXXHash)
	if err != nil {
		return "", err
	}
	return algo.Calculate(bytes.NewReader(content))
}

func sortedAddresses(raw []string) (addresses []identity.Address) {
	slices.Sort(raw)
	addresses = make([]identity.Address, 0, len(raw))
	for i := range raw {
		addresses = append(addresses, identity.Address(raw[i]))
	}
	return
}
