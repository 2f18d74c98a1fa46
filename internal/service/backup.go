package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinicrecords/internal/repository"
	"clinicrecords/internal/storage"
)

// SnapshotPrefix is the object key prefix under which snapshots are stored.
const SnapshotPrefix = "snapshots"

const snapshotContentType = "text/plain; charset=utf-8"

// Snapshot describes one backup of every data file.
type Snapshot struct {
	ID      string               `json:"id"`
	Objects []storage.ObjectInfo `json:"objects"`
}

// BackupService copies the data files to object storage and back.
type BackupService interface {
	// Snapshot uploads the current content of every store under a fresh snapshot id.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Restore replaces every store with the content saved in snapshot id.
	// All files are downloaded before any store is touched.
	Restore(ctx context.Context, id string) error

	// List returns the known snapshot ids, newest first.
	List(ctx context.Context) ([]string, error)

	// DownloadURL presigns a time-limited link to one entity file of a snapshot.
	DownloadURL(ctx context.Context, id, entity string) (string, error)
}

type backupService struct {
	stores  []repository.Archivable
	storage storage.Storage
	expiry  time.Duration
	now     func() time.Time
}

// NewBackupService constructs a BackupService. A nil storage yields a service that
// fails every call with ErrBackupDisabled.
func NewBackupService(stores []repository.Archivable, st storage.Storage, expiry time.Duration, now func() time.Time) BackupService {
	if now == nil {
		now = time.Now
	}
	return &backupService{stores: stores, storage: st, expiry: expiry, now: now}
}

// ObjectKey returns the storage key of one entity file within a snapshot.
func ObjectKey(id, entity string) string {
	return path.Join(SnapshotPrefix, id, entity+".dat")
}

func (s *backupService) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.storage == nil {
		return nil, ErrBackupDisabled
	}
	id := s.now().UTC().Format("20060102T150405Z") + "-" + uuid.NewString()[:8]
	snap := &Snapshot{ID: id}
	for _, st := range s.stores {
		data, err := st.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		info, err := s.storage.Put(ctx, ObjectKey(id, st.Entity()), bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: snapshotContentType,
			Metadata:    map[string]string{"entity": st.Entity()},
		})
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", st.Entity(), err)
		}
		snap.Objects = append(snap.Objects, info)
	}
	return snap, nil
}

func (s *backupService) Restore(ctx context.Context, id string) error {
	if s.storage == nil {
		return ErrBackupDisabled
	}
	if err := s.exists(ctx, id); err != nil {
		return err
	}

	contents := make([][]byte, len(s.stores))
	for i, st := range s.stores {
		data, err := s.download(ctx, ObjectKey(id, st.Entity()))
		if err != nil {
			return fmt.Errorf("download %s: %w", st.Entity(), err)
		}
		contents[i] = data
	}
	for i, st := range s.stores {
		if err := st.Restore(ctx, bytes.NewReader(contents[i])); err != nil {
			return fmt.Errorf("restore %s: %w", st.Entity(), err)
		}
	}
	return nil
}

func (s *backupService) List(ctx context.Context) ([]string, error) {
	if s.storage == nil {
		return nil, ErrBackupDisabled
	}
	objs, err := s.storage.List(ctx, SnapshotPrefix+"/")
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, o := range objs {
		id, _, ok := strings.Cut(strings.TrimPrefix(o.Key, SnapshotPrefix+"/"), "/")
		if !ok || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	// ids start with a UTC timestamp, so lexical order is chronological.
	slices.Sort(ids)
	slices.Reverse(ids)
	return ids, nil
}

func (s *backupService) DownloadURL(ctx context.Context, id, entity string) (string, error) {
	if s.storage == nil {
		return "", ErrBackupDisabled
	}
	if !slices.ContainsFunc(s.stores, func(a repository.Archivable) bool { return a.Entity() == entity }) {
		return "", fmt.Errorf("unknown entity %q: %w", entity, repository.ErrNotFound)
	}
	if err := s.exists(ctx, id); err != nil {
		return "", err
	}
	return s.storage.PresignGet(ctx, ObjectKey(id, entity), s.expiry)
}

func (s *backupService) exists(ctx context.Context, id string) error {
	if id == "" || strings.Contains(id, "/") {
		return fmt.Errorf("snapshot %q: %w", id, ErrSnapshotNotFound)
	}
	objs, err := s.storage.List(ctx, path.Join(SnapshotPrefix, id)+"/")
	if err != nil {
		return err
	}
	if len(objs) == 0 {
		return fmt.Errorf("snapshot %q: %w", id, ErrSnapshotNotFound)
	}
	return nil
}

func (s *backupService) download(ctx context.Context, key string) ([]byte, error) {
	rc, _, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
