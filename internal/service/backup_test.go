package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"clinicrecords/internal/repository"
	repoMocks "clinicrecords/internal/repository/mocks"
	"clinicrecords/internal/storage"
	storeMocks "clinicrecords/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func archivable(entity string) *repoMocks.MockArchivable {
	m := new(repoMocks.MockArchivable)
	m.On("Entity").Return(entity).Maybe()
	return m
}

func TestBackupService_Disabled(t *testing.T) {
	ctx := context.Background()
	svc := NewBackupService(nil, nil, time.Minute, nil)

	_, err := svc.Snapshot(ctx)
	assert.ErrorIs(t, err, ErrBackupDisabled)
	assert.ErrorIs(t, svc.Restore(ctx, "x"), ErrBackupDisabled)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrBackupDisabled)
	_, err = svc.DownloadURL(ctx, "x", "patient")
	assert.ErrorIs(t, err, ErrBackupDisabled)
}

func TestBackupService_Snapshot(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(p *repoMocks.MockArchivable, st *storeMocks.MockStorage)
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(p *repoMocks.MockArchivable, st *storeMocks.MockStorage) {
				p.On("Snapshot", ctx).Return([]byte("# header\n1|Ana\n"), nil)
				st.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "snapshots/20240305T101542Z-") && strings.HasSuffix(key, "/patient.dat")
				}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.Size == 15 && opt.Metadata["entity"] == "patient"
				})).Return(storage.ObjectInfo{Key: "snapshots/id/patient.dat", Size: 15}, nil)
			},
		},
		{
			name: "store read error",
			setupMocks: func(p *repoMocks.MockArchivable, st *storeMocks.MockStorage) {
				p.On("Snapshot", ctx).Return(nil, errors.New("read fail"))
			},
			wantErrMsg: "read fail",
		},
		{
			name: "upload error",
			setupMocks: func(p *repoMocks.MockArchivable, st *storeMocks.MockStorage) {
				p.On("Snapshot", ctx).Return([]byte("x"), nil)
				st.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload patient: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := archivable("patient")
			st := new(storeMocks.MockStorage)
			tt.setupMocks(p, st)

			svc := NewBackupService([]repository.Archivable{p}, st, time.Minute, fixedClock)
			snap, err := svc.Snapshot(ctx)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, snap)
			} else {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(snap.ID, "20240305T101542Z-"))
				assert.Len(t, snap.Objects, 1)
			}
			p.AssertExpectations(t)
			st.AssertExpectations(t)
		})
	}
}

func TestBackupService_Restore(t *testing.T) {
	ctx := context.Background()
	id := "20240305T101542Z-abcd1234"

	t.Run("downloads everything before restoring", func(t *testing.T) {
		p, d := archivable("patient"), archivable("doctor")
		st := new(storeMocks.MockStorage)
		st.On("List", ctx, "snapshots/"+id+"/").Return([]storage.ObjectInfo{{Key: ObjectKey(id, "patient")}}, nil)
		st.On("Get", ctx, ObjectKey(id, "patient")).Return(io.NopCloser(strings.NewReader("1|Ana\n")), storage.ObjectInfo{}, nil)
		st.On("Get", ctx, ObjectKey(id, "doctor")).Return(nil, storage.ObjectInfo{}, errors.New("no such key"))

		svc := NewBackupService([]repository.Archivable{p, d}, st, time.Minute, nil)
		err := svc.Restore(ctx, id)

		assert.EqualError(t, err, "download doctor: no such key")
		p.AssertNotCalled(t, "Restore", mock.Anything, mock.Anything)
	})

	t.Run("restores each store", func(t *testing.T) {
		p := archivable("patient")
		p.On("Restore", ctx, "1|Ana\n").Return(nil)
		st := new(storeMocks.MockStorage)
		st.On("List", ctx, "snapshots/"+id+"/").Return([]storage.ObjectInfo{{Key: ObjectKey(id, "patient")}}, nil)
		st.On("Get", ctx, ObjectKey(id, "patient")).Return(io.NopCloser(strings.NewReader("1|Ana\n")), storage.ObjectInfo{}, nil)

		svc := NewBackupService([]repository.Archivable{p}, st, time.Minute, nil)
		assert.NoError(t, svc.Restore(ctx, id))
		p.AssertExpectations(t)
	})

	t.Run("unknown snapshot", func(t *testing.T) {
		st := new(storeMocks.MockStorage)
		st.On("List", ctx, "snapshots/missing/").Return([]storage.ObjectInfo{}, nil)

		svc := NewBackupService(nil, st, time.Minute, nil)
		assert.ErrorIs(t, svc.Restore(ctx, "missing"), ErrSnapshotNotFound)
		assert.ErrorIs(t, svc.Restore(ctx, "../etc"), ErrSnapshotNotFound)
	})
}

func TestBackupService_List(t *testing.T) {
	ctx := context.Background()
	st := new(storeMocks.MockStorage)
	st.On("List", ctx, "snapshots/").Return([]storage.ObjectInfo{
		{Key: "snapshots/20240101T000000Z-aaaa/patient.dat"},
		{Key: "snapshots/20240101T000000Z-aaaa/doctor.dat"},
		{Key: "snapshots/20240301T000000Z-bbbb/patient.dat"},
		{Key: "snapshots/stray"},
	}, nil)

	svc := NewBackupService(nil, st, time.Minute, nil)
	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240301T000000Z-bbbb", "20240101T000000Z-aaaa"}, ids)
}

func TestBackupService_DownloadURL(t *testing.T) {
	ctx := context.Background()
	id := "20240101T000000Z-aaaa"
	st := new(storeMocks.MockStorage)
	st.On("List", ctx, "snapshots/"+id+"/").Return([]storage.ObjectInfo{{Key: ObjectKey(id, "patient")}}, nil)
	st.On("PresignGet", ctx, "snapshots/"+id+"/patient.dat", 15*time.Minute).Return("https://minio/signed", nil)

	svc := NewBackupService([]repository.Archivable{archivable("patient")}, st, 15*time.Minute, nil)

	url, err := svc.DownloadURL(ctx, id, "patient")
	require.NoError(t, err)
	assert.Equal(t, "https://minio/signed", url)

	_, err = svc.DownloadURL(ctx, id, "invoice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
