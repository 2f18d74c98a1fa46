package service

import "errors"

var (
	ErrBackupDisabled    = errors.New("backup storage is not configured")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidRange      = errors.New("range start is after range end")
)
