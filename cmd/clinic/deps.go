package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clinicrecords/internal/config"
	"clinicrecords/internal/logging"
	"clinicrecords/internal/repository/flatfile"
	"clinicrecords/internal/service"
	"clinicrecords/internal/storage"
)

// clinic holds what every command shares.
type clinic struct {
	cfg    *config.AppConfig
	log    zerolog.Logger
	stores *flatfile.Stores
}

// openClinic opens the data files, creating them when missing.
// reg may be nil when store metrics are not exported.
func openClinic(cfg *config.AppConfig, log zerolog.Logger, reg prometheus.Registerer) (*clinic, error) {
	opts := []flatfile.Option{flatfile.WithLogger(log)}
	if reg != nil {
		m, err := flatfile.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("register store metrics: %w", err)
		}
		opts = append(opts, flatfile.WithMetrics(m))
	}

	stores, err := flatfile.Open(cfg.DataDir, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("data_dir", cfg.DataDir).Msg("data files ready")
	return &clinic{cfg: cfg, log: log, stores: stores}, nil
}

// cliClinic is openClinic for the one-shot commands; logs go to stderr so
// stdout carries only command output.
func cliClinic(cmd *cobra.Command) (*clinic, error) {
	cfg := config.Load()
	return openClinic(cfg, logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr()), nil)
}

// backups builds the backup service; without MinIO settings it answers ErrBackupDisabled.
func (rt *clinic) backups(ctx context.Context) (service.BackupService, error) {
	var objStore storage.Storage
	if rt.cfg.MinIO.Enabled() {
		s, err := storage.NewMinIO(ctx, rt.cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("initialize object storage: %w", err)
		}
		objStore = s
	}
	return service.NewBackupService(rt.stores.Archivables(), objStore, rt.cfg.BackupURLExpiry, nil), nil
}

func (rt *clinic) reports() service.ReportService {
	return service.NewReportService(service.Repositories{
		Patients:     rt.stores.Patients,
		Doctors:      rt.stores.Doctors,
		Appointments: rt.stores.Appointments,
		Equipment:    rt.stores.Equipment,
		Inventory:    rt.stores.Inventory,
	})
}
