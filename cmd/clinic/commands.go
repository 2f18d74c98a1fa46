package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"clinicrecords/internal/service"
)

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot every data file to object storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cliClinic(cmd)
			if err != nil {
				return err
			}
			svc, err := rt.backups(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := svc.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			rt.log.Info().Str("snapshot", snap.ID).Int("files", len(snap.Objects)).Msg("backup complete")
			fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <snapshot>",
		Short: "Replace every data file with a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cliClinic(cmd)
			if err != nil {
				return err
			}
			svc, err := rt.backups(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Restore(cmd.Context(), args[0]); err != nil {
				return err
			}
			rt.log.Info().Str("snapshot", args[0]).Msg("restore complete")
			return nil
		},
	}
}

func snapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots",
		Short: "List snapshot ids, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cliClinic(cmd)
			if err != nil {
				return err
			}
			svc, err := rt.backups(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

var reportNames = []string{"patients", "doctors", "appointments", "by-doctor", "inventory", "equipment"}

func reportCmd() *cobra.Command {
	var (
		minAge   int
		address  string
		from, to string
		lowStock int
	)
	cmd := &cobra.Command{
		Use:       "report <" + strings.Join(reportNames, "|") + ">",
		Short:     "Print a read-only report as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cliClinic(cmd)
			if err != nil {
				return err
			}
			svc := rt.reports()
			ctx := cmd.Context()

			var out any
			switch args[0] {
			case "patients":
				out, err = svc.Patients(ctx, service.PatientQuery{MinAge: minAge, Address: address})
			case "doctors":
				out, err = svc.DoctorsBySpecialty(ctx)
			case "appointments":
				var lo, hi time.Time
				if lo, err = time.Parse(time.DateOnly, from); err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				if hi, err = time.Parse(time.DateOnly, to); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				out, err = svc.AppointmentsBetween(ctx, lo, hi)
			case "by-doctor":
				out, err = svc.AppointmentsPerDoctor(ctx)
			case "inventory":
				out, err = svc.Inventory(ctx, lowStock)
			case "equipment":
				out, err = svc.Equipment(ctx)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&minAge, "min-age", 0, "patients: minimum age")
	cmd.Flags().StringVar(&address, "address", "", "patients: address substring")
	cmd.Flags().StringVar(&from, "from", "", "appointments: first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "appointments: last day, YYYY-MM-DD")
	cmd.Flags().IntVar(&lowStock, "low-stock", -1, "inventory: list items at or below this quantity")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
