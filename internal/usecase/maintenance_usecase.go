package usecase

import (
	"context"
	"fmt"

	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/infrastructure/metrics"
	"renovation_estimator/internal/usecase/interfaces"
)

const maintenancePageSize int32 = 100

// RepairReport summarizes a bulk repair run.
type RepairReport struct {
	Scanned     int             `json:"scanned"`
	RepairedIDs []string        `json:"repairedIds"`
	Failures    []RepairFailure `json:"failures"`
}

type RepairFailure struct {
	ProjectID string `json:"projectId"`
	Error     string `json:"error"`
}

// IMaintenanceUseCase exposes data maintenance jobs over the whole project set.
type IMaintenanceUseCase interface {
	RepairCustomWorkNames(ctx context.Context) (RepairReport, error)
}

type MaintenanceUseCase struct {
	repo interfaces.IProjectRepository
	log  *logger.Logger
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(repo interfaces.IProjectRepository, log *logger.Logger) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, log: log.With("component", "maintenance-usecase")}
}

// RepairCustomWorkNames scans every project and names unnamed custom work items. Saves skip
// validation. A failed save is recorded in the report and the scan goes on; only a failure
// to read the next page stops it, and the partial report is returned with the error.
func (u *MaintenanceUseCase) RepairCustomWorkNames(ctx context.Context) (RepairReport, error) {
	report := RepairReport{RepairedIDs: []string{}, Failures: []RepairFailure{}}
	u.log.Info("bulk custom work name repair start")

	cursor := ""
	for {
		page, next, err := u.repo.ListPage(ctx, cursor, maintenancePageSize)
		if err != nil {
			u.log.Error("bulk repair scan failed", "cursor", cursor, "scanned", report.Scanned, "error", err)
			return report, fmt.Errorf("scan projects: %w", err)
		}

		for _, p := range page {
			report.Scanned++
			if !estimating.NeedsCustomNameRepair(p) {
				continue
			}
			n := estimating.RepairCustomWorkNames(&p)

			saved, err := u.repo.Update(ctx, p)
			if err == nil && saved.ID == "" {
				err = ErrProjectNotFound
			}
			if err != nil {
				metrics.RepairsTotal.WithLabelValues(metrics.RepairModeBulk, metrics.ResultFailure).Inc()
				u.log.Warn("bulk repair save failed", "project_id", p.ID, "error", err)
				report.Failures = append(report.Failures, RepairFailure{ProjectID: p.ID, Error: err.Error()})
				continue
			}
			metrics.RepairsTotal.WithLabelValues(metrics.RepairModeBulk, metrics.ResultSuccess).Inc()
			u.log.Info("bulk repair saved", "project_id", p.ID, "repaired_items", n)
			report.RepairedIDs = append(report.RepairedIDs, p.ID)
		}

		if next == "" {
			break
		}
		cursor = next
	}

	u.log.Info("bulk custom work name repair done",
		"scanned", report.Scanned, "repaired", len(report.RepairedIDs), "failed", len(report.Failures))
	return report, nil
}
