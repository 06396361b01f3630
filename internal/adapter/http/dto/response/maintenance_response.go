package response

import "renovation_estimator/internal/usecase"

type RepairReportResponse struct {
	Scanned     int                     `json:"scanned"`
	Repaired    int                     `json:"repaired"`
	RepairedIDs []string                `json:"repairedIds"`
	Failures    []usecase.RepairFailure `json:"failures"`
}

func FromRepairReport(r usecase.RepairReport) RepairReportResponse {
	ids := r.RepairedIDs
	if ids == nil {
		ids = []string{}
	}
	failures := r.Failures
	if failures == nil {
		failures = []usecase.RepairFailure{}
	}
	return RepairReportResponse{
		Scanned:     r.Scanned,
		Repaired:    len(ids),
		RepairedIDs: ids,
		Failures:    failures,
	}
}
