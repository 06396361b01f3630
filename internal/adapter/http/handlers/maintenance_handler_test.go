package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"renovation_estimator/internal/adapter/http/handlers/mocks"
	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceHandler_RepairCustomWorkNames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/maintenance/repair-custom-work-names", NewMaintenanceHandler(uc).RepairCustomWorkNames)

		uc.EXPECT().RepairCustomWorkNames(gomock.Any()).Return(usecase.RepairReport{
			Scanned:     3,
			RepairedIDs: []string{"p-2"},
			Failures:    []usecase.RepairFailure{{ProjectID: "p-3", Error: "throttled"}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/maintenance/repair-custom-work-names", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["repaired"] != 1.0 || body["scanned"] != 3.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("scan failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/maintenance/repair-custom-work-names", NewMaintenanceHandler(uc).RepairCustomWorkNames)

		uc.EXPECT().RepairCustomWorkNames(gomock.Any()).Return(usecase.RepairReport{Scanned: 1}, errors.New("scan"))

		w := doJSON(r, http.MethodPost, "/v1/maintenance/repair-custom-work-names", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTaxonomyHandler_GetTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/taxonomy", NewTaxonomyHandler(estimating.NewTaxonomy("t1", map[string][]string{
		"kitchen": {"kitchen-painting", "kitchen-flooring"},
	})).GetTaxonomy)

	w := doJSON(r, http.MethodGet, "/v1/taxonomy", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Version    string              `json:"version"`
		Categories map[string][]string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Version != "t1" || len(body.Categories["kitchen"]) != 2 || body.Categories["kitchen"][0] != "kitchen-flooring" {
		t.Fatalf("unexpected body %+v", body)
	}
}
