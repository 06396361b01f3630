package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"renovation_estimator/internal/adapter/http/handlers/mocks"
	"renovation_estimator/internal/adapter/http/middleware"
	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/usecase"
	"renovation_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const kitchenBody = `{
	"customerInfo": {"firstName": "Ana"},
	"categories": [{"key": "kitchen", "name": "Kitchen", "workItems": [
		{"type": "kitchen-flooring", "name": "Tile floor", "materialCost": 2, "laborCost": 3, "surfaces": [{"sqft": 100}]}
	]}],
	"settings": {"taxRate": 0.08}
}`

// withOwner stands in for the auth middleware.
func withOwner(owner string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextOwnerID, owner)
		c.Next()
	}
}

func newProjectRouter(h *ProjectHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", withOwner("owner-1"))
	g.POST("/projects", h.CreateProject)
	g.POST("/projects/calculate", h.CalculateProject)
	g.GET("/projects", h.ListProjects)
	g.GET("/projects/:id", h.GetProject)
	g.PUT("/projects/:id", h.UpdateProject)
	g.DELETE("/projects/:id", h.DeleteProject)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/projects", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w).Code; got != "INVALID_PROJECT_INPUT" {
			t.Fatalf("expected INVALID_PROJECT_INPUT, got %q", got)
		}
	})

	t.Run("missing categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/projects", `{"settings":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, draft usecase.ProjectDraft) (entities.Project, error) {
				if len(draft.Categories) != 1 || len(draft.Categories[0].WorkItems) != 1 {
					t.Fatalf("unexpected draft %+v", draft)
				}
				if draft.Settings.TaxRate != 0.08 {
					t.Fatalf("expected tax rate 0.08, got %v", draft.Settings.TaxRate)
				}
				return entities.Project{ID: "p-1", Totals: entities.Totals{Total: 540}}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/projects", kitchenBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "p-1" {
			t.Fatalf("expected id p-1, got %v", body["id"])
		}
		if body["totals"].(map[string]any)["total"] != 540.0 {
			t.Fatalf("expected total 540, got %v", body["totals"])
		}
	})

	t.Run("taxonomy mismatch carries field paths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		verr := &estimating.ValidationError{
			Reason:  estimating.ReasonTaxonomy,
			Message: "work item type not allowed for category",
			Errors:  []string{`type "bathroom-vanity" is not allowed for categoryKey "kitchen"`},
			Fields:  []string{"categories[0].workItems[0].type"},
		}
		uc.EXPECT().Create(gomock.Any(), "owner-1", gomock.Any()).Return(entities.Project{}, verr)

		w := doJSON(r, http.MethodPost, "/v1/projects", kitchenBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != "TAXONOMY_MISMATCH" {
			t.Fatalf("expected TAXONOMY_MISMATCH, got %q", body.Code)
		}
		if len(body.Fields) != 1 || body.Fields[0] != "categories[0].workItems[0].type" {
			t.Fatalf("unexpected fields %v", body.Fields)
		}
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "owner-1", gomock.Any()).Return(entities.Project{}, errors.New("dynamodb: connection reset"))

		w := doJSON(r, http.MethodPost, "/v1/projects", kitchenBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("dynamodb")) {
			t.Fatalf("expected generic message, got %s", w.Body.String())
		}
	})
}

func TestProjectHandler_CalculateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(NewProjectHandler(uc))

	uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(entities.Project{
		Totals:         entities.Totals{Subtotal: 500, TaxAmount: 40, Total: 540},
		PaymentDetails: entities.PaymentDetails{TotalDue: 540},
	}, nil)

	w := doJSON(r, http.MethodPost, "/v1/projects/calculate", kitchenBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["id"]; ok {
		t.Fatalf("expected no id in preview, got %v", body)
	}
	if body["paymentDetails"].(map[string]any)["totalDue"] != 540.0 {
		t.Fatalf("unexpected payment details %v", body["paymentDetails"])
	}
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "p-1").Return(entities.Project{ID: "p-1"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/projects/p-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "p-404").Return(entities.Project{}, usecase.ErrProjectNotFound)

		w := doJSON(r, http.MethodGet, "/v1/projects/p-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w).Code; got != "PROJECT_NOT_FOUND" {
			t.Fatalf("expected PROJECT_NOT_FOUND, got %q", got)
		}
	})
}

func TestProjectHandler_UpdateListDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "owner-1", "p-1", gomock.Any()).Return(entities.Project{ID: "p-1"}, nil)

		w := doJSON(r, http.MethodPut, "/v1/projects/p-1", kitchenBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.Project{{ID: "p-1"}, {ID: "p-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/projects", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(body))
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "owner-1", "p-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/projects/p-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapProjectError(t *testing.T) {
	structural := &estimating.ValidationError{Reason: estimating.ReasonStructural, Message: "project validation failed"}
	taxonomy := &estimating.ValidationError{Reason: estimating.ReasonTaxonomy, Message: "work item type not allowed for category"}

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{structural, http.StatusBadRequest, "VALIDATION_FAILED"},
		{taxonomy, http.StatusBadRequest, "TAXONOMY_MISMATCH"},
		{usecase.ErrInvalidProjectID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidOwnerID, http.StatusUnauthorized, "UNAUTHORIZED"},
		{usecase.ErrProjectNotFound, http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{errors.New("x"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		got := mapProjectError(tt.err)
		if got.HTTPStatus != tt.status || got.Code != tt.code {
			t.Fatalf("%v: expected %d %s, got %d %s", tt.err, tt.status, tt.code, got.HTTPStatus, got.Code)
		}
	}
}
