package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/infrastructure/metrics"
	"renovation_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidOwnerID   = errors.New("invalid owner id")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// repairSaveTimeout bounds the best-effort write issued after a repaired read.
const repairSaveTimeout = 3 * time.Second

// ProjectDraft is a create/update request after transport decoding. Categories stay raw
// until the sanitizer has seen them.
type ProjectDraft struct {
	CustomerInfo entities.CustomerInfo
	Categories   []estimating.RawCategory
	Settings     entities.Settings
}

// IProjectUseCase exposes the project estimate operations.
//
//   - Preview: sanitize + calculate without persisting
//   - Create / Update: sanitize, calculate, enforce, persist
//   - GetByID: fetch, repairing unnamed custom work items on the way out
type IProjectUseCase interface {
	Preview(ctx context.Context, draft ProjectDraft) (entities.Project, error)
	Create(ctx context.Context, ownerID string, draft ProjectDraft) (entities.Project, error)
	Update(ctx context.Context, ownerID, id string, draft ProjectDraft) (entities.Project, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type ProjectUseCase struct {
	repo     interfaces.IProjectRepository
	enforcer *estimating.Enforcer
	log      *logger.Logger
	now      func() time.Time
	// background runs the repair save after a read; tests swap it for a synchronous call.
	background func(func())
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, enforcer *estimating.Enforcer, log *logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{
		repo:       repo,
		enforcer:   enforcer,
		log:        log.With("component", "project-usecase"),
		now:        func() time.Time { return time.Now().UTC() },
		background: func(f func()) { go f() },
	}
}

func (u *ProjectUseCase) Preview(ctx context.Context, draft ProjectDraft) (entities.Project, error) {
	return u.assemble(draft)
}

func (u *ProjectUseCase) Create(ctx context.Context, ownerID string, draft ProjectDraft) (entities.Project, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Project{}, ErrInvalidOwnerID
	}

	p, err := u.assemble(draft)
	if err != nil {
		return entities.Project{}, err
	}
	now := u.now()
	p.ID = uuid.NewString()
	p.OwnerID = ownerID
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("project create failed", "project_id", p.ID, "owner_id", ownerID, "error", err)
		return entities.Project{}, err
	}
	u.log.Info("project created", "project_id", created.ID, "owner_id", ownerID, "total", created.Totals.Total)
	return created, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, ownerID, id string, draft ProjectDraft) (entities.Project, error) {
	ownerID = strings.TrimSpace(ownerID)
	id = strings.TrimSpace(id)
	if ownerID == "" {
		return entities.Project{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ID == "" || existing.OwnerID != ownerID {
		return entities.Project{}, ErrProjectNotFound
	}

	p, err := u.assemble(draft)
	if err != nil {
		return entities.Project{}, err
	}
	p.ID = existing.ID
	p.OwnerID = existing.OwnerID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		u.log.Error("project update failed", "project_id", id, "owner_id", ownerID, "error", err)
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	u.log.Info("project updated", "project_id", id, "owner_id", ownerID, "total", updated.Totals.Total)
	return updated, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.Project, error) {
	ownerID = strings.TrimSpace(ownerID)
	id = strings.TrimSpace(id)
	if ownerID == "" {
		return entities.Project{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" || p.OwnerID != ownerID {
		return entities.Project{}, ErrProjectNotFound
	}

	if estimating.NeedsCustomNameRepair(p) {
		n := estimating.RepairCustomWorkNames(&p)
		saveCtx := context.WithoutCancel(ctx)
		toSave := p
		u.background(func() {
			u.logRepair(u.persistRepair(saveCtx, toSave, n))
		})
	}
	return p, nil
}

func (u *ProjectUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *ProjectUseCase) Delete(ctx context.Context, ownerID, id string) error {
	ownerID = strings.TrimSpace(ownerID)
	id = strings.TrimSpace(id)
	if ownerID == "" {
		return ErrInvalidOwnerID
	}
	if id == "" {
		return ErrInvalidProjectID
	}

	deleted, err := u.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	u.log.Info("project deleted", "project_id", id, "owner_id", ownerID)
	return nil
}

// assemble runs the write pipeline: sanitize, enforce, then price the enforced tree.
func (u *ProjectUseCase) assemble(draft ProjectDraft) (entities.Project, error) {
	categories, err := estimating.Sanitize(draft.Categories)
	if err != nil {
		u.recordValidationFailure(err)
		return entities.Project{}, err
	}

	settings := draft.Settings
	settings.Payments = withPaymentIDs(settings.Payments)

	// Warnings describe the tree as submitted. The enforcer rewrites unknown measurement
	// types to area, and the stored totals are priced from that rewritten tree.
	for _, w := range estimating.CalculateTotals(categories, settings).Warnings {
		metrics.UnitWarningsTotal.Inc()
		u.log.Warn("surface measurement type not recognized, priced as area",
			"category_key", w.CategoryKey,
			"work_item", w.WorkItemName,
			"surface_index", w.SurfaceIndex,
			"measurement_type", w.MeasurementType)
	}

	enforced, err := u.enforcer.Enforce(entities.Project{
		CustomerInfo: draft.CustomerInfo,
		Categories:   categories,
		Settings:     settings,
	})
	if err != nil {
		u.recordValidationFailure(err)
		return entities.Project{}, err
	}
	priced, _ := estimating.Price(enforced)
	return priced, nil
}

func (u *ProjectUseCase) recordValidationFailure(err error) {
	var verr *estimating.ValidationError
	if errors.As(err, &verr) {
		metrics.ValidationFailuresTotal.WithLabelValues(string(verr.Reason)).Inc()
		u.log.Debug("project rejected", "reason", verr.Reason, "fields", verr.Fields)
	}
}

func withPaymentIDs(payments []entities.Payment) []entities.Payment {
	out := make([]entities.Payment, len(payments))
	for i, p := range payments {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		out[i] = p
	}
	return out
}

// RepairOutcome is the result of persisting a repaired project. A failed save is reported
// here and never surfaced to the reader.
type RepairOutcome struct {
	ProjectID string
	Repaired  int
	Err       error
}

// persistRepair saves an already-repaired project without running the enforcer, so records
// that would fail unrelated validation can still be healed. It runs off the read path; the
// stored record stays as it was when the save fails, and the next read tries again.
func (u *ProjectUseCase) persistRepair(ctx context.Context, p entities.Project, repaired int) RepairOutcome {
	ctx, cancel := context.WithTimeout(ctx, repairSaveTimeout)
	defer cancel()

	outcome := RepairOutcome{ProjectID: p.ID, Repaired: repaired}
	saved, err := u.repo.Update(ctx, p)
	switch {
	case err != nil:
		outcome.Err = err
	case saved.ID == "":
		outcome.Err = ErrProjectNotFound
	}
	return outcome
}

func (u *ProjectUseCase) logRepair(o RepairOutcome) {
	if o.Err != nil {
		metrics.RepairsTotal.WithLabelValues(metrics.RepairModeRead, metrics.ResultFailure).Inc()
		u.log.Warn("custom work name repair not saved", "project_id", o.ProjectID, "repaired_items", o.Repaired, "error", o.Err)
		return
	}
	metrics.RepairsTotal.WithLabelValues(metrics.RepairModeRead, metrics.ResultSuccess).Inc()
	u.log.Info("custom work name repair saved", "project_id", o.ProjectID, "repaired_items", o.Repaired)
}
