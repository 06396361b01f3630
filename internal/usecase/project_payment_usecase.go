package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/domain/estimating"
	"renovation_estimator/internal/infrastructure/logger"
	"renovation_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CardPaymentMethod is the method recorded for payments collected through the gateway.
const CardPaymentMethod = "Card"

var (
	ErrInvalidPaymentPayload        = errors.New("invalid payment payload")
	ErrInvalidPaymentAmount         = errors.New("invalid payment amount")
	ErrNothingDue                   = errors.New("project has no balance due")
	ErrPaymentGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest     = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized   = errors.New("payment gateway unauthorized")
	ErrPaymentAmountExceedsDue      = errors.New("payment amount exceeds balance due")
	ErrProjectRepositoryUnavailable = errors.New("project repository not configured")
)

// CardPaymentResult is the recorded payment together with the project it was added to.
type CardPaymentResult struct {
	Payment entities.Payment
	Project entities.Project
}

// IProjectPaymentUseCase collects card payments against a project's balance.
//
// The charged amount defaults to the full balance due. The provider outcome is recorded on
// the project's payment schedule either way; only approved charges count as paid.
type IProjectPaymentUseCase interface {
	CollectCardPayment(ctx context.Context, ownerID, projectID string, amount float64, providerPayload json.RawMessage) (CardPaymentResult, error)
}

type ProjectPaymentUseCase struct {
	repo     interfaces.IProjectRepository
	gateway  interfaces.IPaymentGateway
	enforcer *estimating.Enforcer
	log      *logger.Logger
	now      func() time.Time
}

var _ IProjectPaymentUseCase = (*ProjectPaymentUseCase)(nil)

func NewProjectPaymentUseCase(repo interfaces.IProjectRepository, gateway interfaces.IPaymentGateway, enforcer *estimating.Enforcer, log *logger.Logger) *ProjectPaymentUseCase {
	return &ProjectPaymentUseCase{
		repo:     repo,
		gateway:  gateway,
		enforcer: enforcer,
		log:      log.With("component", "payment-usecase"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProjectPaymentUseCase) CollectCardPayment(ctx context.Context, ownerID, projectID string, amount float64, providerPayload json.RawMessage) (CardPaymentResult, error) {
	ownerID = strings.TrimSpace(ownerID)
	projectID = strings.TrimSpace(projectID)
	u.log.Debug("card payment start", "project_id", projectID, "payload_len", len(providerPayload))
	if ownerID == "" {
		return CardPaymentResult{}, ErrInvalidOwnerID
	}
	if projectID == "" {
		return CardPaymentResult{}, ErrInvalidProjectID
	}
	if amount < 0 {
		return CardPaymentResult{}, ErrInvalidPaymentAmount
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return CardPaymentResult{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return CardPaymentResult{}, ErrPaymentGatewayNotConfigured
	}
	if u.repo == nil {
		return CardPaymentResult{}, ErrProjectRepositoryUnavailable
	}

	project, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		u.log.Error("card payment project load failed", "project_id", projectID, "error", err)
		return CardPaymentResult{}, err
	}
	if project.ID == "" || project.OwnerID != ownerID {
		return CardPaymentResult{}, ErrProjectNotFound
	}

	// Nothing is charged until the record, with the new payment on it, is known to be
	// storable. Stored records may predate the naming rule, so they are repaired first.
	if n := estimating.RepairCustomWorkNames(&project); n > 0 {
		u.log.Info("card payment repaired custom work names", "project_id", projectID, "repaired_items", n)
	}
	current, err := u.enforcer.Enforce(project)
	if err != nil {
		u.log.Warn("card payment refused, stored project is invalid", "project_id", projectID, "error", err)
		return CardPaymentResult{}, err
	}
	current, _ = estimating.Price(current)

	due := current.PaymentDetails.TotalDue
	if due <= 0 {
		return CardPaymentResult{}, ErrNothingDue
	}
	if amount == 0 {
		amount = due
	}
	amount = estimating.Round2(amount)
	if amount < 0.01 {
		return CardPaymentResult{}, ErrInvalidPaymentAmount
	}
	if amount > due {
		return CardPaymentResult{}, ErrPaymentAmountExceedsDue
	}

	payment := entities.Payment{
		ID:     uuid.NewString(),
		Date:   u.now(),
		Amount: amount,
		Method: CardPaymentMethod,
		Status: entities.PaymentStatusPending,
	}
	if _, err := u.enforcer.Enforce(withPayment(current, payment)); err != nil {
		u.log.Warn("card payment refused, payment would not validate", "project_id", projectID, "error", err)
		return CardPaymentResult{}, err
	}

	payload, err := enrichProviderPayload(providerPayload, project.ID, amount)
	if err != nil {
		return CardPaymentResult{}, err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Warn("card payment gateway failed", "project_id", projectID, "error", err)
		return CardPaymentResult{}, classifyGatewayError(err)
	}
	u.log.Info("card payment gateway success", "project_id", projectID, "provider_payment_id", providerID, "provider_status", providerStatus)

	payment.ProviderPaymentID = providerID
	if strings.EqualFold(providerStatus, "approved") {
		payment.IsPaid = true
		payment.Status = entities.PaymentStatusPaid
	}

	final := withPayment(current, payment)
	final.UpdatedAt = payment.Date
	saved, err := u.repo.Update(ctx, final)
	if err != nil {
		// The provider has charged the card at this point; the id in the log is what
		// reconciles it.
		u.log.Error("card payment record failed", "project_id", projectID, "provider_payment_id", providerID, "error", err)
		return CardPaymentResult{}, err
	}
	if saved.ID == "" {
		u.log.Error("card payment record missed", "project_id", projectID, "provider_payment_id", providerID)
		return CardPaymentResult{}, ErrProjectNotFound
	}
	return CardPaymentResult{Payment: payment, Project: saved}, nil
}

// withPayment returns p with payment appended to its schedule and the payment details
// recomputed. The schedule of p is not modified.
func withPayment(p entities.Project, payment entities.Payment) entities.Project {
	payments := make([]entities.Payment, 0, len(p.Settings.Payments)+1)
	payments = append(payments, p.Settings.Payments...)
	p.Settings.Payments = append(payments, payment)
	p.PaymentDetails = estimating.AggregatePayments(p.Settings.Payments, p.Totals.Total)
	return p
}

// enrichProviderPayload links the charge to the project. The amount always comes from the
// server side, never from the caller's provider payload.
func enrichProviderPayload(raw json.RawMessage, projectID string, amount float64) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		return nil, ErrInvalidPaymentPayload
	}
	if !hasNonEmptyString(req, "payment_method_id") {
		return nil, ErrInvalidPaymentPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = projectID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Renovation project %s", projectID)
	}
	req["transaction_amount"] = amount

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}
