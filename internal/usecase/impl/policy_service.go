// Package impl contains the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coverd/internal/domain/entity"
	domainerrors "coverd/internal/domain/errors"
	"coverd/internal/domain/repository"
	"coverd/internal/domain/rules"
	"coverd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const msgDuplicateReference = "The provided policy reference already exists"

type policyService struct {
	policyRepo repository.PolicyRepository
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// PolicyServiceParams holds dependencies for the policy service, injected by Fx.
type PolicyServiceParams struct {
	fx.In

	PolicyRepo repository.PolicyRepository
	TxManager  repository.TransactionManager
	Logger     *slog.Logger
}

// NewPolicyService creates a new policy lifecycle service instance
func NewPolicyService(params PolicyServiceParams) usecase.PolicyUsecase {
	return &policyService{
		policyRepo: params.PolicyRepo,
		txManager:  params.TxManager,
		logger:     params.Logger,
	}
}

// Sell validates a sale request against the business rules and persists the
// new policy together with a freshly generated payment.
func (s *policyService) Sell(ctx context.Context, input *usecase.SellPolicyInput) (*entity.Policy, error) {
	exists, err := s.policyRepo.Exists(ctx, input.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check policy reference")
	}

	if exists {
		return nil, domainerrors.NewBusinessRuleViolation(msgDuplicateReference)
	}

	policy := policyFromSellInput(input)

	if err := rules.ValidateSale(policy, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.txManager.Execute(ctx, func(repo repository.PolicyRepository) error {
		return repo.Insert(ctx, policy)
	}); err != nil {
		if errors.Is(err, repository.ErrDuplicateReference) {
			// Lost the race between the existence check and the insert.
			return nil, domainerrors.NewBusinessRuleViolation(msgDuplicateReference)
		}

		return nil, errors.Wrap(err, "failed to insert policy")
	}

	s.logger.Info("policy sold",
		slog.String("reference", policy.Reference),
		slog.Time("startDate", policy.StartDate),
	)

	return policy, nil
}

// Get retrieves a policy with all related entities.
func (s *policyService) Get(ctx context.Context, reference string) (*entity.Policy, error) {
	return s.fetchPolicy(ctx, reference, repository.IncludeFull)
}

// Cancel computes the refund due for cancelling the policy on the given date.
// A full refund applies before the start date and during the cool-off period;
// otherwise the refund is prorated. The policy row is left untouched: no
// cancelled state is recorded.
func (s *policyService) Cancel(ctx context.Context, reference string, cancellationDate time.Time) (decimal.Decimal, error) {
	if err := rules.ValidateCancellationDate(cancellationDate, time.Now().UTC()); err != nil {
		return decimal.Zero, err
	}

	policy, err := s.fetchPolicy(ctx, reference, repository.IncludeFull)
	if err != nil {
		return decimal.Zero, err
	}

	if err := rules.ValidateCancellable(policy); err != nil {
		return decimal.Zero, err
	}

	refund := rules.CancellationRefund(policy, cancellationDate)

	// The refund itself would be processed through a payment merchant here.

	s.logger.Info("policy cancellation computed",
		slog.String("reference", policy.Reference),
		slog.String("refund", refund.String()),
	)

	return refund, nil
}

// Renew advances the policy by one year after the eligibility checks pass and
// persists the new dates.
func (s *policyService) Renew(ctx context.Context, reference string) (*entity.Policy, error) {
	policy, err := s.fetchPolicy(ctx, reference, repository.IncludePayment)
	if err != nil {
		return nil, err
	}

	if err := rules.ValidateRenewal(policy, time.Now().UTC()); err != nil {
		return nil, err
	}

	rules.Renew(policy)

	if policy.AutoRenew {
		s.collectRenewalPayment(policy)
	}

	if err := s.txManager.Execute(ctx, func(repo repository.PolicyRepository) error {
		return repo.Update(ctx, policy)
	}); err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, domainerrors.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to update policy")
	}

	s.logger.Info("policy renewed",
		slog.String("reference", policy.Reference),
		slog.Time("endDate", policy.EndDate),
	)

	return policy, nil
}

// QuoteCancellationRefund computes the prorated refund for a hypothetical
// cancellation. The lookup is read-only; nothing is written back.
func (s *policyService) QuoteCancellationRefund(ctx context.Context, reference string, cancellationDate time.Time) (decimal.Decimal, error) {
	if err := rules.ValidateCancellationDate(cancellationDate, time.Now().UTC()); err != nil {
		return decimal.Zero, err
	}

	policy, err := s.policyRepo.FindByReferenceReadOnly(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return decimal.Zero, domainerrors.ErrPolicyNotFound
		}

		return decimal.Zero, errors.Wrap(err, "failed to find policy by reference")
	}

	if err := rules.ValidateRefundable(policy); err != nil {
		return decimal.Zero, err
	}

	return rules.ProratedRefund(policy, cancellationDate), nil
}

// CheckRenewable runs the renewal eligibility checks without renewing,
// converting a business violation into a negative result with its reason.
func (s *policyService) CheckRenewable(ctx context.Context, reference string) (*usecase.RenewalEligibility, error) {
	policy, err := s.fetchPolicy(ctx, reference, repository.IncludePayment)
	if err != nil {
		return nil, err
	}

	if err := rules.ValidateRenewal(policy, time.Now().UTC()); err != nil {
		if domainerrors.IsBusinessViolation(err) {
			return &usecase.RenewalEligibility{CanRenew: false, Reason: err.Error()}, nil
		}

		return nil, err
	}

	return &usecase.RenewalEligibility{CanRenew: true}, nil
}

// fetchPolicy looks up a policy and maps the store's not-found sentinel to
// the domain not-found outcome.
func (s *policyService) fetchPolicy(ctx context.Context, reference string, include repository.Include) (*entity.Policy, error) {
	policy, err := s.policyRepo.FindByReference(ctx, reference, include)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, domainerrors.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by reference")
	}

	return policy, nil
}

// collectRenewalPayment is where a payment merchant would be charged using
// the stored payment details. Intentionally a no-op.
func (s *policyService) collectRenewalPayment(policy *entity.Policy) {
	s.logger.Info("auto-renew payment collection skipped: merchant integration not implemented",
		slog.String("reference", policy.Reference),
		slog.String("paymentReference", policy.Payment.Reference),
	)
}

// policyFromSellInput builds the policy aggregate from a sale request. The
// payment reference is generated fresh here and the payment amount mirrors
// the premium.
func policyFromSellInput(input *usecase.SellPolicyInput) *entity.Policy {
	holders := make([]entity.Policyholder, 0, len(input.Policyholders))
	for _, holder := range input.Policyholders {
		holders = append(holders, entity.Policyholder{
			FirstName:   holder.FirstName,
			LastName:    holder.LastName,
			DateOfBirth: holder.DateOfBirth,
		})
	}

	var property *entity.Property
	if input.Property != nil {
		property = &entity.Property{
			AddressLine1: input.Property.AddressLine1,
			AddressLine2: input.Property.AddressLine2,
			AddressLine3: input.Property.AddressLine3,
			Postcode:     input.Property.Postcode,
		}
	}

	return &entity.Policy{
		Reference:     input.Reference,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Amount:        input.Amount,
		AutoRenew:     input.AutoRenew,
		Policyholders: holders,
		Property:      property,
		Payment: &entity.Payment{
			Reference: newPaymentReference(),
			Type:      input.PaymentType,
			Amount:    input.Amount,
		},
	}
}

// newPaymentReference returns an opaque 32-char hex reference.
func newPaymentReference() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
