package postgres

import (
	"context"

	"coverd/internal/domain/entity"
	"coverd/internal/domain/repository"
	"coverd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// policyRepository implements the repository.PolicyRepository interface.
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository is the constructor for policyRepository.
func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepository{
		db: db,
	}
}

// Exists reports whether a policy with the given reference exists.
func (repo *policyRepository) Exists(ctx context.Context, reference string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PolicyModel{}).
		Where("reference = ?", reference).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check policy existence")
	}

	return count > 0, nil
}

// FindByReference retrieves a policy by its business reference, eager-loading
// the relations selected by include.
func (repo *policyRepository) FindByReference(ctx context.Context, reference string, include repository.Include) (*entity.Policy, error) {
	query := repo.db.WithContext(ctx)

	switch include {
	case repository.IncludePayment:
		query = query.Preload("Payment")
	case repository.IncludeFull:
		query = query.
			Preload("Policyholders").
			Preload("Property").
			Preload("Payment")
	case repository.IncludeNone:
	}

	var policyM model.PolicyModel
	if err := query.
		Where("reference = ?", reference).
		First(&policyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by reference")
	}

	return toPolicyDomain(&policyM), nil
}

// FindByReferenceReadOnly retrieves the policy row only, routed to a read
// replica when one is configured.
func (repo *policyRepository) FindByReferenceReadOnly(ctx context.Context, reference string) (*entity.Policy, error) {
	var policyM model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("reference = ?", reference).
		First(&policyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by reference")
	}

	return toPolicyDomain(&policyM), nil
}

// Insert persists a new policy aggregate. GORM cascades the holder, property
// and payment rows from the association fields.
func (repo *policyRepository) Insert(ctx context.Context, policy *entity.Policy) error {
	policyM := fromPolicyDomain(policy)

	if err := repo.db.WithContext(ctx).Create(policyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReference
		}

		return errors.Wrap(err, "failed to insert policy")
	}

	policy.ID = policyM.ID

	return nil
}

// Update persists changes to the policy's own fields (the term dates and
// flags); related rows never change after sale.
func (repo *policyRepository) Update(ctx context.Context, policy *entity.Policy) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PolicyModel{}).
		Where("reference = ?", policy.Reference).
		Updates(map[string]any{
			"start_date":     policy.StartDate,
			"end_date":       policy.EndDate,
			"amount":         policy.Amount,
			"has_open_claim": policy.HasOpenClaim,
			"auto_renew":     policy.AutoRenew,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update policy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPolicyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPolicyDomain converts a GORM PolicyModel to a domain Policy entity.
func toPolicyDomain(data *model.PolicyModel) *entity.Policy {
	if data == nil {
		return nil
	}

	policy := &entity.Policy{
		ID:           data.ID,
		Reference:    data.Reference,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Amount:       data.Amount,
		HasOpenClaim: data.HasOpenClaim,
		AutoRenew:    data.AutoRenew,
	}

	for _, holderM := range data.Policyholders {
		policy.Policyholders = append(policy.Policyholders, entity.Policyholder{
			FirstName:   holderM.FirstName,
			LastName:    holderM.LastName,
			DateOfBirth: holderM.DateOfBirth,
		})
	}

	if data.Property != nil {
		policy.Property = &entity.Property{
			AddressLine1: data.Property.AddressLine1,
			AddressLine2: data.Property.AddressLine2,
			AddressLine3: data.Property.AddressLine3,
			Postcode:     data.Property.Postcode,
		}
	}

	if data.Payment != nil {
		policy.Payment = &entity.Payment{
			Reference: data.Payment.Reference,
			Type:      entity.PaymentType(data.Payment.PaymentType),
			Amount:    data.Payment.Amount,
		}
	}

	return policy
}

// fromPolicyDomain converts a domain Policy entity to a GORM PolicyModel.
func fromPolicyDomain(data *entity.Policy) *model.PolicyModel {
	if data == nil {
		return nil
	}

	policyM := &model.PolicyModel{
		ID:           data.ID,
		Reference:    data.Reference,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Amount:       data.Amount,
		HasOpenClaim: data.HasOpenClaim,
		AutoRenew:    data.AutoRenew,
	}

	for _, holder := range data.Policyholders {
		policyM.Policyholders = append(policyM.Policyholders, model.PolicyholderModel{
			FirstName:   holder.FirstName,
			LastName:    holder.LastName,
			DateOfBirth: holder.DateOfBirth,
		})
	}

	if data.Property != nil {
		policyM.Property = &model.PropertyModel{
			AddressLine1: data.Property.AddressLine1,
			AddressLine2: data.Property.AddressLine2,
			AddressLine3: data.Property.AddressLine3,
			Postcode:     data.Property.Postcode,
		}
	}

	if data.Payment != nil {
		policyM.Payment = &model.PaymentModel{
			Reference:   data.Payment.Reference,
			PaymentType: string(data.Payment.Type),
			Amount:      data.Payment.Amount,
		}
	}

	return policyM
}
