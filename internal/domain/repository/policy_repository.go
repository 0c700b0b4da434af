// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"coverd/internal/domain/entity"
	"coverd/internal/errors"
)

// Domain-specific errors for policy persistence.
var (
	// ErrPolicyNotFound is returned when no policy has the given reference.
	ErrPolicyNotFound = errors.New("policy not found")
	// ErrDuplicateReference is returned when inserting a policy whose
	// reference already exists.
	ErrDuplicateReference = errors.New("policy reference already exists")
)

// Include selects which related entities a policy lookup eager-loads.
type Include int

const (
	// IncludeNone loads the policy row only.
	IncludeNone Include = iota
	// IncludePayment additionally loads the payment.
	IncludePayment
	// IncludeFull loads policyholders, property and payment.
	IncludeFull
)

// PolicyRepository defines the interface for policy-related database
// operations. Mutating methods are expected to run inside a
// TransactionManager.Execute callback; nothing is visible until that
// transaction commits.
type PolicyRepository interface {
	// Exists reports whether a policy with the given reference exists.
	Exists(ctx context.Context, reference string) (bool, error)

	// FindByReference retrieves a policy by its business reference,
	// eager-loading the relations selected by include.
	FindByReference(ctx context.Context, reference string, include Include) (*entity.Policy, error)

	// FindByReferenceReadOnly retrieves the policy row only, routed to a read
	// replica when one is configured. Used for refund quoting, which never
	// writes back.
	FindByReferenceReadOnly(ctx context.Context, reference string) (*entity.Policy, error)

	// Insert persists a new policy aggregate together with its holders,
	// property and payment.
	Insert(ctx context.Context, policy *entity.Policy) error

	// Update persists changes to an existing policy's own fields.
	Update(ctx context.Context, policy *entity.Policy) error
}
