package store

import (
	"context"

	"github.com/feral-file/ff-awards/internal/domain"
)

// ListFilter narrows and paginates a recipient's grant listing
type ListFilter struct {
	// Limit is the page size. Zero returns every grant.
	Limit int
	// Page is 1-indexed and only applies when Limit is positive
	Page int
	// Status restricts the listing to one status. Nil lists every status.
	Status *domain.GrantStatus
}

// Offset returns the row offset for the filter
func (f ListFilter) Offset() int {
	if f.Limit > 0 && f.Page > 0 {
		return (f.Page - 1) * f.Limit
	}
	return 0
}

// GivenCountCorrection describes one award whose given_count was raised by a repair pass
type GivenCountCorrection struct {
	AwardID    domain.AwardID
	Previous   int64
	Corrected  int64
	GrantCount int64
}

// Ledger defines the persistent store of award grants
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Ledger=MockLedger,Catalog=MockCatalog,Directory=MockDirectory
type Ledger interface {
	// HasActiveGrant reports whether the recipient holds an active grant of the award
	HasActiveGrant(ctx context.Context, recipientID domain.UserID, awardID domain.AwardID) (bool, error)
	// Transaction runs fn with a ledger whose writes commit atomically
	Transaction(ctx context.Context, fn func(tx Ledger) error) error
	// Insert records a new active grant. Returns domain.ErrConflict if the pair was already granted.
	Insert(ctx context.Context, recipientID domain.UserID, recipientDisplayName string, awardID domain.AwardID) (domain.GrantID, error)
	// IncrementGivenCount atomically adds one to the award's lifetime counter
	IncrementGivenCount(ctx context.Context, awardID domain.AwardID) error
	// SetStatus flips a grant between active and revoked
	SetStatus(ctx context.Context, grantID domain.GrantID, status domain.GrantStatus) error
	// Delete hard-deletes a grant. Deleting a missing grant is not an error.
	Delete(ctx context.Context, grantID domain.GrantID) error
	// GetByID retrieves a grant joined with its award
	GetByID(ctx context.Context, grantID domain.GrantID) (*domain.GrantDetail, error)
	// CountActiveGrants counts the recipient's active grants
	CountActiveGrants(ctx context.Context, recipientID domain.UserID) (int, error)
	// ListByRecipient lists the recipient's grants newest first
	ListByRecipient(ctx context.Context, recipientID domain.UserID, filter ListFilter) ([]domain.GrantDetail, error)
	// CountGrantsByRecipientName resolves the user name and counts their grants
	CountGrantsByRecipientName(ctx context.Context, name string) (int, error)
	// OwnsGrant reports whether the grant was given to the user
	OwnsGrant(ctx context.Context, userID domain.UserID, grantID domain.GrantID) (bool, error)
	// ReconcileGivenCounts raises given_count of awards whose counter is behind their grant rows
	ReconcileGivenCounts(ctx context.Context) ([]GivenCountCorrection, error)
}

// Catalog defines read access to award definitions
type Catalog interface {
	// GetAward retrieves an award by id
	GetAward(ctx context.Context, awardID domain.AwardID) (*domain.Award, error)
	// ListAwards lists every award ordered by id
	ListAwards(ctx context.Context) ([]domain.Award, error)
}

// Directory defines the user directory lookups the ledger and notifier depend on
type Directory interface {
	// ResolveUserID resolves a user name. Returns domain.ErrNotFound for unknown names.
	ResolveUserID(ctx context.Context, name string) (domain.UserID, error)
	// DisplayName returns the user's current name
	DisplayName(ctx context.Context, userID domain.UserID) (string, error)
	// GetUser retrieves the full directory entry
	GetUser(ctx context.Context, userID domain.UserID) (*domain.User, error)
}
