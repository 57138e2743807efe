package award

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/cache"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/store"
)

// Service is the award API exposed to the REST layer and the admin tool
//
//go:generate mockgen -source=service.go -destination=../mocks/service.go -package=mocks -mock_names=Service=MockAwardService
type Service interface {
	// GrantAward grants the award to the recipient, resolving their display name from the directory
	GrantAward(ctx context.Context, recipientID domain.UserID, awardID domain.AwardID, notify bool) (domain.GrantResult, error)
	// RevokeAward revokes a grant
	RevokeAward(ctx context.Context, grantID domain.GrantID) error
	// DeleteAward hard-deletes a grant. Deleting a missing grant succeeds.
	DeleteAward(ctx context.Context, grantID domain.GrantID) error
	// GetAward retrieves a grant with its award
	GetAward(ctx context.Context, grantID domain.GrantID) (*domain.GrantDetail, error)
	// ListAwardsForUser lists the recipient's active grants newest first
	ListAwardsForUser(ctx context.Context, recipientID domain.UserID, limit, page int) ([]domain.GrantDetail, error)
	// GetUnseenCount returns the number of awards the recipient has not acknowledged
	GetUnseenCount(ctx context.Context, recipientID domain.UserID) (int, error)
	// AcknowledgeSeen lowers the recipient's unseen count by one
	AcknowledgeSeen(ctx context.Context, recipientID domain.UserID) error
	// CountAwardsByUserName counts every grant held by the named user
	CountAwardsByUserName(ctx context.Context, name string) (int, error)
	// VerifyOwnership reports whether the grant belongs to the user
	VerifyOwnership(ctx context.Context, userID domain.UserID, grantID domain.GrantID) (bool, error)
	// GetCatalogAward retrieves an award definition
	GetCatalogAward(ctx context.Context, awardID domain.AwardID) (*domain.Award, error)
	// ListCatalog lists every award definition
	ListCatalog(ctx context.Context) ([]domain.Award, error)
}

type service struct {
	coordinator Coordinator
	ledger      store.Ledger
	catalog     store.Catalog
	directory   store.Directory
	unseen      cache.UnseenCounts
}

// NewService creates the award service
func NewService(
	coordinator Coordinator,
	ledger store.Ledger,
	catalog store.Catalog,
	directory store.Directory,
	unseen cache.UnseenCounts,
) Service {
	return &service{
		coordinator: coordinator,
		ledger:      ledger,
		catalog:     catalog,
		directory:   directory,
		unseen:      unseen,
	}
}

func (s *service) GrantAward(ctx context.Context, recipientID domain.UserID, awardID domain.AwardID, notify bool) (domain.GrantResult, error) {
	displayName, err := s.directory.DisplayName(ctx, recipientID)
	if err != nil {
		return domain.GrantResult{}, fmt.Errorf("failed to resolve recipient: %w", err)
	}

	grantID, granted, err := s.coordinator.Grant(ctx, recipientID, displayName, awardID, notify)
	if err != nil {
		return domain.GrantResult{}, err
	}

	return domain.GrantResult{GrantID: grantID, Granted: granted}, nil
}

func (s *service) RevokeAward(ctx context.Context, grantID domain.GrantID) error {
	return s.coordinator.Revoke(ctx, grantID)
}

func (s *service) DeleteAward(ctx context.Context, grantID domain.GrantID) error {
	grant, err := s.ledger.GetByID(ctx, grantID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to get grant: %w", err)
	}

	if err := s.ledger.Delete(ctx, grantID); err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}

	if err := s.unseen.Invalidate(ctx, grant.RecipientID); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate unseen award count",
			zap.Int64("recipient_id", int64(grant.RecipientID)),
			zap.Error(err))
	}

	logger.InfoCtx(ctx, "Award deleted",
		zap.Int64("grant_id", int64(grantID)),
		zap.Int64("recipient_id", int64(grant.RecipientID)))

	return nil
}

func (s *service) GetAward(ctx context.Context, grantID domain.GrantID) (*domain.GrantDetail, error) {
	return s.ledger.GetByID(ctx, grantID)
}

func (s *service) ListAwardsForUser(ctx context.Context, recipientID domain.UserID, limit, page int) ([]domain.GrantDetail, error) {
	active := domain.GrantStatusActive
	return s.ledger.ListByRecipient(ctx, recipientID, store.ListFilter{
		Limit:  limit,
		Page:   page,
		Status: &active,
	})
}

func (s *service) GetUnseenCount(ctx context.Context, recipientID domain.UserID) (int, error) {
	return s.unseen.GetOrCompute(ctx, recipientID)
}

func (s *service) AcknowledgeSeen(ctx context.Context, recipientID domain.UserID) error {
	return s.unseen.Decrement(ctx, recipientID)
}

func (s *service) CountAwardsByUserName(ctx context.Context, name string) (int, error) {
	return s.ledger.CountGrantsByRecipientName(ctx, name)
}

func (s *service) VerifyOwnership(ctx context.Context, userID domain.UserID, grantID domain.GrantID) (bool, error) {
	return s.ledger.OwnsGrant(ctx, userID, grantID)
}

func (s *service) GetCatalogAward(ctx context.Context, awardID domain.AwardID) (*domain.Award, error) {
	return s.catalog.GetAward(ctx, awardID)
}

func (s *service) ListCatalog(ctx context.Context) ([]domain.Award, error) {
	return s.catalog.ListAwards(ctx)
}
