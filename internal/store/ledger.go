package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/store/schema"
)

const grantDetailColumns = "g.id, g.award_id, g.recipient_id, g.recipient_display_name, g.status, g.granted_at, " +
	"a.name AS award_name, a.description AS award_description, a.given_count AS award_given_count"

type ledger struct {
	db        *gorm.DB
	directory Directory
	clock     adapter.Clock
}

// NewLedger creates a gorm-backed award ledger
func NewLedger(db *gorm.DB, directory Directory, clock adapter.Clock) Ledger {
	return &ledger{db: db, directory: directory, clock: clock}
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// primary returns a session pinned to the primary database.
// Replicas can lag behind, so checks that must observe the latest write go through here.
func (s *ledger) primary(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		db = db.Clauses(dbresolver.Write)
	}
	return db
}

// HasActiveGrant reports whether the recipient holds an active grant of the award
func (s *ledger) HasActiveGrant(ctx context.Context, recipientID domain.UserID, awardID domain.AwardID) (bool, error) {
	var count int64
	err := s.primary(ctx).
		Model(&schema.Grant{}).
		Where("recipient_id = ? AND award_id = ? AND status = ?", int64(recipientID), int64(awardID), schema.GrantStatusActive).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active grant: %w", translateError(err))
	}

	return count > 0, nil
}

// Transaction runs fn against a ledger bound to one database transaction.
// Everything fn writes commits together or not at all.
func (s *ledger) Transaction(ctx context.Context, fn func(tx Ledger) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledger{db: tx, directory: s.directory, clock: s.clock})
	})
}

// Insert records a new active grant.
// The unique index on (recipient_id, award_id) decides concurrent inserts: the losers see no affected row.
func (s *ledger) Insert(ctx context.Context, recipientID domain.UserID, recipientDisplayName string, awardID domain.AwardID) (domain.GrantID, error) {
	grant := schema.Grant{
		AwardID:              int64(awardID),
		RecipientID:          int64(recipientID),
		RecipientDisplayName: recipientDisplayName,
		Status:               schema.GrantStatusActive,
		GrantedAt:            s.clock.Now().UTC(),
	}

	result := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipient_id"}, {Name: "award_id"}},
			DoNothing: true,
		}).
		Create(&grant)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert grant: %w", translateError(result.Error))
	}

	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("award %d already granted to user %d: %w", awardID, recipientID, domain.ErrConflict)
	}

	return domain.GrantID(grant.ID), nil
}

// IncrementGivenCount adds one to the award's lifetime counter in a single UPDATE
func (s *ledger) IncrementGivenCount(ctx context.Context, awardID domain.AwardID) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Award{}).
		Where("id = ?", int64(awardID)).
		Update("given_count", gorm.Expr("given_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment given count: %w", translateError(result.Error))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("award %d: %w", awardID, domain.ErrNotFound)
	}

	return nil
}

// SetStatus flips a grant between active and revoked
func (s *ledger) SetStatus(ctx context.Context, grantID domain.GrantID, status domain.GrantStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown grant status %q", domain.ErrInvalidArgument, status)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Grant{}).
		Where("id = ?", int64(grantID)).
		Update("status", schema.GrantStatus(status))
	if result.Error != nil {
		return fmt.Errorf("failed to update grant status: %w", translateError(result.Error))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("grant %d: %w", grantID, domain.ErrNotFound)
	}

	return nil
}

// Delete hard-deletes a grant. A missing grant is not an error.
func (s *ledger) Delete(ctx context.Context, grantID domain.GrantID) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", int64(grantID)).
		Delete(&schema.Grant{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a grant joined with its award
func (s *ledger) GetByID(ctx context.Context, grantID domain.GrantID) (*domain.GrantDetail, error) {
	var row schema.GrantWithAward
	err := s.primary(ctx).
		Table("user_system_gifts AS g").
		Select(grantDetailColumns).
		Joins("INNER JOIN system_gifts a ON a.id = g.award_id").
		Where("g.id = ?", int64(grantID)).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("grant %d: %w", grantID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get grant: %w", translateError(err))
	}

	detail := mapGrantDetail(row)
	return &detail, nil
}

// CountActiveGrants counts the recipient's active grants
func (s *ledger) CountActiveGrants(ctx context.Context, recipientID domain.UserID) (int, error) {
	var count int64
	err := s.primary(ctx).
		Model(&schema.Grant{}).
		Where("recipient_id = ? AND status = ?", int64(recipientID), schema.GrantStatusActive).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active grants: %w", translateError(err))
	}

	return int(count), nil
}

// ListByRecipient lists the recipient's grants ordered by grant id descending
func (s *ledger) ListByRecipient(ctx context.Context, recipientID domain.UserID, filter ListFilter) ([]domain.GrantDetail, error) {
	if filter.Limit < 0 || filter.Page < 0 {
		return nil, fmt.Errorf("%w: limit and page must not be negative", domain.ErrInvalidArgument)
	}

	query := s.db.WithContext(ctx).
		Table("user_system_gifts AS g").
		Select(grantDetailColumns).
		Joins("INNER JOIN system_gifts a ON a.id = g.award_id").
		Where("g.recipient_id = ?", int64(recipientID))

	if filter.Status != nil {
		query = query.Where("g.status = ?", schema.GrantStatus(*filter.Status))
	}

	query = query.Order("g.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset())
	}

	var rows []schema.GrantWithAward
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", translateError(err))
	}

	grants := make([]domain.GrantDetail, len(rows))
	for i, row := range rows {
		grants[i] = mapGrantDetail(row)
	}

	return grants, nil
}

// CountGrantsByRecipientName counts every grant of the named user. Unknown names count zero.
func (s *ledger) CountGrantsByRecipientName(ctx context.Context, name string) (int, error) {
	userID, err := s.directory.ResolveUserID(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to resolve user %q: %w", name, err)
	}

	var count int64
	err = s.db.WithContext(ctx).
		Model(&schema.Grant{}).
		Where("recipient_id = ?", int64(userID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count grants: %w", translateError(err))
	}

	return int(count), nil
}

// OwnsGrant reports whether the grant's recipient is the given user
func (s *ledger) OwnsGrant(ctx context.Context, userID domain.UserID, grantID domain.GrantID) (bool, error) {
	var grant schema.Grant
	err := s.primary(ctx).
		Select("recipient_id").
		Where("id = ?", int64(grantID)).
		Take(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check grant ownership: %w", translateError(err))
	}

	return grant.RecipientID == int64(userID), nil
}

// ReconcileGivenCounts raises the given_count of every award whose counter fell behind its grant rows.
// Grants inserted outside a Transaction together with their IncrementGivenCount can leave such a gap.
// Counters above the row count are left alone since deleted grants still count as given.
func (s *ledger) ReconcileGivenCounts(ctx context.Context) ([]GivenCountCorrection, error) {
	type behind struct {
		ID         int64
		GivenCount int64
		GrantCount int64
	}

	var rows []behind
	err := s.primary(ctx).
		Table("system_gifts AS a").
		Select("a.id, a.given_count, COUNT(g.id) AS grant_count").
		Joins("LEFT JOIN user_system_gifts g ON g.award_id = a.id").
		Group("a.id, a.given_count").
		Having("COUNT(g.id) > a.given_count").
		Order("a.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find drifted given counts: %w", translateError(err))
	}

	var corrections []GivenCountCorrection
	for _, row := range rows {
		// Compare-and-set so a concurrent increment is never overwritten
		result := s.db.WithContext(ctx).
			Model(&schema.Award{}).
			Where("id = ? AND given_count = ?", row.ID, row.GivenCount).
			Update("given_count", row.GrantCount)
		if result.Error != nil {
			return corrections, fmt.Errorf("failed to correct given count of award %d: %w", row.ID, translateError(result.Error))
		}
		if result.RowsAffected == 0 {
			continue
		}

		corrections = append(corrections, GivenCountCorrection{
			AwardID:    domain.AwardID(row.ID),
			Previous:   row.GivenCount,
			Corrected:  row.GrantCount,
			GrantCount: row.GrantCount,
		})
	}

	return corrections, nil
}

func mapGrantDetail(row schema.GrantWithAward) domain.GrantDetail {
	return domain.GrantDetail{
		Grant: domain.Grant{
			ID:                   domain.GrantID(row.ID),
			AwardID:              domain.AwardID(row.AwardID),
			RecipientID:          domain.UserID(row.RecipientID),
			RecipientDisplayName: row.RecipientDisplayName,
			Status:               domain.GrantStatus(row.Status),
			GrantedAt:            row.GrantedAt,
		},
		AwardName:        row.AwardName,
		AwardDescription: row.AwardDescription,
		AwardGivenCount:  row.AwardGivenCount,
	}
}
