package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/store/schema"
)

type catalog struct {
	db *gorm.DB
}

// NewCatalog creates a read-only award catalog over the system_gifts table
func NewCatalog(db *gorm.DB) Catalog {
	return &catalog{db: db}
}

// GetAward retrieves an award by id
func (c *catalog) GetAward(ctx context.Context, awardID domain.AwardID) (*domain.Award, error) {
	var award schema.Award
	err := c.db.WithContext(ctx).Where("id = ?", int64(awardID)).Take(&award).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("award %d: %w", awardID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get award: %w", translateError(err))
	}

	a := mapAward(award)
	return &a, nil
}

// ListAwards lists every award ordered by id
func (c *catalog) ListAwards(ctx context.Context) ([]domain.Award, error) {
	var awards []schema.Award
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&awards).Error; err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", translateError(err))
	}

	result := make([]domain.Award, len(awards))
	for i, award := range awards {
		result[i] = mapAward(award)
	}
	return result, nil
}

func mapAward(a schema.Award) domain.Award {
	return domain.Award{
		ID:          domain.AwardID(a.ID),
		Name:        a.Name,
		Description: a.Description,
		GivenCount:  a.GivenCount,
	}
}
