package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/store/schema"
)

type directory struct {
	db *gorm.DB
}

// NewDirectory creates a user directory backed by the users table
func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

// ResolveUserID resolves a user name to its id
func (d *directory) ResolveUserID(ctx context.Context, name string) (domain.UserID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("user name is empty: %w", domain.ErrNotFound)
	}

	var user schema.User
	err := d.db.WithContext(ctx).Select("id").Where("name = ?", name).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to resolve user: %w", translateError(err))
	}

	return domain.UserID(user.ID), nil
}

// DisplayName returns the user's current name
func (d *directory) DisplayName(ctx context.Context, userID domain.UserID) (string, error) {
	user, err := d.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}

// GetUser retrieves a directory entry
func (d *directory) GetUser(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	var user schema.User
	err := d.db.WithContext(ctx).Where("id = ?", int64(userID)).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", translateError(err))
	}

	return &domain.User{
		ID:             domain.UserID(user.ID),
		Name:           user.Name,
		RealName:       user.RealName,
		Email:          user.Email,
		EmailConfirmed: user.EmailConfirmed,
		NotifyAwards:   user.NotifyAwards,
	}, nil
}
