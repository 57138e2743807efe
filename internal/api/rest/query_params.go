package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-awards/internal/domain"
)

// ListAwardsQueryParams holds query parameters for GET /users/:user_id/awards
type ListAwardsQueryParams struct {
	Limit int `form:"limit,default=20"`
	Page  int `form:"page,default=1"`
}

// ParseListAwardsQuery parses query parameters for GET /users/:user_id/awards
func ParseListAwardsQuery(c *gin.Context) (*ListAwardsQueryParams, error) {
	var params ListAwardsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if params.Page <= 0 {
		return nil, fmt.Errorf("page must be positive")
	}

	// Cap limit
	if params.Limit > domain.MAX_AWARDS_LIMIT {
		params.Limit = domain.MAX_AWARDS_LIMIT
	}

	return &params, nil
}

// OwnershipQueryParams holds query parameters for GET /awards/:grant_id/owner
type OwnershipQueryParams struct {
	UserID string `form:"user_id" binding:"required"`
}
