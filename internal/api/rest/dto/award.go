package dto

import (
	"time"

	"github.com/feral-file/ff-awards/internal/domain"
)

// GrantAwardRequest is the body of POST /users/:user_id/awards
type GrantAwardRequest struct {
	AwardID int64 `json:"award_id" binding:"required,gt=0"`
	Notify  bool  `json:"notify"`
}

// GrantAwardResponse reports the outcome of a grant attempt
type GrantAwardResponse struct {
	GrantID *int64 `json:"grant_id,omitempty"`
	Granted bool   `json:"granted"`
}

// AwardResponse is a catalog award
type AwardResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GivenCount  int64  `json:"given_count"`
}

// GrantResponse is a grant joined with its award
type GrantResponse struct {
	ID                   int64         `json:"id"`
	RecipientID          int64         `json:"recipient_id"`
	RecipientDisplayName string        `json:"recipient_display_name"`
	Status               string        `json:"status"`
	GrantedAt            time.Time     `json:"granted_at"`
	Award                AwardResponse `json:"award"`
}

// ListGrantsResponse is a page of a recipient's grants
type ListGrantsResponse struct {
	Grants []GrantResponse `json:"grants"`
	Limit  int             `json:"limit"`
	Page   int             `json:"page"`
}

// ListAwardsResponse is the award catalog
type ListAwardsResponse struct {
	Awards []AwardResponse `json:"awards"`
}

// UnseenCountResponse is a recipient's unseen award count
type UnseenCountResponse struct {
	UserID      int64 `json:"user_id"`
	UnseenCount int   `json:"unseen_count"`
}

// AwardCountResponse is the number of awards a named user holds
type AwardCountResponse struct {
	UserName string `json:"user_name"`
	Count    int    `json:"count"`
}

// OwnershipResponse reports whether a grant belongs to a user
type OwnershipResponse struct {
	GrantID int64 `json:"grant_id"`
	UserID  int64 `json:"user_id"`
	Owned   bool  `json:"owned"`
}

// MapGrantResult converts a grant result
func MapGrantResult(result domain.GrantResult) GrantAwardResponse {
	resp := GrantAwardResponse{Granted: result.Granted}
	if result.Granted {
		id := int64(result.GrantID)
		resp.GrantID = &id
	}
	return resp
}

// MapAward converts a catalog award
func MapAward(award domain.Award) AwardResponse {
	return AwardResponse{
		ID:          int64(award.ID),
		Name:        award.Name,
		Description: award.Description,
		GivenCount:  award.GivenCount,
	}
}

// MapAwards converts the catalog
func MapAwards(awards []domain.Award) []AwardResponse {
	out := make([]AwardResponse, 0, len(awards))
	for _, a := range awards {
		out = append(out, MapAward(a))
	}
	return out
}

// MapGrant converts a grant detail
func MapGrant(detail domain.GrantDetail) GrantResponse {
	return GrantResponse{
		ID:                   int64(detail.ID),
		RecipientID:          int64(detail.RecipientID),
		RecipientDisplayName: detail.RecipientDisplayName,
		Status:               string(detail.Status),
		GrantedAt:            detail.GrantedAt,
		Award: AwardResponse{
			ID:          int64(detail.AwardID),
			Name:        detail.AwardName,
			Description: detail.AwardDescription,
			GivenCount:  detail.AwardGivenCount,
		},
	}
}

// MapGrants converts a page of grant details
func MapGrants(details []domain.GrantDetail) []GrantResponse {
	out := make([]GrantResponse, 0, len(details))
	for _, d := range details {
		out = append(out, MapGrant(d))
	}
	return out
}
