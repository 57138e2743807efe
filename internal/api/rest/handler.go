package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/api/rest/dto"
	"github.com/feral-file/ff-awards/internal/award"
	"github.com/feral-file/ff-awards/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GrantAward grants an award to a user
	// POST /api/v1/users/:user_id/awards
	GrantAward(c *gin.Context)

	// ListUserAwards lists a user's active awards newest first
	// GET /api/v1/users/:user_id/awards?limit=<limit>&page=<page>
	ListUserAwards(c *gin.Context)

	// GetUnseenCount returns the number of awards the user has not acknowledged
	// GET /api/v1/users/:user_id/awards/unseen
	GetUnseenCount(c *gin.Context)

	// AcknowledgeSeen lowers the user's unseen award count
	// POST /api/v1/users/:user_id/awards/seen
	AcknowledgeSeen(c *gin.Context)

	// CountAwardsByUserName counts every award held by the named user
	// GET /api/v1/users/by-name/:user_name/awards/count
	CountAwardsByUserName(c *gin.Context)

	// GetAward retrieves a grant
	// GET /api/v1/awards/:grant_id
	GetAward(c *gin.Context)

	// VerifyOwnership reports whether a grant belongs to a user
	// GET /api/v1/awards/:grant_id/owner?user_id=<user_id>
	VerifyOwnership(c *gin.Context)

	// RevokeAward revokes a grant
	// POST /api/v1/awards/:grant_id/revoke
	RevokeAward(c *gin.Context)

	// DeleteAward hard-deletes a grant
	// DELETE /api/v1/awards/:grant_id
	DeleteAward(c *gin.Context)

	// ListCatalog lists every award definition
	// GET /api/v1/catalog
	ListCatalog(c *gin.Context)

	// GetCatalogAward retrieves an award definition
	// GET /api/v1/catalog/:award_id
	GetCatalogAward(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service award.Service
}

// NewHandler creates a new REST API handler over the award service
func NewHandler(service award.Service) Handler {
	return &handler{
		service: service,
	}
}

func parseUserIDParam(c *gin.Context) (domain.UserID, bool) {
	userID, err := domain.ParseUserID(c.Param("user_id"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID", err.Error())
		return 0, false
	}
	return userID, true
}

func parseGrantIDParam(c *gin.Context) (domain.GrantID, bool) {
	grantID, err := domain.ParseGrantID(c.Param("grant_id"))
	if err != nil {
		respondBadRequest(c, "Invalid grant ID", err.Error())
		return 0, false
	}
	return grantID, true
}

// GrantAward grants an award to a user
func (h *handler) GrantAward(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var req dto.GrantAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.GrantAward(c.Request.Context(), userID, domain.AwardID(req.AwardID), req.Notify)
	if err != nil {
		respondDomainError(c, err, "User or award not found",
			zap.Int64("user_id", int64(userID)),
			zap.Int64("award_id", req.AwardID))
		return
	}

	status := http.StatusOK
	if result.Granted {
		status = http.StatusCreated
	}
	c.JSON(status, dto.MapGrantResult(result))
}

// ListUserAwards lists a user's active awards
func (h *handler) ListUserAwards(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	params, err := ParseListAwardsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	grants, err := h.service.ListAwardsForUser(c.Request.Context(), userID, params.Limit, params.Page)
	if err != nil {
		respondDomainError(c, err, "User not found", zap.Int64("user_id", int64(userID)))
		return
	}

	c.JSON(http.StatusOK, dto.ListGrantsResponse{
		Grants: dto.MapGrants(grants),
		Limit:  params.Limit,
		Page:   params.Page,
	})
}

// GetUnseenCount returns the user's unseen award count
func (h *handler) GetUnseenCount(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	count, err := h.service.GetUnseenCount(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, "User not found", zap.Int64("user_id", int64(userID)))
		return
	}

	c.JSON(http.StatusOK, dto.UnseenCountResponse{
		UserID:      int64(userID),
		UnseenCount: count,
	})
}

// AcknowledgeSeen lowers the user's unseen award count
func (h *handler) AcknowledgeSeen(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	if err := h.service.AcknowledgeSeen(c.Request.Context(), userID); err != nil {
		respondDomainError(c, err, "User not found", zap.Int64("user_id", int64(userID)))
		return
	}

	c.Status(http.StatusNoContent)
}

// CountAwardsByUserName counts every award held by the named user
func (h *handler) CountAwardsByUserName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("user_name"))
	if name == "" {
		respondBadRequest(c, "User name is required")
		return
	}

	count, err := h.service.CountAwardsByUserName(c.Request.Context(), name)
	if err != nil {
		respondDomainError(c, err, "User not found", zap.String("user_name", name))
		return
	}

	c.JSON(http.StatusOK, dto.AwardCountResponse{
		UserName: name,
		Count:    count,
	})
}

// GetAward retrieves a grant
func (h *handler) GetAward(c *gin.Context) {
	grantID, ok := parseGrantIDParam(c)
	if !ok {
		return
	}

	grant, err := h.service.GetAward(c.Request.Context(), grantID)
	if err != nil {
		respondDomainError(c, err, "Award grant not found", zap.Int64("grant_id", int64(grantID)))
		return
	}

	c.JSON(http.StatusOK, dto.MapGrant(*grant))
}

// VerifyOwnership reports whether a grant belongs to a user
func (h *handler) VerifyOwnership(c *gin.Context) {
	grantID, ok := parseGrantIDParam(c)
	if !ok {
		return
	}

	var params OwnershipQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	userID, err := domain.ParseUserID(params.UserID)
	if err != nil {
		respondBadRequest(c, "Invalid user ID", err.Error())
		return
	}

	owned, err := h.service.VerifyOwnership(c.Request.Context(), userID, grantID)
	if err != nil {
		respondDomainError(c, err, "Award grant not found", zap.Int64("grant_id", int64(grantID)))
		return
	}

	c.JSON(http.StatusOK, dto.OwnershipResponse{
		GrantID: int64(grantID),
		UserID:  int64(userID),
		Owned:   owned,
	})
}

// RevokeAward revokes a grant
func (h *handler) RevokeAward(c *gin.Context) {
	grantID, ok := parseGrantIDParam(c)
	if !ok {
		return
	}

	if err := h.service.RevokeAward(c.Request.Context(), grantID); err != nil {
		respondDomainError(c, err, "Award grant not found", zap.Int64("grant_id", int64(grantID)))
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAward hard-deletes a grant
func (h *handler) DeleteAward(c *gin.Context) {
	grantID, ok := parseGrantIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAward(c.Request.Context(), grantID); err != nil {
		respondDomainError(c, err, "Award grant not found", zap.Int64("grant_id", int64(grantID)))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCatalog lists every award definition
func (h *handler) ListCatalog(c *gin.Context) {
	awards, err := h.service.ListCatalog(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Catalog not found")
		return
	}

	c.JSON(http.StatusOK, dto.ListAwardsResponse{Awards: dto.MapAwards(awards)})
}

// GetCatalogAward retrieves an award definition
func (h *handler) GetCatalogAward(c *gin.Context) {
	awardID, err := domain.ParseAwardID(c.Param("award_id"))
	if err != nil {
		respondBadRequest(c, "Invalid award ID", err.Error())
		return
	}

	a, err := h.service.GetCatalogAward(c.Request.Context(), awardID)
	if err != nil {
		respondDomainError(c, err, "Award not found", zap.Int64("award_id", int64(awardID)))
		return
	}

	c.JSON(http.StatusOK, dto.MapAward(*a))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-awards",
	})
}
