package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lmf-services/backoffice-api/internal/application/service"
	"github.com/lmf-services/backoffice-api/internal/domain/enum"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/dto/request"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/dto/response"
	"github.com/lmf-services/backoffice-api/pkg/pagination"
)

// SiteHandler handles work-site HTTP requests
type SiteHandler struct {
	siteService *service.SiteService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteService *service.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// CreateSite handles site creation
// @Summary Create Site
// @Tags sites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SiteRequest true "Site data"
// @Success 201 {object} response.APIResponse
// @Router /sites [post]
func (h *SiteHandler) CreateSite(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := siteInput(&req, *userID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	site, err := h.siteService.CreateSite(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Site created successfully", gin.H{"site": site})
}

// GetSite handles fetching a single site with its client
// @Summary Get Site
// @Tags sites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} response.APIResponse
// @Router /sites/{id} [get]
func (h *SiteHandler) GetSite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid site ID")
		return
	}

	site, err := h.siteService.GetSite(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Site retrieved successfully", gin.H{"site": site})
}

// ListSites handles listing sites with filters
// @Summary List Sites
// @Tags sites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /sites [get]
func (h *SiteHandler) ListSites(c *gin.Context) {
	var req request.ListSitesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	input := &service.ListSitesInput{
		Pagination: params,
		Search:     req.Search,
	}
	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		input.ClientID = &clientID
	}
	if req.Status != "" {
		status := enum.SiteStatus(req.Status)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid site status")
			return
		}
		input.Status = &status
	}

	result, err := h.siteService.ListSites(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sites retrieved successfully", result)
}

// UpdateSite handles site updates
// @Summary Update Site
// @Tags sites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Site ID"
// @Param request body request.SiteRequest true "Site data"
// @Success 200 {object} response.APIResponse
// @Router /sites/{id} [put]
func (h *SiteHandler) UpdateSite(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid site ID")
		return
	}

	var req request.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := siteInput(&req, *userID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	site, err := h.siteService.UpdateSite(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Site updated successfully", gin.H{"site": site})
}

// DeleteSite handles site deletion
// @Summary Delete Site
// @Tags sites
// @Security BearerAuth
// @Param id path string true "Site ID"
// @Success 204
// @Router /sites/{id} [delete]
func (h *SiteHandler) DeleteSite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid site ID")
		return
	}

	if err := h.siteService.DeleteSite(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func siteInput(req *request.SiteRequest, userID uuid.UUID) (*service.SiteInput, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, err
	}
	return &service.SiteInput{
		ClientID:  clientID,
		Name:      req.Name,
		Hours:     req.Hours,
		Headcount: req.Headcount,
		Status:    enum.SiteStatus(req.Status),
		Address:   req.Address,
		Zip:       req.Zip,
		City:      req.City,
		UserID:    userID,
	}, nil
}
