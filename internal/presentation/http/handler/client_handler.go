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

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient handles client creation
// @Summary Create Client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ClientRequest true "Client data"
// @Success 201 {object} response.APIResponse
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req request.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), clientInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created successfully", gin.H{"client": client})
}

// GetClient handles fetching a single client
// @Summary Get Client
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", gin.H{"client": client})
}

// ListClients handles listing clients with filters
// @Summary List Clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var req request.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	input := &service.ListClientsInput{
		Pagination:  params,
		Search:      req.Search,
		OrderRecent: req.OrderRecent,
	}
	if req.Type != "" {
		clientType := enum.ClientType(req.Type)
		input.Type = &clientType
	}

	result, err := h.clientService.ListClients(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clients retrieved successfully", result)
}

// UpdateClient handles client updates
// @Summary Update Client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body request.ClientRequest true "Client data"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	var req request.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, clientInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", gin.H{"client": client})
}

// DeleteClient handles client deletion, removing its sites as well
// @Summary Delete Client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func clientInput(req *request.ClientRequest) *service.ClientInput {
	return &service.ClientInput{
		Type:        enum.ClientType(req.Type),
		CompanyName: req.CompanyName,
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		Email:       req.Email,
		Address:     req.Address,
		Zip:         req.Zip,
		City:        req.City,
	}
}
