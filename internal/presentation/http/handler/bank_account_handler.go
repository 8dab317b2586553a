package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lmf-services/backoffice-api/internal/application/service"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/dto/request"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/dto/response"
)

// BankAccountHandler handles bank account HTTP requests
type BankAccountHandler struct {
	accountService *service.BankAccountService
}

// NewBankAccountHandler creates a new bank account handler
func NewBankAccountHandler(accountService *service.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{accountService: accountService}
}

// CreateBankAccount handles bank account creation
// @Summary Create Bank Account
// @Tags bank-accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.BankAccountRequest true "Bank account data"
// @Success 201 {object} response.APIResponse
// @Router /comptes-bancaires [post]
func (h *BankAccountHandler) CreateBankAccount(c *gin.Context) {
	var req request.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.CreateBankAccount(c.Request.Context(), bankAccountInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bank account created successfully", gin.H{"account": account})
}

// GetBankAccount handles fetching a single bank account
// @Summary Get Bank Account
// @Tags bank-accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {object} response.APIResponse
// @Router /comptes-bancaires/{id} [get]
func (h *BankAccountHandler) GetBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	account, err := h.accountService.GetBankAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank account retrieved successfully", gin.H{"account": account})
}

// ListBankAccounts handles listing all bank accounts
// @Summary List Bank Accounts
// @Tags bank-accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /comptes-bancaires [get]
func (h *BankAccountHandler) ListBankAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank accounts retrieved successfully", gin.H{"accounts": accounts})
}

// UpdateBankAccount handles bank account updates
// @Summary Update Bank Account
// @Tags bank-accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bank account ID"
// @Param request body request.BankAccountRequest true "Bank account data"
// @Success 200 {object} response.APIResponse
// @Router /comptes-bancaires/{id} [put]
func (h *BankAccountHandler) UpdateBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	var req request.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.UpdateBankAccount(c.Request.Context(), id, bankAccountInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank account updated successfully", gin.H{"account": account})
}

// ActivateBankAccount marks an account as the one used for invoicing
// @Summary Activate Bank Account
// @Tags bank-accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {object} response.APIResponse
// @Router /comptes-bancaires/{id}/activate [post]
func (h *BankAccountHandler) ActivateBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	account, err := h.accountService.SetActiveBankAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank account activated successfully", gin.H{"account": account})
}

// DeleteBankAccount handles bank account deletion
// @Summary Delete Bank Account
// @Tags bank-accounts
// @Security BearerAuth
// @Param id path string true "Bank account ID"
// @Success 204
// @Router /comptes-bancaires/{id} [delete]
func (h *BankAccountHandler) DeleteBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bank account ID")
		return
	}

	if err := h.accountService.DeleteBankAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func bankAccountInput(req *request.BankAccountRequest) *service.BankAccountInput {
	return &service.BankAccountInput{
		DisplayName:    req.DisplayName,
		BankName:       req.BankName,
		Currency:       req.Currency,
		IBAN:           req.IBAN,
		CompanyName:    req.CompanyName,
		Address:        req.Address,
		BuildingNumber: req.BuildingNumber,
		Zip:            req.Zip,
		City:           req.City,
		Country:        req.Country,
	}
}
