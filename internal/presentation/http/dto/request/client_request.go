package request

// ClientRequest represents a create or update client request
type ClientRequest struct {
	Type        string  `json:"type" binding:"required,oneof=entreprise particulier"`
	CompanyName *string `json:"company_name"`
	LastName    *string `json:"last_name"`
	FirstName   *string `json:"first_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     *string `json:"address"`
	Zip         string  `json:"zip" binding:"required"`
	City        string  `json:"city" binding:"required"`
}

// ListClientsRequest represents the query parameters for listing clients
type ListClientsRequest struct {
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
	Search      string `form:"search"`
	Type        string `form:"type" binding:"omitempty,oneof=entreprise particulier"`
	OrderRecent bool   `form:"order_recent"`
}
