package request

// SiteRequest represents a create or update site request
type SiteRequest struct {
	ClientID  string `json:"client_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
	Hours     string `json:"hours"`
	Headcount int    `json:"headcount" binding:"omitempty,min=0"`
	Status    string `json:"status" binding:"required"`
	Address   string `json:"address"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
}

// ListSitesRequest represents the query parameters for listing sites
type ListSitesRequest struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Search   string `form:"search"`
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
}
