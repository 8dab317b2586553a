package request

// BankAccountRequest represents a create or update bank account request
type BankAccountRequest struct {
	DisplayName    string `json:"display_name" binding:"required"`
	BankName       string `json:"bank_name"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
	IBAN           string `json:"iban" binding:"required"`
	CompanyName    string `json:"company_name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	BuildingNumber string `json:"building_number"`
	Zip            string `json:"zip" binding:"required"`
	City           string `json:"city" binding:"required"`
	Country        string `json:"country" binding:"omitempty,len=2"`
}
