package customers

import "github.com/pbxops/server/pbxops/customers"

// CustomerRequest carries the writable customer fields.
type CustomerRequest struct {
	CompanyName   string `json:"company_name" binding:"required,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"max=50"`
	PBXURL        string `json:"pbx_url" binding:"omitempty,url"`
	Notes         string `json:"notes" binding:"max=2000"`
}

// ListResponse wraps a customer list.
type ListResponse struct {
	Success bool                 `json:"success"`
	Data    []customers.Customer `json:"data"`
}

// ItemResponse wraps a single customer.
type ItemResponse struct {
	Success bool                `json:"success"`
	Data    *customers.Customer `json:"data"`
}

// MessageResponse for delete confirmations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
