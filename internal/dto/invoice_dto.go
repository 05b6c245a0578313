package dto

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceLineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

type InvoiceResponse struct {
	Id               uuid.UUID                 `json:"id"`
	CampaignId       *uuid.UUID                `json:"campaignId,omitempty"`
	Number           string                    `json:"number"`
	Status           string                    `json:"status"`
	LineItems        []InvoiceLineItemResponse `json:"lineItems"`
	Subtotal         float64                   `json:"subtotal"`
	TaxRate          float64                   `json:"taxRate"`
	TaxAmount        float64                   `json:"taxAmount"`
	Total            float64                   `json:"total"`
	Currency         string                    `json:"currency"`
	IssuedAt         *time.Time                `json:"issuedAt,omitempty"`
	DueDate          time.Time                 `json:"dueDate"`
	PaidAt           *time.Time                `json:"paidAt,omitempty"`
	PaymentReference string                    `json:"paymentReference,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

type InvoiceListQuery struct {
	Status string `query:"status"`
	From   string `query:"from"`
	To     string `query:"to"`
}
