package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// GstRate applies to every platform fee invoice.
const GstRate = 0.18

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	Id               uuid.UUID         `json:"id"`
	OrganizationId   uuid.UUID         `json:"organizationId"`
	CampaignId       *uuid.UUID        `json:"campaignId,omitempty"`
	Number           string            `json:"number"`
	Status           InvoiceStatus     `json:"status"`
	LineItems        []InvoiceLineItem `json:"lineItems"`
	Subtotal         float64           `json:"subtotal"`
	TaxRate          float64           `json:"taxRate"`
	TaxAmount        float64           `json:"taxAmount"`
	Total            float64           `json:"total"`
	Currency         string            `json:"currency"`
	IssuedAt         *time.Time        `json:"issuedAt,omitempty"`
	DueDate          time.Time         `json:"dueDate"`
	PaidAt           *time.Time        `json:"paidAt,omitempty"`
	PaymentReference string            `json:"paymentReference"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Recalculate derives subtotal, tax and total from the line items.
func (i *Invoice) Recalculate() {
	subtotal := 0.0
	for idx := range i.LineItems {
		item := &i.LineItems[idx]
		item.Amount = RoundAmount(float64(item.Quantity) * item.UnitPrice)
		subtotal += item.Amount
	}
	i.Subtotal = RoundAmount(subtotal)
	i.TaxAmount = RoundAmount(i.Subtotal * i.TaxRate)
	i.Total = RoundAmount(i.Subtotal + i.TaxAmount)
}

func (i *Invoice) IsPayable() bool {
	return i.Status == InvoiceStatusIssued || i.Status == InvoiceStatusOverdue
}
