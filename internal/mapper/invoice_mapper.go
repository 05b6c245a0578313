package mapper

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"

	"gorm.io/datatypes"
)

type InvoiceMapper struct{}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{}
}

func (m *InvoiceMapper) ToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	items := make([]entity.InvoiceLineItem, len(i.LineItems))
	for idx, li := range i.LineItems {
		items[idx] = entity.InvoiceLineItem(li)
	}
	return &entity.Invoice{
		Id:               i.Id,
		OrganizationId:   i.OrganizationId,
		CampaignId:       i.CampaignId,
		Number:           i.Number,
		Status:           entity.InvoiceStatus(i.Status),
		LineItems:        items,
		Subtotal:         i.Subtotal,
		TaxRate:          i.TaxRate,
		TaxAmount:        i.TaxAmount,
		Total:            i.Total,
		Currency:         i.Currency,
		IssuedAt:         i.IssuedAt,
		DueDate:          i.DueDate,
		PaidAt:           i.PaidAt,
		PaymentReference: i.PaymentReference,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func (m *InvoiceMapper) ToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}
	items := make([]model.InvoiceLineItem, len(i.LineItems))
	for idx, li := range i.LineItems {
		items[idx] = model.InvoiceLineItem(li)
	}
	return &model.Invoice{
		Id:               i.Id,
		OrganizationId:   i.OrganizationId,
		CampaignId:       i.CampaignId,
		Number:           i.Number,
		Status:           string(i.Status),
		LineItems:        datatypes.JSONSlice[model.InvoiceLineItem](items),
		Subtotal:         i.Subtotal,
		TaxRate:          i.TaxRate,
		TaxAmount:        i.TaxAmount,
		Total:            i.Total,
		Currency:         i.Currency,
		IssuedAt:         i.IssuedAt,
		DueDate:          i.DueDate,
		PaidAt:           i.PaidAt,
		PaymentReference: i.PaymentReference,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func (m *InvoiceMapper) ToEntities(invoices []*model.Invoice) []*entity.Invoice {
	entities := make([]*entity.Invoice, len(invoices))
	for i, inv := range invoices {
		entities[i] = m.ToEntity(inv)
	}
	return entities
}
