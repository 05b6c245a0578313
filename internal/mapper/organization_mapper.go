package mapper

import (
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/model"

	"gorm.io/datatypes"
)

type OrganizationMapper struct{}

func NewOrganizationMapper() *OrganizationMapper {
	return &OrganizationMapper{}
}

func (m *OrganizationMapper) ToEntity(o *model.Organization) *entity.Organization {
	if o == nil {
		return nil
	}
	var address *entity.Address
	if o.BillingAddress != nil {
		a := o.BillingAddress.Data()
		address = &entity.Address{
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}
	return &entity.Organization{
		Id:               o.Id,
		Name:             o.Name,
		LegalName:        o.LegalName,
		Website:          o.Website,
		Industry:         o.Industry,
		ContactEmail:     o.ContactEmail,
		ContactPhone:     o.ContactPhone,
		Pan:              o.Pan,
		PanVerified:      o.PanVerified,
		PanName:          o.PanName,
		Gstin:            o.Gstin,
		GstVerified:      o.GstVerified,
		GstLegalName:     o.GstLegalName,
		GstState:         o.GstState,
		BillingAddress:   address,
		OnboardingStatus: entity.OnboardingStatus(o.OnboardingStatus),
		OnboardingStep:   o.OnboardingStep,
		OnboardedAt:      o.OnboardedAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func (m *OrganizationMapper) ToModel(o *entity.Organization) *model.Organization {
	if o == nil {
		return nil
	}
	var address *datatypes.JSONType[model.BillingAddress]
	if o.BillingAddress != nil {
		a := datatypes.NewJSONType(model.BillingAddress{
			Line1:      o.BillingAddress.Line1,
			Line2:      o.BillingAddress.Line2,
			City:       o.BillingAddress.City,
			State:      o.BillingAddress.State,
			PostalCode: o.BillingAddress.PostalCode,
			Country:    o.BillingAddress.Country,
		})
		address = &a
	}
	return &model.Organization{
		Id:               o.Id,
		Name:             o.Name,
		LegalName:        o.LegalName,
		Website:          o.Website,
		Industry:         o.Industry,
		ContactEmail:     o.ContactEmail,
		ContactPhone:     o.ContactPhone,
		Pan:              o.Pan,
		PanVerified:      o.PanVerified,
		PanName:          o.PanName,
		Gstin:            o.Gstin,
		GstVerified:      o.GstVerified,
		GstLegalName:     o.GstLegalName,
		GstState:         o.GstState,
		BillingAddress:   address,
		OnboardingStatus: string(o.OnboardingStatus),
		OnboardingStep:   o.OnboardingStep,
		OnboardedAt:      o.OnboardedAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
