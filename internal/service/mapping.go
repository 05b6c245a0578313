package service

import (
	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/lifecycle"
)

func toCampaignResponse(c *entity.Campaign) dto.CampaignResponse {
	platforms := c.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	deliverables := c.Deliverables
	if deliverables == nil {
		deliverables = []string{}
	}
	return dto.CampaignResponse{
		Id:              c.Id,
		OrganizationId:  c.OrganizationId,
		Title:           c.Title,
		Description:     c.Description,
		Type:            string(c.Type),
		Status:          string(c.Status),
		ProductName:     c.ProductName,
		ProductUrl:      c.ProductUrl,
		BannerUrl:       c.BannerUrl,
		Platforms:       platforms,
		Deliverables:    deliverables,
		Budget:          c.Budget,
		Spent:           c.Spent,
		RemainingBudget: c.RemainingBudget(),
		CashbackPercent: c.CashbackPercent,
		MaxEnrollments:  c.MaxEnrollments,
		EnrollmentCount: c.EnrollmentCount,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CancelReason:    c.CancelReason,
		CreatedBy:       c.CreatedBy,
		SubmittedAt:     c.SubmittedAt,
		ApprovedAt:      c.ApprovedAt,
		ActivatedAt:     c.ActivatedAt,
		PausedAt:        c.PausedAt,
		EndedAt:         c.EndedAt,
		CompletedAt:     c.CompletedAt,
		CancelledAt:     c.CancelledAt,
		ArchivedAt:      c.ArchivedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func campaignActionNames(status entity.CampaignStatus) []string {
	actions := lifecycle.AvailableCampaignActions(status)
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

func toEnrollmentResponse(e *entity.Enrollment) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		Id:             e.Id,
		OrganizationId: e.OrganizationId,
		CampaignId:     e.CampaignId,
		ShopperId:      e.ShopperId,
		ShopperName:    e.ShopperName,
		ShopperHandle:  e.ShopperHandle,
		Platform:       e.Platform,
		OrderId:        e.OrderId,
		OrderValue:     e.OrderValue,
		CashbackAmount: e.CashbackAmount,
		Status:         string(e.Status),
		SubmissionUrl:  e.SubmissionUrl,
		SubmittedAt:    e.SubmittedAt,
		ReviewNote:     e.ReviewNote,
		ReviewedBy:     e.ReviewedBy,
		ReviewedAt:     e.ReviewedAt,
		ExpiresAt:      e.ExpiresAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func enrollmentActionNames(status entity.EnrollmentStatus) []string {
	actions := lifecycle.AvailableEnrollmentActions(status)
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

func toWalletResponse(b *entity.WalletBalance) dto.WalletBalanceResponse {
	return dto.WalletBalanceResponse{
		Currency:          b.Currency,
		Available:         b.Available,
		Held:              b.Held,
		PendingWithdrawal: b.PendingWithdrawal,
		TotalDeposited:    b.TotalDeposited,
		TotalSpent:        b.TotalSpent,
		TotalWithdrawn:    b.TotalWithdrawn,
		UpdatedAt:         b.UpdatedAt,
	}
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:            tx.Id,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Status:        string(tx.Status),
		ReferenceType: tx.ReferenceType,
		ReferenceId:   tx.ReferenceId,
		Description:   tx.Description,
		BalanceAfter:  tx.BalanceAfter,
		CreatedAt:     tx.CreatedAt,
	}
}

func toWithdrawalResponse(w *entity.Withdrawal) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		Id:                w.Id,
		Amount:            w.Amount,
		Status:            string(w.Status),
		BankAccountName:   w.BankAccountName,
		BankAccountMasked: w.BankAccountMasked,
		Ifsc:              w.Ifsc,
		Note:              w.Note,
		RequestedBy:       w.RequestedBy,
		ProcessedAt:       w.ProcessedAt,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func toInvoiceResponse(i *entity.Invoice) dto.InvoiceResponse {
	items := make([]dto.InvoiceLineItemResponse, len(i.LineItems))
	for idx, item := range i.LineItems {
		items[idx] = dto.InvoiceLineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return dto.InvoiceResponse{
		Id:               i.Id,
		CampaignId:       i.CampaignId,
		Number:           i.Number,
		Status:           string(i.Status),
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
	}
}

func toTeamMemberResponse(u *entity.User) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		Id:          u.Id,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        string(u.Role),
		Status:      string(u.Status),
		InvitedBy:   u.InvitedBy,
		InvitedAt:   u.InvitedAt,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func toOrganizationResponse(o *entity.Organization) dto.OrganizationResponse {
	res := dto.OrganizationResponse{
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
		OnboardingStatus: string(o.OnboardingStatus),
		OnboardingStep:   o.OnboardingStep,
		OnboardedAt:      o.OnboardedAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.BillingAddress != nil {
		res.BillingAddress = &dto.AddressDto{
			Line1:      o.BillingAddress.Line1,
			Line2:      o.BillingAddress.Line2,
			City:       o.BillingAddress.City,
			State:      o.BillingAddress.State,
			PostalCode: o.BillingAddress.PostalCode,
			Country:    o.BillingAddress.Country,
		}
	}
	return res
}
