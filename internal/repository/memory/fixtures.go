package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"brand-dashboard-be/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded active account.
const DemoPassword = "password123"

var (
	OrgLumenID     = uuid.MustParse("0b7e4c1a-5f3d-4a61-9c2e-1a0000000001")
	OrgTrailheadID = uuid.MustParse("0b7e4c1a-5f3d-4a61-9c2e-1a0000000002")

	UserOwnerID         = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000001")
	UserAdminID         = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000002")
	UserManagerID       = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000003")
	UserViewerID        = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000004")
	UserInvitedID       = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000005")
	UserPlatformAdminID = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000006")
	UserTrailOwnerID    = uuid.MustParse("2c4d6e8f-1a3b-4c5d-8e7f-2b0000000007")

	CampaignDraftID          = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000001")
	CampaignPendingID        = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000002")
	CampaignApprovedID       = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000003")
	CampaignApprovedFutureID = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000004")
	CampaignActiveID         = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000005")
	CampaignPausedID         = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000006")
	CampaignEndedID          = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000007")
	CampaignCompletedID      = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000008")
	CampaignCancelledID      = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c0000000009")
	CampaignArchivedID       = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c000000000a")
	CampaignTrailActiveID    = uuid.MustParse("3d5e7f90-2b4c-4d6e-9f80-3c000000000b")

	EnrollmentEnrolledID         = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000001")
	EnrollmentAwaitingSubID      = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000002")
	EnrollmentReviewID           = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000003")
	EnrollmentReviewSecondID     = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000004")
	EnrollmentReviewThirdID      = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000005")
	EnrollmentApprovedID         = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000006")
	EnrollmentRejectedID         = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000007")
	EnrollmentChangesRequestedID = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000008")
	EnrollmentExpiredID          = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d0000000009")
	EnrollmentPausedReviewID     = uuid.MustParse("4e6f8091-3c5d-4e7f-a091-4d000000000a")

	WithdrawalPendingID   = uuid.MustParse("5f708192-4d6e-4f80-b192-5e0000000001")
	WithdrawalCompletedID = uuid.MustParse("5f708192-4d6e-4f80-b192-5e0000000002")

	DepositPendingTxID = uuid.MustParse("60819203-5e7f-4091-c203-6f0000000001")

	InvoicePaidID        = uuid.MustParse("71920314-6f80-41a2-d314-700000000001")
	InvoiceIssuedID      = uuid.MustParse("71920314-6f80-41a2-d314-700000000002")
	InvoiceOverdueID     = uuid.MustParse("71920314-6f80-41a2-d314-700000000003")
	InvoiceIssuedLapseID = uuid.MustParse("71920314-6f80-41a2-d314-700000000004")
	InvoiceDraftID       = uuid.MustParse("71920314-6f80-41a2-d314-700000000005")

	// DemoInviteToken accepts the seeded invited member.
	DemoInviteToken = "demo-invite-7f3a9c2e5b1d4e8f"
)

// FixtureSet is a consistent demo data set. Wallet balances are derived from the
// transaction ledger so held and available always agree with the enrollments.
type FixtureSet struct {
	Organizations     []*entity.Organization
	Users             []*entity.User
	Campaigns         []*entity.Campaign
	Enrollments       []*entity.Enrollment
	Balances          []*entity.WalletBalance
	Transactions      []*entity.Transaction
	Withdrawals       []*entity.Withdrawal
	Invoices          []*entity.Invoice
	NotificationTypes []*entity.NotificationType
	Notifications     []*entity.Notification
}

var (
	demoHashOnce sync.Once
	demoHash     string
)

func demoPasswordHash() string {
	demoHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("hash demo password: %v", err))
		}
		demoHash = string(hash)
	})
	return demoHash
}

// DefaultNotificationTypes is the registry of event codes the worker renders.
func DefaultNotificationTypes() []*entity.NotificationType {
	return []*entity.NotificationType{
		{Code: "CAMPAIGN_STATUS_CHANGED", DisplayName: "Campaign status updated", Template: "Campaign \"{title}\" moved from {from} to {to}", TargetType: entity.NotificationTargetOrganization, IsActive: true},
		{Code: "ENROLLMENT_REVIEWED", DisplayName: "Enrollment reviewed", Template: "Submission from {shopper_name} was {decision}", TargetType: entity.NotificationTargetOrganization, IsActive: true},
		{Code: "WITHDRAWAL_REQUESTED", DisplayName: "Withdrawal requested", Template: "A withdrawal of {amount} was requested", TargetType: entity.NotificationTargetRole, TargetRole: string(entity.UserRoleOwner), IsActive: true},
		{Code: "INVOICE_PAID", DisplayName: "Invoice paid", Template: "Invoice {number} for {total} has been paid", TargetType: entity.NotificationTargetOrganization, IsActive: true},
		{Code: "TEAM_MEMBER_INVITED", DisplayName: "Team member invited", Template: "{email} was invited as {role}", TargetType: entity.NotificationTargetRole, TargetRole: string(entity.UserRoleAdmin), IsActive: true},
		{Code: "ORGANIZATION_ONBOARDED", DisplayName: "Onboarding complete", Template: "{name} is ready to launch campaigns", TargetType: entity.NotificationTargetOrganization, IsActive: true},
		{Code: "SYSTEM_ANNOUNCEMENT", DisplayName: "Announcement", Template: "{message}", TargetType: entity.NotificationTargetBroadcast, IsActive: true},
	}
}

// DemoFixtures builds the demo data relative to now.
func DemoFixtures(now time.Time) *FixtureSet {
	now = now.UTC().Truncate(time.Second)
	day := 24 * time.Hour
	at := func(d time.Duration) time.Time { return now.Add(d) }
	ptr := func(t time.Time) *time.Time { return &t }
	idPtr := func(id uuid.UUID) *uuid.UUID { return &id }
	hash := demoPasswordHash()
	token := DemoInviteToken

	set := &FixtureSet{NotificationTypes: DefaultNotificationTypes()}

	set.Organizations = []*entity.Organization{
		{
			Id: OrgLumenID, Name: "Lumen Beauty", LegalName: "Lumen Beauty Private Limited",
			Website: "https://lumenbeauty.in", Industry: "Beauty & Personal Care",
			ContactEmail: "hello@lumenbeauty.in", ContactPhone: "+919820012345",
			Pan: "AAGCL4821K", PanVerified: true, PanName: "Lumen Beauty Private Limited",
			Gstin: "27AAGCL4821K1Z5", GstVerified: true, GstLegalName: "Lumen Beauty Private Limited", GstState: "Maharashtra",
			BillingAddress:   &entity.Address{Line1: "4th Floor, Kamala Mills", Line2: "Senapati Bapat Marg", City: "Mumbai", State: "Maharashtra", PostalCode: "400013", Country: "IN"},
			OnboardingStatus: entity.OnboardingStatusCompleted, OnboardingStep: entity.OnboardingStepBilling,
			OnboardedAt: ptr(at(-120 * day)), CreatedAt: at(-130 * day), UpdatedAt: at(-120 * day),
		},
		{
			Id: OrgTrailheadID, Name: "Trailhead Outdoors", LegalName: "Trailhead Outdoors Private Limited",
			Website: "https://trailhead.co.in", Industry: "Sports & Outdoors",
			ContactEmail: "team@trailhead.co.in", ContactPhone: "+918041234567",
			OnboardingStatus: entity.OnboardingStatusInProgress, OnboardingStep: entity.OnboardingStepPan,
			CreatedAt: at(-6 * day), UpdatedAt: at(-5 * day),
		},
	}

	active := func(id, org uuid.UUID, email, name string, role entity.UserRole, joined time.Duration) *entity.User {
		return &entity.User{
			Id: id, OrganizationId: org, Email: email, FullName: name, PasswordHash: &hash,
			Role: role, Status: entity.UserStatusActive, CreatedAt: at(joined), UpdatedAt: at(joined),
		}
	}
	set.Users = []*entity.User{
		active(UserOwnerID, OrgLumenID, "priya@lumenbeauty.in", "Priya Menon", entity.UserRoleOwner, -130*day),
		active(UserAdminID, OrgLumenID, "arjun@lumenbeauty.in", "Arjun Rao", entity.UserRoleAdmin, -100*day),
		active(UserManagerID, OrgLumenID, "kavya@lumenbeauty.in", "Kavya Iyer", entity.UserRoleManager, -60*day),
		active(UserViewerID, OrgLumenID, "rohan@lumenbeauty.in", "Rohan Das", entity.UserRoleViewer, -30*day),
		{
			Id: UserInvitedID, OrganizationId: OrgLumenID, Email: "neha@lumenbeauty.in", FullName: "Neha Kapoor",
			Role: entity.UserRoleManager, Status: entity.UserStatusInvited, InviteToken: &token,
			InvitedBy: idPtr(UserOwnerID), InvitedAt: ptr(at(-2 * day)), CreatedAt: at(-2 * day), UpdatedAt: at(-2 * day),
		},
		active(UserPlatformAdminID, OrgLumenID, "ops@brandhub.in", "Platform Ops", entity.UserRolePlatformAdmin, -200*day),
		active(UserTrailOwnerID, OrgTrailheadID, "vikram@trailhead.co.in", "Vikram Singh", entity.UserRoleOwner, -6*day),
	}

	campaign := func(id uuid.UUID, title, product string, status entity.CampaignStatus, start, end time.Duration, budget, pct float64) *entity.Campaign {
		return &entity.Campaign{
			Id: id, OrganizationId: OrgLumenID, Title: title,
			Description: "Buy " + product + ", post an honest review and earn cashback.",
			Type:        entity.CampaignTypeCashback, Status: status, ProductName: product,
			ProductUrl: "https://lumenbeauty.in/products/" + slug(product),
			Platforms:  []string{"instagram", "youtube"}, Deliverables: []string{"1 reel", "1 story"},
			Budget: budget, CashbackPercent: pct, MaxEnrollments: 200,
			StartDate: at(start), EndDate: at(end), CreatedBy: UserManagerID,
			CreatedAt: at(start - 7*day), UpdatedAt: at(start - 7*day),
		}
	}

	draft := campaign(CampaignDraftID, "Monsoon Hair Care Launch", "Rain Shield Serum", entity.CampaignStatusDraft, 10*day, 40*day, 150000, 15)
	draft.CreatedAt, draft.UpdatedAt = at(-1*day), at(-1*day)

	pending := campaign(CampaignPendingID, "Festive Lip Tint Drop", "Velvet Lip Tint", entity.CampaignStatusPendingApproval, 7*day, 37*day, 90000, 20)
	pending.SubmittedAt = ptr(at(-1 * day))

	approved := campaign(CampaignApprovedID, "Sunscreen Summer Sprint", "SPF 50 Gel Sunscreen", entity.CampaignStatusApproved, -1*time.Hour, 30*day, 120000, 12)
	approved.SubmittedAt, approved.ApprovedAt = ptr(at(-4*day)), ptr(at(-3*day))

	approvedFuture := campaign(CampaignApprovedFutureID, "Serum Pre-launch Teasers", "Niacinamide Serum", entity.CampaignStatusApproved, 5*day, 35*day, 80000, 10)
	approvedFuture.SubmittedAt, approvedFuture.ApprovedAt = ptr(at(-3*day)), ptr(at(-2*day))

	activeC := campaign(CampaignActiveID, "Diwali Glow Kit", "Glow Kit Gift Box", entity.CampaignStatusActive, -10*day, 20*day, 250000, 15)
	activeC.SubmittedAt, activeC.ApprovedAt, activeC.ActivatedAt = ptr(at(-14*day)), ptr(at(-12*day)), ptr(at(-10*day))

	paused := campaign(CampaignPausedID, "Vitamin C Relaunch", "Vitamin C Face Wash", entity.CampaignStatusPaused, -20*day, 10*day, 60000, 10)
	paused.SubmittedAt, paused.ApprovedAt, paused.ActivatedAt, paused.PausedAt = ptr(at(-24*day)), ptr(at(-22*day)), ptr(at(-20*day)), ptr(at(-3*day))

	ended := campaign(CampaignEndedID, "Winter Body Butter", "Shea Body Butter", entity.CampaignStatusEnded, -45*day, -2*day, 100000, 12)
	ended.SubmittedAt, ended.ApprovedAt, ended.ActivatedAt, ended.EndedAt = ptr(at(-50*day)), ptr(at(-48*day)), ptr(at(-45*day)), ptr(at(-2*day))

	completed := campaign(CampaignCompletedID, "New Year Nail Edit", "Nail Lacquer Trio", entity.CampaignStatusCompleted, -90*day, -60*day, 50000, 10)
	completed.Type = entity.CampaignTypeBarter
	completed.SubmittedAt, completed.ApprovedAt, completed.ActivatedAt = ptr(at(-95*day)), ptr(at(-93*day)), ptr(at(-90*day))
	completed.EndedAt, completed.CompletedAt = ptr(at(-60*day)), ptr(at(-55*day))
	completed.Spent = 42000

	cancelled := campaign(CampaignCancelledID, "Kajal Creator Collab", "Smudge-proof Kajal", entity.CampaignStatusCancelled, -15*day, 15*day, 40000, 20)
	cancelled.Type = entity.CampaignTypePaid
	cancelled.SubmittedAt, cancelled.CancelledAt = ptr(at(-18*day)), ptr(at(-16*day))
	cancelled.CancelReason = "Creator partner withdrew"

	archived := campaign(CampaignArchivedID, "Holi Colour Safe Range", "Colour Safe Shampoo", entity.CampaignStatusArchived, -200*day, -170*day, 70000, 10)
	archived.SubmittedAt, archived.ApprovedAt, archived.ActivatedAt = ptr(at(-205*day)), ptr(at(-203*day)), ptr(at(-200*day))
	archived.EndedAt, archived.CompletedAt, archived.ArchivedAt = ptr(at(-170*day)), ptr(at(-165*day)), ptr(at(-150*day))
	archived.Spent = 61000

	trail := campaign(CampaignTrailActiveID, "Monsoon Trek Gear", "Waterproof Trek Jacket", entity.CampaignStatusActive, -2*day, 28*day, 75000, 8)
	trail.OrganizationId, trail.CreatedBy = OrgTrailheadID, UserTrailOwnerID
	trail.SubmittedAt, trail.ApprovedAt, trail.ActivatedAt = ptr(at(-4*day)), ptr(at(-3*day)), ptr(at(-2*day))

	set.Campaigns = []*entity.Campaign{draft, pending, approved, approvedFuture, activeC, paused, ended, completed, cancelled, archived, trail}

	enrollment := func(id uuid.UUID, c *entity.Campaign, shopper, handle string, orderValue float64, status entity.EnrollmentStatus, created time.Duration) *entity.Enrollment {
		return &entity.Enrollment{
			Id: id, OrganizationId: c.OrganizationId, CampaignId: c.Id,
			ShopperId: uuid.NewSHA1(uuid.NameSpaceURL, []byte(handle)), ShopperName: shopper, ShopperHandle: handle,
			Platform: "instagram", OrderId: fmt.Sprintf("LB-%s", id.String()[len(id.String())-6:]),
			OrderValue: orderValue, CashbackAmount: entity.RoundAmount(orderValue * c.CashbackPercent / 100),
			Status: status, CreatedAt: at(created), UpdatedAt: at(created),
		}
	}
	submitted := func(e *entity.Enrollment, d time.Duration) {
		e.SubmissionUrl = "https://instagram.com/reel/" + e.Id.String()[:8]
		e.SubmittedAt = ptr(at(d))
	}
	reviewed := func(e *entity.Enrollment, note string, d time.Duration) {
		e.ReviewNote, e.ReviewedBy, e.ReviewedAt = note, idPtr(UserManagerID), ptr(at(d))
	}

	eEnrolled := enrollment(EnrollmentEnrolledID, activeC, "Ananya Gupta", "@ananya.glows", 1899, entity.EnrollmentStatusEnrolled, -1*day)
	eEnrolled.ExpiresAt = ptr(at(6 * day))

	eAwaitSub := enrollment(EnrollmentAwaitingSubID, activeC, "Meera Nair", "@meeraskincare", 2499, entity.EnrollmentStatusAwaitingSubmission, -8*day)
	eAwaitSub.ExpiresAt = ptr(at(-1 * time.Hour))

	eReview := enrollment(EnrollmentReviewID, activeC, "Ishita Bose", "@ishita.b", 3299, entity.EnrollmentStatusAwaitingReview, -7*day)
	submitted(eReview, -2*day)
	eReview2 := enrollment(EnrollmentReviewSecondID, activeC, "Tanvi Joshi", "@tanvijoshi", 1599, entity.EnrollmentStatusAwaitingReview, -6*day)
	submitted(eReview2, -1*day)
	eReview3 := enrollment(EnrollmentReviewThirdID, activeC, "Aditi Kulkarni", "@aditi.k", 2199, entity.EnrollmentStatusAwaitingReview, -5*day)
	submitted(eReview3, -12*time.Hour)

	eApproved := enrollment(EnrollmentApprovedID, activeC, "Riya Sen", "@riyasen", 4199, entity.EnrollmentStatusApproved, -9*day)
	submitted(eApproved, -6*day)
	reviewed(eApproved, "Great reel, thanks!", -5*day)

	eRejected := enrollment(EnrollmentRejectedID, activeC, "Simran Kaur", "@simran.kaur", 1299, entity.EnrollmentStatusRejected, -9*day)
	submitted(eRejected, -5*day)
	reviewed(eRejected, "Product not visible in the video", -4*day)

	eChanges := enrollment(EnrollmentChangesRequestedID, activeC, "Pooja Reddy", "@poojareddy", 2799, entity.EnrollmentStatusChangesRequested, -8*day)
	submitted(eChanges, -4*day)
	reviewed(eChanges, "Please tag @lumenbeauty in the caption", -3*day)

	eExpired := enrollment(EnrollmentExpiredID, activeC, "Nisha Verma", "@nishav", 999, entity.EnrollmentStatusExpired, -10*day)
	eExpired.ExpiresAt = ptr(at(-3 * day))

	ePaused := enrollment(EnrollmentPausedReviewID, paused, "Kritika Malhotra", "@kritika.m", 899, entity.EnrollmentStatusAwaitingReview, -12*day)
	submitted(ePaused, -4*day)

	set.Enrollments = []*entity.Enrollment{eEnrolled, eAwaitSub, eReview, eReview2, eReview3, eApproved, eRejected, eChanges, eExpired, ePaused}
	for _, c := range set.Campaigns {
		for _, e := range set.Enrollments {
			if e.CampaignId == c.Id {
				c.EnrollmentCount++
				if e.Status == entity.EnrollmentStatusApproved {
					c.Spent = entity.RoundAmount(c.Spent + e.CashbackAmount)
				}
			}
		}
	}

	set.Invoices = demoInvoices(at, ptr)
	set.Withdrawals = []*entity.Withdrawal{
		{
			Id: WithdrawalCompletedID, OrganizationId: OrgLumenID, Amount: 25000, Status: entity.WithdrawalStatusCompleted,
			BankAccountName: "Lumen Beauty Pvt Ltd", BankAccountMasked: "XXXXXXXX4521", Ifsc: "HDFC0000123",
			RequestedBy: UserOwnerID, ProcessedAt: ptr(at(-28 * day)), CreatedAt: at(-30 * day), UpdatedAt: at(-28 * day),
		},
		{
			Id: WithdrawalPendingID, OrganizationId: OrgLumenID, Amount: 15000, Status: entity.WithdrawalStatusPending,
			BankAccountName: "Lumen Beauty Pvt Ltd", BankAccountMasked: "XXXXXXXX4521", Ifsc: "HDFC0000123",
			Note: "Quarter end sweep", RequestedBy: UserOwnerID, CreatedAt: at(-1 * day), UpdatedAt: at(-1 * day),
		},
	}

	set.Transactions, set.Balances = demoLedger(set, at)
	set.Notifications = demoNotifications(set, at)
	return set
}

func demoInvoices(at func(time.Duration) time.Time, ptr func(time.Time) *time.Time) []*entity.Invoice {
	day := 24 * time.Hour
	invoice := func(id uuid.UUID, number string, campaignID uuid.UUID, status entity.InvoiceStatus, fee float64, created, due time.Duration) *entity.Invoice {
		cid := campaignID
		inv := &entity.Invoice{
			Id: id, OrganizationId: OrgLumenID, CampaignId: &cid, Number: number, Status: status,
			LineItems: []entity.InvoiceLineItem{
				{Description: "Platform fee", Quantity: 1, UnitPrice: fee},
				{Description: "Creator management", Quantity: 2, UnitPrice: 1500},
			},
			TaxRate: entity.GstRate, Currency: entity.DefaultCurrency,
			DueDate: at(due), CreatedAt: at(created), UpdatedAt: at(created),
		}
		if status != entity.InvoiceStatusDraft {
			inv.IssuedAt = ptr(at(created))
		}
		inv.Recalculate()
		return inv
	}

	paid := invoice(InvoicePaidID, "INV-2026-0001", CampaignCompletedID, entity.InvoiceStatusPaid, 8000, -50*day, -35*day)
	paid.PaidAt = ptr(at(-40 * day))
	paid.PaymentReference = "INV-" + InvoicePaidID.String()

	return []*entity.Invoice{
		paid,
		invoice(InvoiceIssuedID, "INV-2026-0002", CampaignActiveID, entity.InvoiceStatusIssued, 12000, -5*day, 10*day),
		invoice(InvoiceOverdueID, "INV-2026-0003", CampaignEndedID, entity.InvoiceStatusOverdue, 9500, -40*day, -5*day),
		invoice(InvoiceIssuedLapseID, "INV-2026-0004", CampaignPausedID, entity.InvoiceStatusIssued, 6000, -31*day, -1*day),
		invoice(InvoiceDraftID, "INV-2026-0005", CampaignApprovedID, entity.InvoiceStatusDraft, 7000, -1*day, 29*day),
	}
}

// demoLedger replays the wallet history in time order and derives each balance from it.
func demoLedger(set *FixtureSet, at func(time.Duration) time.Time) ([]*entity.Transaction, []*entity.WalletBalance) {
	day := 24 * time.Hour
	var txs []*entity.Transaction
	add := func(org uuid.UUID, typ entity.TransactionType, status entity.TransactionStatus, amount float64, refType string, ref *uuid.UUID, desc string, when time.Time) *entity.Transaction {
		tx := &entity.Transaction{
			Id:             uuid.NewSHA1(org, []byte(fmt.Sprintf("%s|%s|%s", typ, desc, when.Format(time.RFC3339)))),
			OrganizationId: org, Type: typ, Amount: amount, Status: status,
			ReferenceType: refType, ReferenceId: ref, Description: desc, CreatedAt: when,
		}
		txs = append(txs, tx)
		return tx
	}
	refOf := func(id uuid.UUID) *uuid.UUID { return &id }

	add(OrgLumenID, entity.TransactionTypeDeposit, entity.TransactionStatusCompleted, 300000, "deposit", nil, "Wallet top-up via UPI", at(-125*day))
	add(OrgLumenID, entity.TransactionTypeDeposit, entity.TransactionStatusCompleted, 200000, "deposit", nil, "Wallet top-up via net banking", at(-20*day))
	add(OrgTrailheadID, entity.TransactionTypeDeposit, entity.TransactionStatusCompleted, 50000, "deposit", nil, "Wallet top-up via UPI", at(-3*day))
	pendingDeposit := add(OrgLumenID, entity.TransactionTypeDeposit, entity.TransactionStatusPending, 50000, "deposit", nil, "Wallet top-up (awaiting payment)", at(-2*time.Hour))
	pendingDeposit.Id = DepositPendingTxID

	campaignTitles := map[uuid.UUID]string{}
	for _, c := range set.Campaigns {
		campaignTitles[c.Id] = c.Title
	}
	for _, e := range set.Enrollments {
		desc := fmt.Sprintf("Cashback hold for %s (%s)", e.ShopperName, campaignTitles[e.CampaignId])
		add(e.OrganizationId, entity.TransactionTypeHold, entity.TransactionStatusCompleted, e.CashbackAmount, "enrollment", refOf(e.Id), desc, e.CreatedAt)
		switch e.Status {
		case entity.EnrollmentStatusApproved:
			add(e.OrganizationId, entity.TransactionTypeCashbackPayout, entity.TransactionStatusCompleted, e.CashbackAmount, "enrollment", refOf(e.Id),
				fmt.Sprintf("Cashback paid to %s", e.ShopperName), *e.ReviewedAt)
		case entity.EnrollmentStatusRejected:
			add(e.OrganizationId, entity.TransactionTypeHoldRelease, entity.TransactionStatusCompleted, e.CashbackAmount, "enrollment", refOf(e.Id),
				fmt.Sprintf("Hold released for %s", e.ShopperName), *e.ReviewedAt)
		case entity.EnrollmentStatusExpired:
			add(e.OrganizationId, entity.TransactionTypeHoldRelease, entity.TransactionStatusCompleted, e.CashbackAmount, "enrollment", refOf(e.Id),
				fmt.Sprintf("Hold released for %s", e.ShopperName), *e.ExpiresAt)
		}
	}
	for _, w := range set.Withdrawals {
		status := entity.TransactionStatusPending
		if w.Status == entity.WithdrawalStatusCompleted {
			status = entity.TransactionStatusCompleted
		}
		add(w.OrganizationId, entity.TransactionTypeWithdrawal, status, w.Amount, "withdrawal", refOf(w.Id), "Withdrawal to "+w.BankAccountMasked, w.CreatedAt)
	}
	for _, inv := range set.Invoices {
		if inv.Status == entity.InvoiceStatusPaid {
			add(inv.OrganizationId, entity.TransactionTypeInvoicePayment, entity.TransactionStatusCompleted, inv.Total, "invoice", refOf(inv.Id), "Payment for "+inv.Number, *inv.PaidAt)
		}
	}

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].CreatedAt.Before(txs[j].CreatedAt) })

	balances := map[uuid.UUID]*entity.WalletBalance{}
	for _, org := range set.Organizations {
		balances[org.Id] = &entity.WalletBalance{OrganizationId: org.Id, Currency: entity.DefaultCurrency, UpdatedAt: at(0)}
	}
	for _, tx := range txs {
		b := balances[tx.OrganizationId]
		b.Apply(tx)
		tx.BalanceAfter = b.Available
	}

	out := make([]*entity.WalletBalance, 0, len(set.Organizations))
	for _, org := range set.Organizations {
		out = append(out, balances[org.Id])
	}
	return txs, out
}

func demoNotifications(set *FixtureSet, at func(time.Duration) time.Time) []*entity.Notification {
	meta := func(v map[string]interface{}) json.RawMessage {
		raw, _ := json.Marshal(v)
		return raw
	}
	campaignEntity := "campaign"
	withdrawalEntity := "withdrawal"
	activeID, pendingWithdrawal := CampaignActiveID, WithdrawalPendingID
	readAt := at(-9 * 24 * time.Hour)

	return []*entity.Notification{
		{
			Id: uuid.MustParse("82a31425-7091-42b3-e425-810000000001"), OrganizationId: OrgLumenID, UserId: UserOwnerID,
			TypeCode: "CAMPAIGN_STATUS_CHANGED", Title: "Campaign status updated",
			Message:    "Campaign \"Diwali Glow Kit\" moved from approved to active",
			Metadata:   meta(map[string]interface{}{"campaign_id": activeID.String(), "from": "approved", "to": "active"}),
			EntityType: campaignEntity, EntityId: &activeID, IsRead: true, ReadAt: &readAt, CreatedAt: at(-10 * 24 * time.Hour),
		},
		{
			Id: uuid.MustParse("82a31425-7091-42b3-e425-810000000002"), OrganizationId: OrgLumenID, UserId: UserOwnerID,
			TypeCode: "WITHDRAWAL_REQUESTED", Title: "Withdrawal requested",
			Message:    "A withdrawal of ₹15,000.00 was requested",
			Metadata:   meta(map[string]interface{}{"withdrawal_id": pendingWithdrawal.String(), "amount": "₹15,000.00"}),
			EntityType: withdrawalEntity, EntityId: &pendingWithdrawal, CreatedAt: at(-24 * time.Hour),
		},
		{
			Id: uuid.MustParse("82a31425-7091-42b3-e425-810000000003"), OrganizationId: OrgLumenID, UserId: UserOwnerID,
			TypeCode: "ENROLLMENT_REVIEWED", Title: "Enrollment reviewed",
			Message:   "Submission from Riya Sen was approved",
			Metadata:  meta(map[string]interface{}{"enrollment_id": EnrollmentApprovedID.String(), "decision": "approved"}),
			CreatedAt: at(-5 * 24 * time.Hour),
		},
		{
			Id: uuid.MustParse("82a31425-7091-42b3-e425-810000000004"), OrganizationId: OrgLumenID, UserId: UserManagerID,
			TypeCode: "CAMPAIGN_STATUS_CHANGED", Title: "Campaign status updated",
			Message:   "Campaign \"Vitamin C Relaunch\" moved from active to paused",
			CreatedAt: at(-3 * 24 * time.Hour),
		},
	}
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
