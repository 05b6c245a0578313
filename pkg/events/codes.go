package events

// Event codes. Each one has a matching notification type.
const (
	CampaignStatusChanged = "CAMPAIGN_STATUS_CHANGED"
	EnrollmentReviewed    = "ENROLLMENT_REVIEWED"
	WithdrawalRequested   = "WITHDRAWAL_REQUESTED"
	InvoicePaid           = "INVOICE_PAID"
	TeamMemberInvited     = "TEAM_MEMBER_INVITED"
	OrganizationOnboarded = "ORGANIZATION_ONBOARDED"
	SystemAnnouncement    = "SYSTEM_ANNOUNCEMENT"
)
