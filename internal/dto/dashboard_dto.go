package dto

type DashboardSummaryResponse struct {
	CampaignCounts            map[string]int64      `json:"campaignCounts"`
	TotalCampaigns            int64                 `json:"totalCampaigns"`
	ActiveCampaigns           int64                 `json:"activeCampaigns"`
	EnrollmentsAwaitingReview int64                 `json:"enrollmentsAwaitingReview"`
	Wallet                    WalletBalanceResponse `json:"wallet"`
	UnreadNotifications       int64                 `json:"unreadNotifications"`
}
