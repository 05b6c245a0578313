package lifecycle

import (
	"time"

	"brand-dashboard-be/internal/entity"
)

type CampaignAction string

const (
	CampaignActionSubmit   CampaignAction = "submit"
	CampaignActionApprove  CampaignAction = "approve"
	CampaignActionActivate CampaignAction = "activate"
	CampaignActionPause    CampaignAction = "pause"
	CampaignActionResume   CampaignAction = "resume"
	CampaignActionEnd      CampaignAction = "end"
	CampaignActionComplete CampaignAction = "complete"
	CampaignActionCancel   CampaignAction = "cancel"
	CampaignActionArchive  CampaignAction = "archive"
)

// campaignActionOrder is the order actions are reported to clients.
var campaignActionOrder = []CampaignAction{
	CampaignActionSubmit,
	CampaignActionApprove,
	CampaignActionActivate,
	CampaignActionPause,
	CampaignActionResume,
	CampaignActionEnd,
	CampaignActionComplete,
	CampaignActionCancel,
	CampaignActionArchive,
}

type campaignRule struct {
	from    []entity.CampaignStatus
	to      entity.CampaignStatus
	message string
}

var campaignRules = map[CampaignAction]campaignRule{
	CampaignActionSubmit: {
		from:    []entity.CampaignStatus{entity.CampaignStatusDraft},
		to:      entity.CampaignStatusPendingApproval,
		message: "Only draft campaigns can be submitted for approval",
	},
	CampaignActionApprove: {
		from:    []entity.CampaignStatus{entity.CampaignStatusPendingApproval},
		to:      entity.CampaignStatusApproved,
		message: "Only campaigns pending approval can be approved",
	},
	CampaignActionActivate: {
		from:    []entity.CampaignStatus{entity.CampaignStatusApproved},
		to:      entity.CampaignStatusActive,
		message: "Only approved campaigns can be activated",
	},
	CampaignActionPause: {
		from:    []entity.CampaignStatus{entity.CampaignStatusActive},
		to:      entity.CampaignStatusPaused,
		message: "Only active campaigns can be paused",
	},
	CampaignActionResume: {
		from:    []entity.CampaignStatus{entity.CampaignStatusPaused},
		to:      entity.CampaignStatusActive,
		message: "Only paused campaigns can be resumed",
	},
	CampaignActionEnd: {
		from:    []entity.CampaignStatus{entity.CampaignStatusActive, entity.CampaignStatusPaused},
		to:      entity.CampaignStatusEnded,
		message: "Only active or paused campaigns can be ended",
	},
	CampaignActionComplete: {
		from:    []entity.CampaignStatus{entity.CampaignStatusEnded},
		to:      entity.CampaignStatusCompleted,
		message: "Only ended campaigns can be completed",
	},
	CampaignActionCancel: {
		from: []entity.CampaignStatus{
			entity.CampaignStatusDraft,
			entity.CampaignStatusPendingApproval,
			entity.CampaignStatusApproved,
			entity.CampaignStatusPaused,
		},
		to:      entity.CampaignStatusCancelled,
		message: "Campaign cannot be cancelled in its current status",
	},
	CampaignActionArchive: {
		from: []entity.CampaignStatus{
			entity.CampaignStatusEnded,
			entity.CampaignStatusCompleted,
			entity.CampaignStatusCancelled,
		},
		to:      entity.CampaignStatusArchived,
		message: "Only ended, completed or cancelled campaigns can be archived",
	},
}

const (
	msgUnknownCampaignAction = "Unknown campaign action"
	msgStartDateNotReached   = "Campaign start date has not been reached"
	msgOnlyDraftEditable     = "Only draft campaigns can be edited"
	msgOnlyDraftDeletable    = "Only draft campaigns can be deleted"
)

// ParseCampaignAction validates a raw action name taken from a route.
func ParseCampaignAction(raw string) (CampaignAction, error) {
	action := CampaignAction(raw)
	if _, ok := campaignRules[action]; !ok {
		return "", reject(msgUnknownCampaignAction)
	}
	return action, nil
}

// NextCampaignStatus applies the status predicate only. Activation also needs CanActivate.
func NextCampaignStatus(current entity.CampaignStatus, action CampaignAction) (entity.CampaignStatus, error) {
	rule, ok := campaignRules[action]
	if !ok {
		return "", reject(msgUnknownCampaignAction)
	}
	for _, s := range rule.from {
		if s == current {
			return rule.to, nil
		}
	}
	return "", reject(rule.message)
}

// CanActivate checks both the status and the start date.
func CanActivate(campaign *entity.Campaign, now time.Time) error {
	if _, err := NextCampaignStatus(campaign.Status, CampaignActionActivate); err != nil {
		return err
	}
	if campaign.StartDate.After(now) {
		return reject(msgStartDateNotReached)
	}
	return nil
}

// ApplyCampaignAction validates the action against the campaign, moves it to the
// next status and stamps the matching timestamp.
func ApplyCampaignAction(campaign *entity.Campaign, action CampaignAction, now time.Time) (entity.CampaignStatus, error) {
	if action == CampaignActionActivate {
		if err := CanActivate(campaign, now); err != nil {
			return "", err
		}
	}
	next, err := NextCampaignStatus(campaign.Status, action)
	if err != nil {
		return "", err
	}

	previous := campaign.Status
	campaign.Status = next
	campaign.UpdatedAt = now

	stamp := now
	switch action {
	case CampaignActionSubmit:
		campaign.SubmittedAt = &stamp
	case CampaignActionApprove:
		campaign.ApprovedAt = &stamp
	case CampaignActionActivate:
		campaign.ActivatedAt = &stamp
	case CampaignActionPause:
		campaign.PausedAt = &stamp
	case CampaignActionResume:
		campaign.PausedAt = nil
	case CampaignActionEnd:
		campaign.EndedAt = &stamp
	case CampaignActionComplete:
		campaign.CompletedAt = &stamp
	case CampaignActionCancel:
		campaign.CancelledAt = &stamp
	case CampaignActionArchive:
		campaign.ArchivedAt = &stamp
	}

	return previous, nil
}

// AvailableCampaignActions lists the actions the status admits. Activation is listed
// for approved campaigns regardless of start date.
func AvailableCampaignActions(status entity.CampaignStatus) []CampaignAction {
	actions := make([]CampaignAction, 0, 3)
	for _, action := range campaignActionOrder {
		if _, err := NextCampaignStatus(status, action); err == nil {
			actions = append(actions, action)
		}
	}
	return actions
}

func EnsureCampaignEditable(status entity.CampaignStatus) error {
	if status != entity.CampaignStatusDraft {
		return reject(msgOnlyDraftEditable)
	}
	return nil
}

func EnsureCampaignDeletable(status entity.CampaignStatus) error {
	if status != entity.CampaignStatusDraft {
		return reject(msgOnlyDraftDeletable)
	}
	return nil
}
