package lifecycle

import (
	"time"

	"brand-dashboard-be/internal/entity"
)

type EnrollmentAction string

const (
	EnrollmentActionApprove        EnrollmentAction = "approve"
	EnrollmentActionReject         EnrollmentAction = "reject"
	EnrollmentActionRequestChanges EnrollmentAction = "request_changes"
	EnrollmentActionExpire         EnrollmentAction = "expire"
)

type enrollmentRule struct {
	from    []entity.EnrollmentStatus
	to      entity.EnrollmentStatus
	message string
}

var reviewable = []entity.EnrollmentStatus{entity.EnrollmentStatusAwaitingReview}

var enrollmentRules = map[EnrollmentAction]enrollmentRule{
	EnrollmentActionApprove: {
		from:    reviewable,
		to:      entity.EnrollmentStatusApproved,
		message: "Only enrollments awaiting review can be approved",
	},
	EnrollmentActionReject: {
		from:    reviewable,
		to:      entity.EnrollmentStatusRejected,
		message: "Only enrollments awaiting review can be rejected",
	},
	EnrollmentActionRequestChanges: {
		from:    reviewable,
		to:      entity.EnrollmentStatusChangesRequested,
		message: "Only enrollments awaiting review can have changes requested",
	},
	EnrollmentActionExpire: {
		from:    []entity.EnrollmentStatus{entity.EnrollmentStatusEnrolled, entity.EnrollmentStatusAwaitingSubmission},
		to:      entity.EnrollmentStatusExpired,
		message: "Enrollment cannot expire in its current status",
	},
}

// brand-facing review actions, in display order
var reviewActions = []EnrollmentAction{
	EnrollmentActionApprove,
	EnrollmentActionReject,
	EnrollmentActionRequestChanges,
}

func NextEnrollmentStatus(current entity.EnrollmentStatus, action EnrollmentAction) (entity.EnrollmentStatus, error) {
	rule, ok := enrollmentRules[action]
	if !ok {
		return "", reject("Unknown enrollment action")
	}
	for _, s := range rule.from {
		if s == current {
			return rule.to, nil
		}
	}
	return "", reject(rule.message)
}

// ApplyEnrollmentAction moves the enrollment and records the reviewer. The expire
// action leaves the review fields untouched.
func ApplyEnrollmentAction(enrollment *entity.Enrollment, action EnrollmentAction, note string, reviewer *entity.User, now time.Time) (entity.EnrollmentStatus, error) {
	next, err := NextEnrollmentStatus(enrollment.Status, action)
	if err != nil {
		return "", err
	}

	previous := enrollment.Status
	enrollment.Status = next
	enrollment.UpdatedAt = now

	if action != EnrollmentActionExpire {
		stamp := now
		enrollment.ReviewedAt = &stamp
		enrollment.ReviewNote = note
		if reviewer != nil {
			id := reviewer.Id
			enrollment.ReviewedBy = &id
		}
	}

	return previous, nil
}

// AvailableEnrollmentActions lists the review actions open to the brand.
func AvailableEnrollmentActions(status entity.EnrollmentStatus) []EnrollmentAction {
	actions := make([]EnrollmentAction, 0, len(reviewActions))
	for _, action := range reviewActions {
		if _, err := NextEnrollmentStatus(status, action); err == nil {
			actions = append(actions, action)
		}
	}
	return actions
}
