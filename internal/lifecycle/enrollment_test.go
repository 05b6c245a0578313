package lifecycle

import (
	"testing"
	"time"

	"brand-dashboard-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEnrollmentStatus(t *testing.T) {
	tests := []struct {
		name    string
		current entity.EnrollmentStatus
		action  EnrollmentAction
		want    entity.EnrollmentStatus
		wantErr string
	}{
		{"approve awaiting review", entity.EnrollmentStatusAwaitingReview, EnrollmentActionApprove, entity.EnrollmentStatusApproved, ""},
		{"reject awaiting review", entity.EnrollmentStatusAwaitingReview, EnrollmentActionReject, entity.EnrollmentStatusRejected, ""},
		{"request changes awaiting review", entity.EnrollmentStatusAwaitingReview, EnrollmentActionRequestChanges, entity.EnrollmentStatusChangesRequested, ""},
		{"approve enrolled", entity.EnrollmentStatusEnrolled, EnrollmentActionApprove, "", "Only enrollments awaiting review can be approved"},
		{"approve approved", entity.EnrollmentStatusApproved, EnrollmentActionApprove, "", "Only enrollments awaiting review can be approved"},
		{"reject changes requested", entity.EnrollmentStatusChangesRequested, EnrollmentActionReject, "", "Only enrollments awaiting review can be rejected"},
		{"request changes rejected", entity.EnrollmentStatusRejected, EnrollmentActionRequestChanges, "", "Only enrollments awaiting review can have changes requested"},
		{"expire enrolled", entity.EnrollmentStatusEnrolled, EnrollmentActionExpire, entity.EnrollmentStatusExpired, ""},
		{"expire awaiting submission", entity.EnrollmentStatusAwaitingSubmission, EnrollmentActionExpire, entity.EnrollmentStatusExpired, ""},
		{"expire awaiting review", entity.EnrollmentStatusAwaitingReview, EnrollmentActionExpire, "", "Enrollment cannot expire in its current status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextEnrollmentStatus(tt.current, tt.action)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEnrollmentActionRecordsReviewer(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	reviewer := &entity.User{Id: uuid.New()}
	e := &entity.Enrollment{Status: entity.EnrollmentStatusAwaitingReview}

	prev, err := ApplyEnrollmentAction(e, EnrollmentActionReject, "blurry screenshot", reviewer, now)
	require.NoError(t, err)
	assert.Equal(t, entity.EnrollmentStatusAwaitingReview, prev)
	assert.Equal(t, entity.EnrollmentStatusRejected, e.Status)
	assert.Equal(t, "blurry screenshot", e.ReviewNote)
	require.NotNil(t, e.ReviewedBy)
	assert.Equal(t, reviewer.Id, *e.ReviewedBy)
	require.NotNil(t, e.ReviewedAt)
	assert.Equal(t, now, *e.ReviewedAt)
}

func TestApplyEnrollmentExpireSkipsReviewFields(t *testing.T) {
	e := &entity.Enrollment{Status: entity.EnrollmentStatusAwaitingSubmission}

	_, err := ApplyEnrollmentAction(e, EnrollmentActionExpire, "", nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.EnrollmentStatusExpired, e.Status)
	assert.Nil(t, e.ReviewedAt)
	assert.Nil(t, e.ReviewedBy)
}

func TestAvailableEnrollmentActions(t *testing.T) {
	assert.Equal(t,
		[]EnrollmentAction{EnrollmentActionApprove, EnrollmentActionReject, EnrollmentActionRequestChanges},
		AvailableEnrollmentActions(entity.EnrollmentStatusAwaitingReview),
	)
	assert.Empty(t, AvailableEnrollmentActions(entity.EnrollmentStatusEnrolled))
}
