package lifecycle

import (
	"errors"
	"testing"
	"time"

	"brand-dashboard-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCampaignStatus(t *testing.T) {
	tests := []struct {
		name    string
		current entity.CampaignStatus
		action  CampaignAction
		want    entity.CampaignStatus
		wantErr string
	}{
		{"submit draft", entity.CampaignStatusDraft, CampaignActionSubmit, entity.CampaignStatusPendingApproval, ""},
		{"approve pending", entity.CampaignStatusPendingApproval, CampaignActionApprove, entity.CampaignStatusApproved, ""},
		{"activate approved", entity.CampaignStatusApproved, CampaignActionActivate, entity.CampaignStatusActive, ""},
		{"activate draft", entity.CampaignStatusDraft, CampaignActionActivate, "", "Only approved campaigns can be activated"},
		{"activate paused", entity.CampaignStatusPaused, CampaignActionActivate, "", "Only approved campaigns can be activated"},
		{"pause active", entity.CampaignStatusActive, CampaignActionPause, entity.CampaignStatusPaused, ""},
		{"pause paused", entity.CampaignStatusPaused, CampaignActionPause, "", "Only active campaigns can be paused"},
		{"resume paused", entity.CampaignStatusPaused, CampaignActionResume, entity.CampaignStatusActive, ""},
		{"resume active", entity.CampaignStatusActive, CampaignActionResume, "", "Only paused campaigns can be resumed"},
		{"end active", entity.CampaignStatusActive, CampaignActionEnd, entity.CampaignStatusEnded, ""},
		{"end paused", entity.CampaignStatusPaused, CampaignActionEnd, entity.CampaignStatusEnded, ""},
		{"end approved", entity.CampaignStatusApproved, CampaignActionEnd, "", "Only active or paused campaigns can be ended"},
		{"complete ended", entity.CampaignStatusEnded, CampaignActionComplete, entity.CampaignStatusCompleted, ""},
		{"complete active", entity.CampaignStatusActive, CampaignActionComplete, "", "Only ended campaigns can be completed"},
		{"cancel draft", entity.CampaignStatusDraft, CampaignActionCancel, entity.CampaignStatusCancelled, ""},
		{"cancel pending", entity.CampaignStatusPendingApproval, CampaignActionCancel, entity.CampaignStatusCancelled, ""},
		{"cancel approved", entity.CampaignStatusApproved, CampaignActionCancel, entity.CampaignStatusCancelled, ""},
		{"cancel paused", entity.CampaignStatusPaused, CampaignActionCancel, entity.CampaignStatusCancelled, ""},
		{"cancel active", entity.CampaignStatusActive, CampaignActionCancel, "", "Campaign cannot be cancelled in its current status"},
		{"cancel ended", entity.CampaignStatusEnded, CampaignActionCancel, "", "Campaign cannot be cancelled in its current status"},
		{"archive ended", entity.CampaignStatusEnded, CampaignActionArchive, entity.CampaignStatusArchived, ""},
		{"archive completed", entity.CampaignStatusCompleted, CampaignActionArchive, entity.CampaignStatusArchived, ""},
		{"archive cancelled", entity.CampaignStatusCancelled, CampaignActionArchive, entity.CampaignStatusArchived, ""},
		{"archive active", entity.CampaignStatusActive, CampaignActionArchive, "", "Only ended, completed or cancelled campaigns can be archived"},
		{"archive archived", entity.CampaignStatusArchived, CampaignActionArchive, "", "Only ended, completed or cancelled campaigns can be archived"},
		{"unknown action", entity.CampaignStatusDraft, CampaignAction("launch"), "", "Unknown campaign action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextCampaignStatus(tt.current, tt.action)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, errors.Is(err, ErrInvalidTransition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanActivateChecksStartDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	future := &entity.Campaign{Status: entity.CampaignStatusApproved, StartDate: now.Add(time.Hour)}
	err := CanActivate(future, now)
	require.Error(t, err)
	assert.Equal(t, "Campaign start date has not been reached", err.Error())

	exact := &entity.Campaign{Status: entity.CampaignStatusApproved, StartDate: now}
	assert.NoError(t, CanActivate(exact, now))

	past := &entity.Campaign{Status: entity.CampaignStatusApproved, StartDate: now.Add(-24 * time.Hour)}
	assert.NoError(t, CanActivate(past, now))

	notApproved := &entity.Campaign{Status: entity.CampaignStatusDraft, StartDate: now.Add(-time.Hour)}
	err = CanActivate(notApproved, now)
	require.Error(t, err)
	assert.Equal(t, "Only approved campaigns can be activated", err.Error())
}

func TestApplyCampaignActionStampsTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c := &entity.Campaign{Status: entity.CampaignStatusActive, StartDate: now.Add(-time.Hour)}

	prev, err := ApplyCampaignAction(c, CampaignActionPause, now)
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, prev)
	assert.Equal(t, entity.CampaignStatusPaused, c.Status)
	require.NotNil(t, c.PausedAt)

	_, err = ApplyCampaignAction(c, CampaignActionResume, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, c.Status)
	assert.Nil(t, c.PausedAt)

	_, err = ApplyCampaignAction(c, CampaignActionEnd, now.Add(2*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, c.EndedAt)
	assert.Equal(t, now.Add(2*time.Minute), *c.EndedAt)
}

func TestApplyCampaignActionLeavesRejectedCampaignUntouched(t *testing.T) {
	now := time.Now()
	c := &entity.Campaign{Status: entity.CampaignStatusApproved, StartDate: now.Add(48 * time.Hour)}

	_, err := ApplyCampaignAction(c, CampaignActionActivate, now)
	require.Error(t, err)
	assert.Equal(t, entity.CampaignStatusApproved, c.Status)
	assert.Nil(t, c.ActivatedAt)
}

func TestAvailableCampaignActions(t *testing.T) {
	assert.Equal(t, []CampaignAction{CampaignActionSubmit, CampaignActionCancel}, AvailableCampaignActions(entity.CampaignStatusDraft))
	assert.Equal(t, []CampaignAction{CampaignActionResume, CampaignActionEnd, CampaignActionCancel}, AvailableCampaignActions(entity.CampaignStatusPaused))
	assert.Equal(t, []CampaignAction{CampaignActionPause, CampaignActionEnd}, AvailableCampaignActions(entity.CampaignStatusActive))
	assert.Empty(t, AvailableCampaignActions(entity.CampaignStatusArchived))
}

func TestParseCampaignAction(t *testing.T) {
	action, err := ParseCampaignAction("archive")
	require.NoError(t, err)
	assert.Equal(t, CampaignActionArchive, action)

	_, err = ParseCampaignAction("delete")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEditAndDeleteOnlyInDraft(t *testing.T) {
	assert.NoError(t, EnsureCampaignEditable(entity.CampaignStatusDraft))
	assert.EqualError(t, EnsureCampaignEditable(entity.CampaignStatusApproved), "Only draft campaigns can be edited")
	assert.NoError(t, EnsureCampaignDeletable(entity.CampaignStatusDraft))
	assert.EqualError(t, EnsureCampaignDeletable(entity.CampaignStatusActive), "Only draft campaigns can be deleted")
}
