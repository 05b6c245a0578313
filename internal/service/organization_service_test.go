package service

import (
	"context"
	"testing"
	"time"

	"brand-dashboard-be/internal/dto"
	"brand-dashboard-be/internal/entity"
	"brand-dashboard-be/internal/pkg/kyc"
	"brand-dashboard-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrganizationService(env *testEnv) IOrganizationService {
	return NewOrganizationService(env.factory, kyc.NewVerifier(kyc.NewStaticRegistry(), time.Minute), env.publisher, env.log)
}

func stepKeys(res *dto.OnboardingResponse) map[string]bool {
	done := map[string]bool{}
	for _, s := range res.Steps {
		done[s.Key] = s.Completed
	}
	return done
}

func TestOrganizationOnboardingProgress(t *testing.T) {
	env := newTestEnv(t)
	svc := newOrganizationService(env)

	res, err := svc.Onboarding(context.Background(), trailOwner)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", res.Status)
	assert.Equal(t, "pan", res.CurrentStep)
	assert.False(t, res.CanSubmit)
	assert.Equal(t, map[string]bool{"profile": true, "pan": false, "gst": false, "billing": false}, stepKeys(res))
	require.Len(t, res.Steps, 4)
	assert.False(t, res.Steps[2].Required)

	done, err := svc.Onboarding(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)
	assert.False(t, done.CanSubmit)
}

func TestOrganizationVerifyPan(t *testing.T) {
	env := newTestEnv(t)
	svc := newOrganizationService(env)
	ctx := context.Background()

	res, err := svc.VerifyPan(ctx, trailOwner, &dto.VerifyPanRequest{Pan: " aabct7315m ", Name: "trailhead outdoors private limited"})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Equal(t, "AABCT7315M", res.Pan)
	require.NotNil(t, res.NameMatch)
	assert.True(t, *res.NameMatch)

	org, err := svc.Get(ctx, trailOwner)
	require.NoError(t, err)
	assert.True(t, org.PanVerified)
	assert.Equal(t, "AABCT7315M", org.Pan)
	assert.Equal(t, "gst", org.OnboardingStep)

	_, err = svc.VerifyPan(ctx, trailOwner, &dto.VerifyPanRequest{Pan: "12345"})
	requireStatus(t, err, 400)
	assert.Equal(t, "Invalid PAN format", err.Error())

	unknown, err := svc.VerifyPan(ctx, trailOwner, &dto.VerifyPanRequest{Pan: "ZZZPZ9999Z"})
	require.NoError(t, err)
	assert.False(t, unknown.Verified)
	org, err = svc.Get(ctx, trailOwner)
	require.NoError(t, err)
	assert.Equal(t, "AABCT7315M", org.Pan)
}

func TestOrganizationVerifyPanClearsMismatchedGst(t *testing.T) {
	env := newTestEnv(t)
	svc := newOrganizationService(env)

	_, err := svc.VerifyPan(context.Background(), owner, &dto.VerifyPanRequest{Pan: "AACFM2207Q"})
	require.NoError(t, err)

	org, err := svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.False(t, org.GstVerified)
	assert.Equal(t, "completed", org.OnboardingStatus)
}

func TestOrganizationVerifyGst(t *testing.T) {
	env := newTestEnv(t)
	svc := newOrganizationService(env)
	ctx := context.Background()

	_, err := svc.VerifyPan(ctx, trailOwner, &dto.VerifyPanRequest{Pan: "AABCT7315M"})
	require.NoError(t, err)

	res, err := svc.VerifyGst(ctx, trailOwner, &dto.VerifyGstRequest{Gstin: "29aabct7315m1zq"})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.True(t, res.PanMatch)
	assert.Equal(t, "Karnataka", res.State)

	cancelled, err := svc.VerifyGst(ctx, trailOwner, &dto.VerifyGstRequest{Gstin: "07AAFCR9120H1ZC"})
	require.NoError(t, err)
	assert.False(t, cancelled.Verified)
	assert.Equal(t, kyc.GstStatusCancelled, cancelled.RegistrationStatus)

	org, err := svc.Get(ctx, trailOwner)
	require.NoError(t, err)
	assert.Equal(t, "29AABCT7315M1ZQ", org.Gstin)
	assert.Equal(t, "Karnataka", org.GstState)

	_, err = svc.VerifyGst(ctx, trailOwner, &dto.VerifyGstRequest{Gstin: "GST123"})
	requireStatus(t, err, 400)
}

func TestOrganizationSubmitOnboarding(t *testing.T) {
	env := newTestEnv(t)
	svc := newOrganizationService(env)
	ctx := context.Background()

	_, err := svc.SubmitOnboarding(ctx, trailOwner)
	requireStatus(t, err, 400)
	assert.Equal(t, "Complete the pan verification step before submitting", err.Error())

	_, err = svc.VerifyPan(ctx, trailOwner, &dto.VerifyPanRequest{Pan: "AABCT7315M"})
	require.NoError(t, err)

	_, err = svc.SubmitOnboarding(ctx, trailOwner)
	requireStatus(t, err, 400)
	assert.Equal(t, "Complete the billing address step before submitting", err.Error())

	_, err = svc.UpdateBilling(ctx, trailOwner, &dto.AddressDto{
		Line1: "12 Residency Road", City: "Bengaluru", State: "Karnataka", PostalCode: "560025", Country: "IN",
	})
	require.NoError(t, err)

	res, err := svc.SubmitOnboarding(ctx, trailOwner)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OnboardingStatusCompleted), res.Status)
	assert.False(t, res.CanSubmit)

	published := env.publisher.ofType(events.OrganizationOnboarded)
	require.Len(t, published, 1)
	assert.Equal(t, "Trailhead Outdoors", published[0].Payload()["name"])

	_, err = svc.SubmitOnboarding(ctx, trailOwner)
	requireStatus(t, err, 400)
	assert.Equal(t, "Onboarding is already completed", err.Error())
}

func TestOrganizationUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := newOrganizationService(env)

	res, err := svc.UpdateProfile(context.Background(), trailOwner, &dto.UpdateOrganizationProfileRequest{
		Name: " Trailhead ", LegalName: "Trailhead Outdoors Private Limited", Industry: "Outdoors",
		ContactEmail: "OPS@Trailhead.co.in", ContactPhone: "+918041234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Trailhead", res.Name)
	assert.Equal(t, "ops@trailhead.co.in", res.ContactEmail)
	assert.Equal(t, "pan", res.OnboardingStep)
}
