package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawding/leavecalc-api/internal/domain/rating"
	"github.com/lawding/leavecalc-api/internal/repository/memory"
)

func newTestService(now time.Time) (*PromptServiceImpl, *memory.RatingStateStore, *time.Time) {
	store := memory.NewRatingStateStore()
	clock := now
	svc := NewPromptService(store)
	svc.now = func() time.Time { return clock }
	return svc, store, &clock
}

func TestCanShow_NewDevice(t *testing.T) {
	svc, _, _ := newTestService(time.Now())

	canShow, err := svc.CanShow(context.Background(), "device-1")
	require.NoError(t, err)
	assert.True(t, canShow)
}

func TestCanShow_CooldownAfterSubmission(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, clock := newTestService(start)
	ctx := context.Background()

	require.NoError(t, svc.MarkSubmitted(ctx, "device-1", "1.4.0"))

	canShow, err := svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, canShow, "should be hidden immediately after submission")

	*clock = start.AddDate(0, 0, 27)
	canShow, err = svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, canShow, "27 days in, still within cooldown")

	*clock = start.AddDate(0, 0, 29)
	canShow, err = svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, canShow, "29 days in, cooldown has lapsed")
}

func TestCanShow_CooldownDoesNotAffectOtherDevices(t *testing.T) {
	svc, _, _ := newTestService(time.Now())
	ctx := context.Background()

	require.NoError(t, svc.MarkSubmitted(ctx, "device-1", "1.0.0"))

	canShow, err := svc.CanShow(ctx, "device-2")
	require.NoError(t, err)
	assert.True(t, canShow)
}

func TestMarkDismissed_StickyUntilLaunch(t *testing.T) {
	svc, _, _ := newTestService(time.Now())
	ctx := context.Background()

	require.NoError(t, svc.MarkDismissed(ctx, "device-1"))

	canShow, err := svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, canShow, "dismissal should hold for the rest of the session")

	// Cold start: the dismissal is forgotten.
	require.NoError(t, svc.Launch(ctx, "device-1", "1.0.0"))

	canShow, err = svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, canShow)
}

func TestMarkDismissed_DoesNotPersist(t *testing.T) {
	svc, store, _ := newTestService(time.Now())
	ctx := context.Background()

	require.NoError(t, svc.MarkDismissed(ctx, "device-1"))

	_, err := store.Get(ctx, "device-1")
	assert.ErrorIs(t, err, rating.ErrStateNotFound, "dismissal must stay in process memory")
}

func TestLaunch_MajorVersionBumpClearsCooldown(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(start)
	ctx := context.Background()

	require.NoError(t, svc.MarkSubmitted(ctx, "device-1", "1.4.0"))

	// Same major: cooldown stays.
	require.NoError(t, svc.Launch(ctx, "device-1", "1.5.2"))
	canShow, err := svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, canShow)

	// Major bump: cooldown is cleared without waiting it out.
	require.NoError(t, svc.Launch(ctx, "device-1", "2.0.0"))
	canShow, err = svc.CanShow(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, canShow)
}

func TestLaunch_UnknownDeviceIsNoop(t *testing.T) {
	svc, _, _ := newTestService(time.Now())

	err := svc.Launch(context.Background(), "device-1", "3.1.0")
	require.NoError(t, err)
}

func TestLaunch_InvalidAppVersion(t *testing.T) {
	svc, _, _ := newTestService(time.Now())

	err := svc.Launch(context.Background(), "device-1", "not-a-version")
	assert.ErrorIs(t, err, rating.ErrInvalidAppVersion)
}

func TestMarkSubmitted_RecordsMajorVersion(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, store, _ := newTestService(start)
	ctx := context.Background()

	require.NoError(t, svc.MarkSubmitted(ctx, "device-1", "2.3.1"))

	state, err := store.Get(ctx, "device-1")
	require.NoError(t, err)
	require.NotNil(t, state.LastSubmittedMajor)
	assert.Equal(t, 2, *state.LastSubmittedMajor)
	require.NotNil(t, state.CooldownUntil)
	assert.Equal(t, start.AddDate(0, 0, 28), *state.CooldownUntil)
}

func TestMarkSubmitted_InvalidAppVersion(t *testing.T) {
	svc, store, _ := newTestService(time.Now())
	ctx := context.Background()

	err := svc.MarkSubmitted(ctx, "device-1", "")
	assert.ErrorIs(t, err, rating.ErrInvalidAppVersion)

	_, err = store.Get(ctx, "device-1")
	assert.ErrorIs(t, err, rating.ErrStateNotFound)
}
