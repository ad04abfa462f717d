package application

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maauso/guardjobs-api/internal/catalog"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// mockSubmitter implements Submitter for testing.
type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, kind submission.Kind) (submission.Receipt, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(submission.Receipt), args.Error(1)
}

func newTestService(t *testing.T) (*Service, *mockSubmitter) {
	t.Helper()

	jobs, err := catalog.Default()
	require.NoError(t, err)

	sub := &mockSubmitter{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(NewSeededRepository(), jobs, sub, logger,
		WithClock(func() time.Time { return time.UnixMilli(1704067200000) }),
	)
	return svc, sub
}

func TestService_Apply(t *testing.T) {
	svc, sub := newTestService(t)
	receipt := submission.Receipt{ID: "r-1", Kind: submission.KindApply, Title: "Application Submitted!"}
	sub.On("Submit", mock.Anything, submission.KindApply).Return(receipt, nil).Once()

	res, err := svc.Apply(context.Background(), "3", ApplyInput{Name: "Ravi", Phone: "9999999999", Experience: "1-3 years"})
	require.NoError(t, err)

	assert.Equal(t, "APP-3-LQU5M2O0", res.ApplicationID)
	assert.Equal(t, "3", res.JobID)
	assert.Equal(t, "Bouncer", res.JobTitle)
	assert.Equal(t, receipt, res.Receipt)
	sub.AssertExpectations(t)
}

func TestService_Apply_UnknownJob(t *testing.T) {
	svc, sub := newTestService(t)

	_, err := svc.Apply(context.Background(), "99", ApplyInput{Name: "Ravi"})
	assert.ErrorIs(t, err, catalog.ErrJobNotFound)
	sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestService_Apply_SubmitFails(t *testing.T) {
	svc, sub := newTestService(t)
	sub.On("Submit", mock.Anything, submission.KindApply).Return(submission.Receipt{}, context.Canceled)

	_, err := svc.Apply(context.Background(), "1", ApplyInput{Name: "Ravi"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_ListAndStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	apps, err := svc.List(ctx, Filter{Status: "new"})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-001", apps[0].ID)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Pending)

	counts, err := svc.CountByJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["1"])
}

func TestService_Shortlist(t *testing.T) {
	svc, sub := newTestService(t)
	ctx := context.Background()
	sub.On("Submit", mock.Anything, submission.KindShortlist).Return(submission.Receipt{ID: "r-2", Kind: submission.KindShortlist}, nil)

	res, err := svc.Shortlist(ctx, "app-001")
	require.NoError(t, err)
	assert.Equal(t, StatusShortlisted, res.Application.Status)
	assert.Equal(t, "r-2", res.Receipt.ID)

	// Nothing is written back.
	stored, err := svc.Get(ctx, "app-001")
	require.NoError(t, err)
	assert.Equal(t, StatusNew, stored.Status)
}

func TestService_Shortlist_InvalidTransition(t *testing.T) {
	svc, sub := newTestService(t)

	_, err := svc.Shortlist(context.Background(), "app-004")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.True(t, strings.Contains(err.Error(), "hired -> shortlisted"))
	sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestService_Shortlist_ReviewedCandidates(t *testing.T) {
	svc, sub := newTestService(t)
	sub.On("Submit", mock.Anything, submission.KindShortlist).Return(submission.Receipt{Title: "Candidate Shortlisted"}, nil)

	for _, appID := range []string{"app-003", "app-005"} {
		res, err := svc.Shortlist(context.Background(), appID)
		require.NoError(t, err, appID)
		assert.Equal(t, StatusShortlisted, res.Application.Status, appID)
	}
	sub.AssertNumberOfCalls(t, "Submit", 2)
}

func TestService_Reject(t *testing.T) {
	svc, sub := newTestService(t)
	sub.On("Submit", mock.Anything, submission.KindReject).Return(submission.Receipt{Kind: submission.KindReject}, nil)

	res, err := svc.Reject(context.Background(), "app-003")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, res.Application.Status)

	_, err = svc.Reject(context.Background(), "app-005")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Reject(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrApplicationNotFound))
}
