package award_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-awards/internal/award"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
	mockspkg "github.com/feral-file/ff-awards/internal/mocks"
	"github.com/feral-file/ff-awards/internal/store"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testCoordinatorMocks contains all the mocks needed for testing the coordinator
type testCoordinatorMocks struct {
	ctrl        *gomock.Controller
	ledger      *mockspkg.MockLedger
	unseen      *mockspkg.MockUnseenCounts
	gateway     *mockspkg.MockGateway
	coordinator award.Coordinator
}

func setupTestCoordinator(t *testing.T) *testCoordinatorMocks {
	ctrl := gomock.NewController(t)

	tm := &testCoordinatorMocks{
		ctrl:    ctrl,
		ledger:  mockspkg.NewMockLedger(ctrl),
		unseen:  mockspkg.NewMockUnseenCounts(ctrl),
		gateway: mockspkg.NewMockGateway(ctrl),
	}
	tm.coordinator = award.NewCoordinator(tm.ledger, tm.unseen, tm.gateway)

	return tm
}

// expectTransaction runs the transaction body against the same mock ledger
func (m *testCoordinatorMocks) expectTransaction() *gomock.Call {
	return m.ledger.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Ledger) error) error {
			return fn(m.ledger)
		})
}

const (
	alice   = domain.UserID(7)
	badge   = domain.AwardID(3)
	grantID = domain.GrantID(11)
)

func TestCoordinator_Grant_Success(t *testing.T) {
	mocks := setupTestCoordinator(t)
	ctx := context.Background()

	gomock.InOrder(
		mocks.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil),
		mocks.expectTransaction(),
		mocks.ledger.EXPECT().Insert(gomock.Any(), alice, "alice", badge).Return(grantID, nil),
		mocks.ledger.EXPECT().IncrementGivenCount(gomock.Any(), badge).Return(nil),
		mocks.unseen.EXPECT().Increment(gomock.Any(), alice).Return(nil),
		mocks.unseen.EXPECT().PurgeProfile(gomock.Any(), alice).Return(nil),
		mocks.gateway.EXPECT().Notify(gomock.Any(), alice, badge, grantID).Return(nil),
	)

	id, granted, err := mocks.coordinator.Grant(ctx, alice, "alice", badge, true)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, grantID, id)
}

func TestCoordinator_Grant_WithoutNotify(t *testing.T) {
	mocks := setupTestCoordinator(t)

	mocks.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil)
	mocks.expectTransaction()
	mocks.ledger.EXPECT().Insert(gomock.Any(), alice, "alice", badge).Return(grantID, nil)
	mocks.ledger.EXPECT().IncrementGivenCount(gomock.Any(), badge).Return(nil)
	mocks.unseen.EXPECT().Increment(gomock.Any(), alice).Return(nil)
	mocks.unseen.EXPECT().PurgeProfile(gomock.Any(), alice).Return(nil)
	mocks.gateway.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, granted, err := mocks.coordinator.Grant(context.Background(), alice, "alice", badge, false)
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestCoordinator_Grant_AlreadyHeld(t *testing.T) {
	mocks := setupTestCoordinator(t)

	mocks.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(true, nil)

	id, granted, err := mocks.coordinator.Grant(context.Background(), alice, "alice", badge, true)
	require.NoError(t, err)
	assert.False(t, granted)
	assert.Zero(t, id)
}

func TestCoordinator_Grant_LostRace(t *testing.T) {
	mocks := setupTestCoordinator(t)

	mocks.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil)
	mocks.expectTransaction()
	mocks.ledger.EXPECT().
		Insert(gomock.Any(), alice, "alice", badge).
		Return(domain.GrantID(0), fmt.Errorf("award 3 already granted to user 7: %w", domain.ErrConflict))

	id, granted, err := mocks.coordinator.Grant(context.Background(), alice, "alice", badge, true)
	require.NoError(t, err, "a conflict on insert is not an error")
	assert.False(t, granted)
	assert.Zero(t, id)
}

func TestCoordinator_Grant_SideEffectFailuresAreSwallowed(t *testing.T) {
	mocks := setupTestCoordinator(t)

	mocks.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil)
	mocks.expectTransaction()
	mocks.ledger.EXPECT().Insert(gomock.Any(), alice, "alice", badge).Return(grantID, nil)
	mocks.ledger.EXPECT().IncrementGivenCount(gomock.Any(), badge).Return(nil)
	mocks.unseen.EXPECT().
		Increment(gomock.Any(), alice).
		Return(fmt.Errorf("%w: redis down", domain.ErrUnavailable))
	mocks.unseen.EXPECT().
		PurgeProfile(gomock.Any(), alice).
		Return(fmt.Errorf("%w: redis down", domain.ErrUnavailable))
	mocks.gateway.EXPECT().
		Notify(gomock.Any(), alice, badge, grantID).
		Return(fmt.Errorf("%w: broker down", domain.ErrNotification))

	id, granted, err := mocks.coordinator.Grant(context.Background(), alice, "alice", badge, true)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, grantID, id)
}

func TestCoordinator_Grant_CriticalFailures(t *testing.T) {
	storeErr := errors.New("connection reset by peer")

	tests := []struct {
		name   string
		setup  func(m *testCoordinatorMocks)
		target error
	}{
		{
			name: "existence check fails",
			setup: func(m *testCoordinatorMocks) {
				m.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, storeErr)
			},
			target: domain.ErrUnavailable,
		},
		{
			name: "insert fails",
			setup: func(m *testCoordinatorMocks) {
				m.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil)
				m.expectTransaction()
				m.ledger.EXPECT().Insert(gomock.Any(), alice, "alice", badge).Return(domain.GrantID(0), storeErr)
			},
			target: domain.ErrUnavailable,
		},
		{
			name: "award missing",
			setup: func(m *testCoordinatorMocks) {
				m.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil)
				m.expectTransaction()
				m.ledger.EXPECT().
					Insert(gomock.Any(), alice, "alice", badge).
					Return(domain.GrantID(0), fmt.Errorf("%w: foreign key", domain.ErrNotFound))
			},
			target: domain.ErrNotFound,
		},
		{
			name: "increment fails after insert",
			setup: func(m *testCoordinatorMocks) {
				m.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, nil)
				m.expectTransaction()
				m.ledger.EXPECT().Insert(gomock.Any(), alice, "alice", badge).Return(grantID, nil)
				m.ledger.EXPECT().IncrementGivenCount(gomock.Any(), badge).Return(storeErr)
			},
			target: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestCoordinator(t)
			tt.setup(mocks)

			_, granted, err := mocks.coordinator.Grant(context.Background(), alice, "alice", badge, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.False(t, granted)
		})
	}
}

func TestCoordinator_Grant_UnavailableIsNotDoubleWrapped(t *testing.T) {
	mocks := setupTestCoordinator(t)
	timeout := fmt.Errorf("%w: %w", domain.ErrUnavailable, context.DeadlineExceeded)

	mocks.ledger.EXPECT().HasActiveGrant(gomock.Any(), alice, badge).Return(false, timeout)

	_, _, err := mocks.coordinator.Grant(context.Background(), alice, "alice", badge, true)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "failed to check existing grant: service unavailable: context deadline exceeded", err.Error())
}

func TestCoordinator_Revoke(t *testing.T) {
	mocks := setupTestCoordinator(t)

	detail := &domain.GrantDetail{Grant: domain.Grant{ID: grantID, AwardID: badge, RecipientID: alice, Status: domain.GrantStatusActive}}
	gomock.InOrder(
		mocks.ledger.EXPECT().GetByID(gomock.Any(), grantID).Return(detail, nil),
		mocks.ledger.EXPECT().SetStatus(gomock.Any(), grantID, domain.GrantStatusRevoked).Return(nil),
		mocks.unseen.EXPECT().Invalidate(gomock.Any(), alice).Return(nil),
	)

	assert.NoError(t, mocks.coordinator.Revoke(context.Background(), grantID))
}

func TestCoordinator_Revoke_NotFound(t *testing.T) {
	mocks := setupTestCoordinator(t)

	mocks.ledger.EXPECT().
		GetByID(gomock.Any(), grantID).
		Return(nil, fmt.Errorf("grant 11: %w", domain.ErrNotFound))

	err := mocks.coordinator.Revoke(context.Background(), grantID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCoordinator_Revoke_InvalidateFailureIsSwallowed(t *testing.T) {
	mocks := setupTestCoordinator(t)

	detail := &domain.GrantDetail{Grant: domain.Grant{ID: grantID, RecipientID: alice}}
	mocks.ledger.EXPECT().GetByID(gomock.Any(), grantID).Return(detail, nil)
	mocks.ledger.EXPECT().SetStatus(gomock.Any(), grantID, domain.GrantStatusRevoked).Return(nil)
	mocks.unseen.EXPECT().Invalidate(gomock.Any(), alice).Return(errors.New("redis down"))

	assert.NoError(t, mocks.coordinator.Revoke(context.Background(), grantID))
}
