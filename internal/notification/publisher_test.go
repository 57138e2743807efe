package notification_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
	mockspkg "github.com/feral-file/ff-awards/internal/mocks"
	"github.com/feral-file/ff-awards/internal/notification"
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

// testNotificationMocks contains all the mocks needed for the gateway and consumer
type testNotificationMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	clock     *mockspkg.MockClock
	deliverer *mockspkg.MockDeliverer
	json      adapter.JSON
}

func setupTestNotification(t *testing.T) *testNotificationMocks {
	ctrl := gomock.NewController(t)

	return &testNotificationMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		clock:     mockspkg.NewMockClock(ctrl),
		deliverer: mockspkg.NewMockDeliverer(ctrl),
		json:      adapter.NewJSON(),
	}
}

func testPublisherConfig() notification.PublisherConfig {
	return notification.PublisherConfig{
		URL:            "nats://localhost:4222",
		StreamName:     "AWARD_EVENTS",
		Subject:        "awards.granted",
		MaxReconnects:  10,
		ReconnectWait:  time.Second,
		ConnectionName: "test-publisher",
		MaxAge:         24 * time.Hour,
	}
}

func TestPublisher_NewPublisher_Success(t *testing.T) {
	mocks := setupTestNotification(t)
	config := testPublisherConfig()

	mocks.natsJS.EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)
	mocks.jetStream.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cfg jetstream.StreamConfig) error {
			assert.Equal(t, "AWARD_EVENTS", cfg.Name)
			assert.Equal(t, []string{"awards.granted"}, cfg.Subjects)
			assert.Equal(t, 24*time.Hour, cfg.MaxAge)
			assert.Positive(t, cfg.Duplicates)
			return nil
		})

	p, err := notification.NewPublisher(context.Background(), config, mocks.natsJS, mocks.json, mocks.clock)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestPublisher_NewPublisher_ConnectError(t *testing.T) {
	mocks := setupTestNotification(t)

	mocks.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	p, err := notification.NewPublisher(context.Background(), testPublisherConfig(), mocks.natsJS, mocks.json, mocks.clock)
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublisher_NewPublisher_StreamErrorClosesConnection(t *testing.T) {
	mocks := setupTestNotification(t)

	mocks.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)
	mocks.jetStream.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	mocks.natsConn.EXPECT().Close()

	p, err := notification.NewPublisher(context.Background(), testPublisherConfig(), mocks.natsJS, mocks.json, mocks.clock)
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "AWARD_EVENTS")
}

func newTestPublisher(t *testing.T, mocks *testNotificationMocks) *notification.Publisher {
	t.Helper()

	mocks.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)
	mocks.jetStream.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil)

	p, err := notification.NewPublisher(context.Background(), testPublisherConfig(), mocks.natsJS, mocks.json, mocks.clock)
	require.NoError(t, err)
	return p
}

func TestPublisher_Notify(t *testing.T) {
	mocks := setupTestNotification(t)
	p := newTestPublisher(t, mocks)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mocks.clock.EXPECT().Now().Return(now)

	var published []byte
	mocks.jetStream.EXPECT().
		Publish(gomock.Any(), "awards.granted", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			published = data
			assert.Len(t, opts, 1, "publish carries a message id for dedup")
			return &jetstream.PubAck{Stream: "AWARD_EVENTS", Sequence: 1}, nil
		})

	err := p.Notify(context.Background(), 7, 3, 11)
	require.NoError(t, err)

	var event domain.AwardGrantedEvent
	require.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, domain.EVENT_TYPE_AWARD_GRANTED, event.EventType)
	assert.Equal(t, domain.UserID(7), event.RecipientID)
	assert.Equal(t, domain.AwardID(3), event.AwardID)
	assert.Equal(t, domain.GrantID(11), event.GrantID)
	assert.True(t, now.Equal(event.Timestamp))
	assert.Len(t, event.EventID, 26)
}

func TestPublisher_Notify_PublishError(t *testing.T) {
	mocks := setupTestNotification(t)
	p := newTestPublisher(t, mocks)

	mocks.clock.EXPECT().Now().Return(time.Now())
	mocks.jetStream.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err := p.Notify(context.Background(), 7, 3, 11)
	assert.ErrorIs(t, err, domain.ErrNotification)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPublisher_Notify_MarshalError(t *testing.T) {
	mocks := setupTestNotification(t)
	jsonMock := mockspkg.NewMockJSON(mocks.ctrl)
	mocks.json = jsonMock
	p := newTestPublisher(t, mocks)

	mocks.clock.EXPECT().Now().Return(time.Now())
	jsonMock.EXPECT().Marshal(gomock.Any()).Return(nil, assert.AnError)

	err := p.Notify(context.Background(), 7, 3, 11)
	assert.ErrorIs(t, err, domain.ErrNotification)
	assert.Contains(t, err.Error(), "failed to marshal event")
}

func TestPublisher_Close(t *testing.T) {
	t.Run("drain", func(t *testing.T) {
		mocks := setupTestNotification(t)
		p := newTestPublisher(t, mocks)

		mocks.natsConn.EXPECT().Drain().Return(nil)
		p.Close()
	})

	t.Run("drain failure closes", func(t *testing.T) {
		mocks := setupTestNotification(t)
		p := newTestPublisher(t, mocks)

		mocks.natsConn.EXPECT().Drain().Return(assert.AnError)
		mocks.natsConn.EXPECT().Close()
		p.Close()
	})
}

func TestNoopGateway(t *testing.T) {
	gw := notification.NewNoopGateway()
	assert.NoError(t, gw.Notify(context.Background(), 1, 2, 3))
}
