package notification_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
	mockspkg "github.com/feral-file/ff-awards/internal/mocks"
	"github.com/feral-file/ff-awards/internal/notification"
)

func testConsumerConfig() notification.ConsumerConfig {
	return notification.ConsumerConfig{
		URL:            "nats://localhost:4222",
		StreamName:     "AWARD_EVENTS",
		ConsumerName:   "award-notifier",
		Subject:        "awards.granted",
		MaxReconnects:  10,
		ReconnectWait:  time.Second,
		ConnectionName: "test-notifier",
		AckWaitTimeout: 30 * time.Second,
		MaxDeliver:     5,
		RetryDelay:     time.Minute,
	}
}

func newTestConsumer(t *testing.T, mocks *testNotificationMocks) notification.Consumer {
	t.Helper()

	mocks.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	c, err := notification.NewConsumer(testConsumerConfig(), mocks.natsJS, mocks.deliverer, mocks.json)
	require.NoError(t, err)
	return c
}

func TestConsumer_NewConsumer_ConnectError(t *testing.T) {
	mocks := setupTestNotification(t)

	mocks.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	c, err := notification.NewConsumer(testConsumerConfig(), mocks.natsJS, mocks.deliverer, mocks.json)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestConsumer_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "AWARD_EVENTS", jetstream.ConsumerConfig{
			Durable:       "award-notifier",
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    5,
			FilterSubject: "awards.granted",
		}).
		Return(nil, assert.AnError)

	err := c.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestConsumer_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().Info(gomock.Any()).Return(nil, assert.AnError)
	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err := c.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

func TestConsumer_Run_ConsumeError(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "award-notifier"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err := c.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func testEvent() domain.AwardGrantedEvent {
	return domain.AwardGrantedEvent{
		EventID:     "01J0000000000000000000TEST",
		EventType:   domain.EVENT_TYPE_AWARD_GRANTED,
		Timestamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RecipientID: 7,
		AwardID:     3,
		GrantID:     11,
	}
}

// runWithMessage runs the consumer, delivers msg once and stops after the
// message is settled through the settled channel
func runWithMessage(t *testing.T, mocks *testNotificationMocks, c notification.Consumer, msg adapter.Message, settled <-chan struct{}) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeContext := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeContext.EXPECT().Stop().AnyTimes()

	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "award-notifier", NumPending: 1}, nil)
	consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			go func() {
				handler(msg)
				select {
				case <-settled:
				case <-time.After(5 * time.Second):
				}
				cancel()
			}()
			return consumeContext, nil
		})
	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- c.Run(ctx)
	}()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Test timed out")
	}
}

func TestConsumer_Run_DeliversAndAcks(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	data, err := mocks.json.Marshal(testEvent())
	require.NoError(t, err)

	settled := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data)
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(settled)
		return nil
	})

	mocks.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event domain.AwardGrantedEvent) error {
			assert.Equal(t, "01J0000000000000000000TEST", event.EventID)
			assert.Equal(t, domain.UserID(7), event.RecipientID)
			assert.Equal(t, domain.GrantID(11), event.GrantID)
			return nil
		})

	runWithMessage(t, mocks, c, msg, settled)
}

func TestConsumer_Run_TerminatesUndecodableMessage(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	settled := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return([]byte("{not json"))
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(settled)
		return nil
	})

	runWithMessage(t, mocks, c, msg, settled)
}

func TestConsumer_Run_TerminatesMissingRecipient(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	data, err := mocks.json.Marshal(testEvent())
	require.NoError(t, err)

	settled := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data)
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 2}, nil)
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(settled)
		return nil
	})

	mocks.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to look up recipient: %w", domain.ErrNotFound))

	runWithMessage(t, mocks, c, msg, settled)
}

func TestConsumer_Run_NaksTransientFailure(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	data, err := mocks.json.Marshal(testEvent())
	require.NoError(t, err)

	settled := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data)
	msg.EXPECT().Metadata().Return(nil, assert.AnError)
	msg.EXPECT().NakWithDelay(time.Minute).DoAndReturn(func(time.Duration) error {
		close(settled)
		return nil
	})

	mocks.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: smtp timeout", domain.ErrNotification))

	runWithMessage(t, mocks, c, msg, settled)
}

func TestConsumer_Close(t *testing.T) {
	mocks := setupTestNotification(t)
	c := newTestConsumer(t, mocks)

	mocks.natsConn.EXPECT().Close()
	c.Close()
}
