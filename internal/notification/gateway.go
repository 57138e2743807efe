package notification

import (
	"context"

	"github.com/feral-file/ff-awards/internal/domain"
)

// Gateway delivers award notifications. Delivery is best-effort: the grant is
// committed before Notify runs and a failure never rolls it back.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway,Deliverer=MockDeliverer
type Gateway interface {
	// Notify announces a committed grant. Failures wrap domain.ErrNotification.
	Notify(ctx context.Context, recipientID domain.UserID, awardID domain.AwardID, grantID domain.GrantID) error
}

// Deliverer turns a granted-award event into a message for the recipient
type Deliverer interface {
	Deliver(ctx context.Context, event domain.AwardGrantedEvent) error
}

// NoopGateway drops every notification
type NoopGateway struct{}

// NewNoopGateway creates a gateway used when no broker is configured
func NewNoopGateway() Gateway {
	return NoopGateway{}
}

// Notify does nothing
func (NoopGateway) Notify(context.Context, domain.UserID, domain.AwardID, domain.GrantID) error {
	return nil
}
