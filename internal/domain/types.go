package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UserID is the stable identifier of a user in the directory
type UserID int64

// AwardID is the stable key of an award in the catalog
type AwardID int64

// GrantID is the identifier assigned to a grant on insert
type GrantID int64

// String returns the decimal form of the user id
func (u UserID) String() string {
	return strconv.FormatInt(int64(u), 10)
}

// String returns the decimal form of the award id
func (a AwardID) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// String returns the decimal form of the grant id
func (g GrantID) String() string {
	return strconv.FormatInt(int64(g), 10)
}

// ParseUserID parses a positive user id
func ParseUserID(s string) (UserID, error) {
	id, err := parsePositiveID(s)
	return UserID(id), err
}

// ParseAwardID parses a positive award id
func ParseAwardID(s string) (AwardID, error) {
	id, err := parsePositiveID(s)
	return AwardID(id), err
}

// ParseGrantID parses a positive grant id
func ParseGrantID(s string) (GrantID, error) {
	id, err := parsePositiveID(s)
	return GrantID(id), err
}

func parsePositiveID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidArgument, id)
	}
	return id, nil
}

// GrantStatus is the lifecycle state of a grant
type GrantStatus string

const (
	GrantStatusActive  GrantStatus = "active"
	GrantStatusRevoked GrantStatus = "revoked"
)

// Valid reports whether the status is a known state
func (s GrantStatus) Valid() bool {
	return s == GrantStatusActive || s == GrantStatusRevoked
}

// Award is a catalog entry
type Award struct {
	ID          AwardID
	Name        string
	Description string
	GivenCount  int64
}

// Grant is one award given to one recipient
type Grant struct {
	ID                   GrantID
	AwardID              AwardID
	RecipientID          UserID
	RecipientDisplayName string
	Status               GrantStatus
	GrantedAt            time.Time
}

// GrantDetail is a grant joined with its award for display
type GrantDetail struct {
	Grant
	AwardName        string
	AwardDescription string
	AwardGivenCount  int64
}

// User is a directory entry of a potential award recipient
type User struct {
	ID             UserID
	Name           string
	RealName       string
	Email          string
	EmailConfirmed bool
	NotifyAwards   bool
}

// DisplayName returns the real name when set, otherwise the user name
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.RealName) != "" {
		return u.RealName
	}
	return u.Name
}

// WantsAwardEmail reports whether the user should receive award e-mails
func (u *User) WantsAwardEmail() bool {
	return u.Email != "" && u.EmailConfirmed && u.NotifyAwards
}

// GrantResult is the outcome of a grant attempt
type GrantResult struct {
	GrantID GrantID
	Granted bool
}

// AwardGrantedEvent is emitted after a grant has been committed
type AwardGrantedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	RecipientID UserID    `json:"recipient_id"`
	AwardID     AwardID   `json:"award_id"`
	GrantID     GrantID   `json:"grant_id"`
}
