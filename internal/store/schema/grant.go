package schema

import "time"

// GrantStatus mirrors domain.GrantStatus at the storage layer
type GrantStatus string

const (
	GrantStatusActive  GrantStatus = "active"
	GrantStatusRevoked GrantStatus = "revoked"
)

// Grant represents the user_system_gifts table - one row per award given to a user.
// The unique index on (recipient_id, award_id) allows one lifetime grant per pair.
type Grant struct {
	// ID is the grant identifier assigned on insert
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AwardID references the granted award
	AwardID int64 `gorm:"column:award_id;not null;uniqueIndex:idx_user_system_gifts_recipient_award,priority:2"`
	// RecipientID is the user the award was granted to
	RecipientID int64 `gorm:"column:recipient_id;not null;uniqueIndex:idx_user_system_gifts_recipient_award,priority:1;index:idx_user_system_gifts_recipient_status,priority:1"`
	// RecipientDisplayName is the user's name at grant time
	RecipientDisplayName string `gorm:"column:recipient_display_name;not null;type:text"`
	// Status is active or revoked
	Status GrantStatus `gorm:"column:status;not null;type:varchar(16);default:'active';index:idx_user_system_gifts_recipient_status,priority:2"`
	// GrantedAt is set once on insert
	GrantedAt time.Time `gorm:"column:granted_at;not null;<-:create"`

	// Associations
	Award Award `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Grant model
func (Grant) TableName() string {
	return "user_system_gifts"
}

// GrantWithAward is the row shape of a grant joined with its award
type GrantWithAward struct {
	ID                   int64
	AwardID              int64
	RecipientID          int64
	RecipientDisplayName string
	Status               GrantStatus
	GrantedAt            time.Time
	AwardName            string
	AwardDescription     string
	AwardGivenCount      int64
}
