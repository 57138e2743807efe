package schema

import "time"

// Award represents the system_gifts table - the catalog of awards that can be granted
type Award struct {
	// ID is the stable award key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name of the award
	Name string `gorm:"column:name;not null;type:text"`
	// Description explains what the award is given for
	Description string `gorm:"column:description;not null;type:text;default:''"`
	// GivenCount is the lifetime number of grants of this award. It is never decremented.
	GivenCount int64 `gorm:"column:given_count;not null;default:0"`
	// CreatedAt is the timestamp when this award was added to the catalog
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Award model
func (Award) TableName() string {
	return "system_gifts"
}
