package domain

const (
	// Pagination defaults
	DEFAULT_AWARDS_LIMIT = 20
	MAX_AWARDS_LIMIT     = 200

	// Event types
	EVENT_TYPE_AWARD_GRANTED = "award.granted"
)
