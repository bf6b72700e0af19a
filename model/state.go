package model

// Stored lifecycle states. Purging deletes the record, so it has no constant.
const (
	// Active recipients are listed and targeted by sends.
	Active = "ACTIVE"
	// Live credentials may be selected as the active one.
	Live = "LIVE"
	// Archived is the soft-deleted state of both.
	Archived = "ARCHIVED"
)
