package model

import "time"

// Credential is a named Zalo session: cookie, device imei and user agent, optionally routed
// through a proxy. At most one credential per user is active at a time.
type Credential struct {
	Id          uint32 `storm:"id,increment"`
	UserId      uint32 `storm:"index"`
	Name        string `storm:"index"`
	Cookie      string
	Imei        string
	UserAgent   string
	Proxy       string
	Avatar      string
	DisplayName string
	IsActive    bool
	State       string
	LastUsed    time.Time
	CreatedAt   time.Time `storm:"index"`
	UpdatedAt   time.Time
}

func (c Credential) IsLive() bool {
	return c.State != Archived
}
