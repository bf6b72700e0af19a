package model

import "time"

type Recipient struct {
	Id           uint32 `storm:"id,increment"`
	UserId       uint32 `storm:"index"`
	Phone        string `storm:"index"`
	Xxx          string
	Yyy          string
	Sdt          string
	Ttt          string
	Zzz          string
	Www          string
	Uuu          string
	Vvv          string
	CustomFields map[string]string
	State        string    `storm:"index"`
	CreatedAt    time.Time `storm:"index"`
	UpdatedAt    time.Time
}

// Fields returns placeholder values keyed by lower-case placeholder name.
func (r Recipient) Fields() map[string]string {
	return map[string]string{
		"xxx": r.Xxx,
		"yyy": r.Yyy,
		"sdt": r.Sdt,
		"ttt": r.Ttt,
		"zzz": r.Zzz,
		"www": r.Www,
		"uuu": r.Uuu,
		"vvv": r.Vvv,
	}
}

// FriendRequestTarget is a phone waiting for a friend request. It is removed once the
// request goes through.
type FriendRequestTarget struct {
	Id        uint32 `storm:"id,increment"`
	UserId    uint32 `storm:"index"`
	Phone     string `storm:"index"`
	Note      string
	CreatedAt time.Time `storm:"index"`
}
