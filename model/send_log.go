package model

import "time"

const (
	ModeMessage       = "MESSAGE"
	ModeFriendRequest = "FRIEND_REQUEST"
)

type SendLog struct {
	Id           uint32 `storm:"id,increment"`
	UserId       uint32 `storm:"index"`
	SessionId    string `storm:"index"`
	Mode         string
	Phone        string `storm:"index"`
	ContactId    string
	Message      string
	TemplateId   uint32
	Success      bool
	Error        string
	MessageId    string
	DelaySeconds int
	SentAt       time.Time `storm:"index"`
}
