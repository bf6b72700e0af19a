package model

import "time"

type Template struct {
	Id        uint32 `storm:"id,increment"`
	UserId    uint32 `storm:"index"`
	Name      string `storm:"index"`
	Content   string
	Variables []string
	IsActive  bool
	CreatedAt time.Time `storm:"index"`
	UpdatedAt time.Time
}
