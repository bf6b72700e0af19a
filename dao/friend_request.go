package dao

import (
	"time"

	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
)

type FriendRequestDao interface {
	//Add puts a phone into the user's pending friend requests; adding an existing phone only updates the note
	Add(userId uint32, phone, note string) (model.FriendRequestTarget, error)
	//GetAll returns the user's pending friend requests, oldest first
	GetAll(userId uint32) ([]model.FriendRequestTarget, error)
	//RemoveByPhone drops the phone from the user's pending friend requests
	RemoveByPhone(userId uint32, phone string) error
}

func NewFriendRequestDao(db Db) FriendRequestDao {
	return &friendRequestDao{db: db}
}

type friendRequestDao struct {
	db Db
}

func (f friendRequestDao) byPhone(userId uint32, phone string) ([]model.FriendRequestTarget, error) {
	var targets []model.FriendRequestTarget
	err := f.db.Select(q.Eq("UserId", userId), q.Eq("Phone", phone)).Find(&targets)
	return targets, ignoreNotFound(err)
}

func (f friendRequestDao) Add(userId uint32, phone, note string) (model.FriendRequestTarget, error) {
	existing, err := f.byPhone(userId, phone)
	if err != nil {
		return model.FriendRequestTarget{}, err
	}
	target := model.FriendRequestTarget{UserId: userId, Phone: phone, Note: note, CreatedAt: time.Now()}
	if len(existing) > 0 {
		target = existing[0]
		target.Note = note
	}
	err = f.db.Save(&target)
	return target, err
}

func (f friendRequestDao) GetAll(userId uint32) (targets []model.FriendRequestTarget, err error) {
	err = f.db.Select(q.Eq("UserId", userId)).OrderBy("CreatedAt").Find(&targets)
	err = ignoreNotFound(err)
	return
}

func (f friendRequestDao) RemoveByPhone(userId uint32, phone string) error {
	targets, err := f.byPhone(userId, phone)
	if err != nil {
		return err
	}
	for i := range targets {
		if err := f.db.DeleteStruct(&targets[i]); err != nil {
			return err
		}
	}
	return nil
}
