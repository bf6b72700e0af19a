package dao

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
)

type RecipientDao interface {
	//Upsert creates the user's recipient or overwrites the one with the same phone, reviving it if archived
	Upsert(rec model.Recipient) (model.Recipient, error)
	//Update overwrites phone and fields of the user's recipient with the given id
	Update(rec model.Recipient) (model.Recipient, error)
	//GetById returns the user's active recipient with the given id
	GetById(userId, id uint32) (model.Recipient, error)
	//GetOneByPhone returns the user's active recipient with the given phone
	GetOneByPhone(userId uint32, phone string) (model.Recipient, error)
	//GetAnyByPhone returns the user's recipient with the given phone, archived ones included
	GetAnyByPhone(userId uint32, phone string) (model.Recipient, error)
	//GetAllActive returns the user's active recipients, newest first
	GetAllActive(userId uint32) ([]model.Recipient, error)
	//Archive soft deletes the user's recipient
	Archive(userId, id uint32) error
	//ArchiveByPhone soft deletes the user's recipient with the given phone, if any
	ArchiveByPhone(userId uint32, phone string) error
	//Purge removes the user's recipient regardless of its state
	Purge(userId, id uint32) error
}

func NewRecipientDao(db Db) RecipientDao {
	return &recipientDao{db: db}
}

type recipientDao struct {
	db Db
}

func (r recipientDao) findByPhone(userId uint32, phone string) (model.Recipient, error) {
	var recipients []model.Recipient
	err := r.db.Select(q.Eq("UserId", userId), q.Eq("Phone", phone)).Limit(1).Find(&recipients)
	if err != nil {
		return model.Recipient{}, err
	}
	return recipients[0], nil
}

func (r recipientDao) Upsert(rec model.Recipient) (model.Recipient, error) {
	now := time.Now()
	stored, err := r.findByPhone(rec.UserId, rec.Phone)
	switch {
	case err == nil:
		rec.Id = stored.Id
		rec.CreatedAt = stored.CreatedAt
	case IsNotFound(err):
		rec.Id = 0
		rec.CreatedAt = now
	default:
		return model.Recipient{}, err
	}

	rec.State = model.Active
	rec.UpdatedAt = now
	err = r.db.Save(&rec)
	return rec, err
}

func (r recipientDao) Update(rec model.Recipient) (model.Recipient, error) {
	stored, err := r.GetById(rec.UserId, rec.Id)
	if err != nil {
		return model.Recipient{}, err
	}
	if rec.Phone != stored.Phone {
		other, err := r.findByPhone(rec.UserId, rec.Phone)
		if err == nil && other.Id != stored.Id {
			return model.Recipient{}, ErrDuplicate
		}
		if err != nil && !IsNotFound(err) {
			return model.Recipient{}, err
		}
	}

	rec.State = stored.State
	rec.CreatedAt = stored.CreatedAt
	rec.UpdatedAt = time.Now()
	err = r.db.Save(&rec)
	return rec, err
}

func (r recipientDao) GetById(userId, id uint32) (rec model.Recipient, err error) {
	err = r.db.One("Id", id, &rec)
	if err == nil && (rec.UserId != userId || rec.State != model.Active) {
		return model.Recipient{}, storm.ErrNotFound
	}
	return
}

func (r recipientDao) GetOneByPhone(userId uint32, phone string) (model.Recipient, error) {
	rec, err := r.findByPhone(userId, phone)
	if err == nil && rec.State != model.Active {
		return model.Recipient{}, storm.ErrNotFound
	}
	return rec, err
}

func (r recipientDao) GetAnyByPhone(userId uint32, phone string) (model.Recipient, error) {
	return r.findByPhone(userId, phone)
}

func (r recipientDao) GetAllActive(userId uint32) (recipients []model.Recipient, err error) {
	err = r.db.Select(q.Eq("UserId", userId), q.Eq("State", model.Active)).OrderBy("CreatedAt").Reverse().Find(&recipients)
	err = ignoreNotFound(err)
	return
}

func (r recipientDao) Archive(userId, id uint32) error {
	rec, err := r.GetById(userId, id)
	if err != nil {
		return err
	}
	return r.archive(rec)
}

func (r recipientDao) ArchiveByPhone(userId uint32, phone string) error {
	rec, err := r.GetOneByPhone(userId, phone)
	if err != nil {
		return ignoreNotFound(err)
	}
	return r.archive(rec)
}

func (r recipientDao) archive(rec model.Recipient) error {
	rec.State = model.Archived
	rec.UpdatedAt = time.Now()
	return r.db.Save(&rec)
}

func (r recipientDao) Purge(userId, id uint32) error {
	var rec model.Recipient
	if err := r.db.One("Id", id, &rec); err != nil {
		return err
	}
	if rec.UserId != userId {
		return storm.ErrNotFound
	}
	return r.db.DeleteStruct(&rec)
}
