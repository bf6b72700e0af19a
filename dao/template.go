package dao

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
)

type TemplateDao interface {
	//Create stores a template and returns its id, ErrDuplicate when the user already has an active template with that name
	Create(tpl model.Template) (uint32, error)
	//Update overwrites name, content and variables of the user's template
	Update(tpl model.Template) (model.Template, error)
	//GetById returns the user's active template with the given id
	GetById(userId, id uint32) (model.Template, error)
	//GetAllActive returns the user's active templates, newest first
	GetAllActive(userId uint32) ([]model.Template, error)
	//Deactivate soft deletes the user's template
	Deactivate(userId, id uint32) error
}

func NewTemplateDao(db Db) TemplateDao {
	return &templateDao{db: db}
}

type templateDao struct {
	db Db
}

func (t templateDao) nameTaken(userId uint32, name string, exceptId uint32) (bool, error) {
	var found []model.Template
	err := t.db.Select(q.Eq("UserId", userId), q.Eq("Name", name), q.Eq("IsActive", true)).Find(&found)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	for _, tpl := range found {
		if tpl.Id != exceptId {
			return true, nil
		}
	}
	return false, nil
}

func (t templateDao) Create(tpl model.Template) (uint32, error) {
	taken, err := t.nameTaken(tpl.UserId, tpl.Name, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicate
	}

	now := time.Now()
	tpl.Id = 0
	tpl.IsActive = true
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	err = t.db.Save(&tpl)
	return tpl.Id, err
}

func (t templateDao) Update(tpl model.Template) (model.Template, error) {
	stored, err := t.GetById(tpl.UserId, tpl.Id)
	if err != nil {
		return model.Template{}, err
	}
	taken, err := t.nameTaken(tpl.UserId, tpl.Name, tpl.Id)
	if err != nil {
		return model.Template{}, err
	}
	if taken {
		return model.Template{}, ErrDuplicate
	}

	stored.Name = tpl.Name
	stored.Content = tpl.Content
	stored.Variables = tpl.Variables
	stored.UpdatedAt = time.Now()
	err = t.db.Save(&stored)
	return stored, err
}

func (t templateDao) GetById(userId, id uint32) (tpl model.Template, err error) {
	err = t.db.One("Id", id, &tpl)
	if err == nil && (tpl.UserId != userId || !tpl.IsActive) {
		return model.Template{}, storm.ErrNotFound
	}
	return
}

func (t templateDao) GetAllActive(userId uint32) (templates []model.Template, err error) {
	err = t.db.Select(q.Eq("UserId", userId), q.Eq("IsActive", true)).OrderBy("CreatedAt").Reverse().Find(&templates)
	err = ignoreNotFound(err)
	return
}

func (t templateDao) Deactivate(userId, id uint32) error {
	tpl, err := t.GetById(userId, id)
	if err != nil {
		return err
	}
	return t.db.UpdateField(&model.Template{Id: tpl.Id}, "IsActive", false)
}
