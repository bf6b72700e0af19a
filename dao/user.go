package dao

import (
	"errors"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
)

type UserDao interface {
	//Create stores a new user and returns its id, ErrDuplicate when username or email is taken
	Create(user model.User) (uint32, error)
	//GetOneById returns the user with the given id
	GetOneById(id uint32) (model.User, error)
	//GetOneByUsername returns the user with the given username
	GetOneByUsername(username string) (model.User, error)
	//UpdateLastLogin sets the last login time of the user
	UpdateLastLogin(id uint32, at time.Time) error
}

func NewUserDao(db Db) UserDao {
	return &userDao{db: db}
}

type userDao struct {
	db Db
}

func (u userDao) Create(user model.User) (uint32, error) {
	var existing []model.User
	err := u.db.Select(q.Or(q.Eq("Username", user.Username), q.Eq("Email", user.Email))).Limit(1).Find(&existing)
	if err = ignoreNotFound(err); err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, ErrDuplicate
	}

	now := time.Now()
	user.Id = 0
	user.CreatedAt = now
	user.UpdatedAt = now
	err = u.db.Save(&user)
	if errors.Is(err, storm.ErrAlreadyExists) {
		return 0, ErrDuplicate
	}
	return user.Id, err
}

func (u userDao) GetOneById(id uint32) (user model.User, err error) {
	err = u.db.One("Id", id, &user)
	return
}

func (u userDao) GetOneByUsername(username string) (user model.User, err error) {
	err = u.db.One("Username", username, &user)
	return
}

func (u userDao) UpdateLastLogin(id uint32, at time.Time) error {
	return u.db.UpdateField(&model.User{Id: id}, "LastLogin", at)
}
