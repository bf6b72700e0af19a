package dao

import (
	"errors"
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/index"
	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/util"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrDuplicate            = errors.New("duplicate")
	ErrLastActiveCredential = errors.New("last active credential")
)

type Db interface {
	Init(data interface{}) error
	One(fieldName string, value interface{}, to interface{}) error
	Update(data interface{}) error
	UpdateField(data interface{}, fieldName string, value interface{}) error
	Save(data interface{}) error
	DeleteStruct(data interface{}) error
	Select(matchers ...q.Matcher) storm.Query
	Find(fieldName string, value interface{}, to interface{}, options ...func(q *index.Options)) error
	All(to interface{}, options ...func(*index.Options)) error
	Begin(writable bool) (storm.Node, error)
	Close() error
}

var (
	once     sync.Once
	instance Db
)

var models = []interface{}{
	&model.User{},
	&model.RefreshToken{},
	&model.Credential{},
	&model.Template{},
	&model.Recipient{},
	&model.FriendRequestTarget{},
	&model.SendLog{},
}

func GetClient(dbFilePath string) (Db, error) {
	var err error

	once.Do(func() {
		fresh := !util.FileExists(dbFilePath)
		instance, err = storm.Open(dbFilePath, storm.BoltOptions(0600, &bolt.Options{Timeout: 10 * time.Second, ReadOnly: false}))
		if err != nil {
			return
		}
		if !fresh {
			return
		}
		//init db structs
		for _, m := range models {
			if err = instance.Init(m); err != nil {
				return
			}
		}
	})

	return instance, err
}

func IsNotFound(err error) bool {
	return errors.Is(err, storm.ErrNotFound)
}

// ignoreNotFound turns storm's "not found" on empty selections into an empty result.
func ignoreNotFound(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return err
}
