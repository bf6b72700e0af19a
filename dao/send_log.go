package dao

import (
	"time"

	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
)

type SendLogDao interface {
	//Create stores one dispatch outcome
	Create(entry model.SendLog) (uint32, error)
	//GetAll returns the user's send logs, newest first; an empty session id returns logs of every session
	GetAll(userId uint32, sessionId string, limit int) ([]model.SendLog, error)
	//RemoveOlderThanDays removes all send logs older than {days}
	RemoveOlderThanDays(days int) error
}

func NewSendLogDao(db Db) SendLogDao {
	return &sendLogDao{db: db}
}

type sendLogDao struct {
	db Db
}

func (s sendLogDao) Create(entry model.SendLog) (uint32, error) {
	entry.Id = 0
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}
	err := s.db.Save(&entry)
	return entry.Id, err
}

func (s sendLogDao) GetAll(userId uint32, sessionId string, limit int) (logs []model.SendLog, err error) {
	matchers := []q.Matcher{q.Eq("UserId", userId)}
	if sessionId != "" {
		matchers = append(matchers, q.Eq("SessionId", sessionId))
	}
	query := s.db.Select(matchers...).OrderBy("SentAt").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}
	err = ignoreNotFound(query.Find(&logs))
	return
}

func (s sendLogDao) RemoveOlderThanDays(days int) error {
	err := s.db.Select(q.Lt("SentAt", time.Now().Add(-24*time.Duration(days)*time.Hour))).Delete(&model.SendLog{})
	return ignoreNotFound(err)
}
