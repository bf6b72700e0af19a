package dao

import (
	"time"

	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/zalo-sender/model"
)

type RefreshTokenDao interface {
	//Create stores a token hash for the user and returns its id
	Create(userId uint32, tokenHash string, expiresAt time.Time) (uint32, error)
	//GetOneByHash returns the token with the given hash
	GetOneByHash(tokenHash string) (model.RefreshToken, error)
	//Revoke marks a single token as revoked
	Revoke(id uint32) error
	//RevokeAllForUser marks every token of the user as revoked
	RevokeAllForUser(userId uint32) error
	//RemoveExpired removes tokens which expired before the given time
	RemoveExpired(before time.Time) error
}

func NewRefreshTokenDao(db Db) RefreshTokenDao {
	return &refreshTokenDao{db: db}
}

type refreshTokenDao struct {
	db Db
}

func (r refreshTokenDao) Create(userId uint32, tokenHash string, expiresAt time.Time) (uint32, error) {
	token := &model.RefreshToken{UserId: userId, TokenHash: tokenHash, ExpiresAt: expiresAt, CreatedAt: time.Now()}
	err := r.db.Save(token)
	return token.Id, err
}

func (r refreshTokenDao) GetOneByHash(tokenHash string) (token model.RefreshToken, err error) {
	err = r.db.One("TokenHash", tokenHash, &token)
	return
}

func (r refreshTokenDao) Revoke(id uint32) error {
	return r.db.UpdateField(&model.RefreshToken{Id: id}, "Revoked", true)
}

func (r refreshTokenDao) RevokeAllForUser(userId uint32) error {
	var tokens []model.RefreshToken
	err := r.db.Select(q.Eq("UserId", userId), q.Eq("Revoked", false)).Find(&tokens)
	if err != nil {
		return ignoreNotFound(err)
	}
	for _, token := range tokens {
		if err := r.Revoke(token.Id); err != nil {
			return err
		}
	}
	return nil
}

func (r refreshTokenDao) RemoveExpired(before time.Time) error {
	err := r.db.Select(q.Lt("ExpiresAt", before)).Delete(&model.RefreshToken{})
	return ignoreNotFound(err)
}
