package dao

import (
	"testing"

	"github.com/dilshat/zalo-sender/model"
	"github.com/stretchr/testify/require"
)

const (
	USER_ID    = uint32(7)
	OTHER_USER = uint32(8)
)

func activeIds(t *testing.T, d CredentialDao, userId uint32) []uint32 {
	all, err := d.GetAllLive(userId)
	require.NoError(t, err)
	var ids []uint32
	for _, c := range all {
		if c.IsActive {
			ids = append(ids, c.Id)
		}
	}
	return ids
}

func TestCredentialDao_CreateActivatesNewest(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	credDao := NewCredentialDao(db)

	id1, err := credDao.Create(model.Credential{UserId: USER_ID, Name: "first", Cookie: "a=1"})
	require.NoError(t, err)
	id2, err := credDao.Create(model.Credential{UserId: USER_ID, Name: "second", Cookie: "b=2"})
	require.NoError(t, err)

	require.Equal(t, []uint32{id2}, activeIds(t, credDao, USER_ID))

	first, err := credDao.GetOneById(USER_ID, id1)
	require.NoError(t, err)
	require.False(t, first.IsActive)
	require.Equal(t, model.Live, first.State)
}

func TestCredentialDao_CreateDuplicateName(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	credDao := NewCredentialDao(db)

	_, err := credDao.Create(model.Credential{UserId: USER_ID, Name: "main"})
	require.NoError(t, err)

	_, err = credDao.Create(model.Credential{UserId: USER_ID, Name: "main"})
	require.Equal(t, ErrDuplicate, err)

	//names are scoped per user
	_, err = credDao.Create(model.Credential{UserId: OTHER_USER, Name: "main"})
	require.NoError(t, err)
}

func TestCredentialDao_UpdateActivateIsIdempotent(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	credDao := NewCredentialDao(db)

	id1, _ := credDao.Create(model.Credential{UserId: USER_ID, Name: "first"})
	id2, _ := credDao.Create(model.Credential{UserId: USER_ID, Name: "second"})

	updated, err := credDao.Update(model.Credential{Id: id1, UserId: USER_ID, Name: "first", Imei: "imei"}, true)
	require.NoError(t, err)
	require.True(t, updated.IsActive)
	require.Equal(t, "imei", updated.Imei)
	require.Equal(t, []uint32{id1}, activeIds(t, credDao, USER_ID))

	_, err = credDao.Activate(USER_ID, id1)
	require.NoError(t, err)
	require.Equal(t, []uint32{id1}, activeIds(t, credDao, USER_ID))

	_, err = credDao.Activate(USER_ID, id2)
	require.NoError(t, err)
	require.Equal(t, []uint32{id2}, activeIds(t, credDao, USER_ID))
}

func TestCredentialDao_UpdateNotOwned(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	credDao := NewCredentialDao(db)

	id, _ := credDao.Create(model.Credential{UserId: USER_ID, Name: "first"})

	_, err := credDao.Update(model.Credential{Id: id, UserId: OTHER_USER, Name: "x"}, false)
	require.True(t, IsNotFound(err))

	_, err = credDao.Activate(OTHER_USER, id)
	require.True(t, IsNotFound(err))
}

func TestCredentialDao_DeleteLastActiveRejected(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	credDao := NewCredentialDao(db)

	id, _ := credDao.Create(model.Credential{UserId: USER_ID, Name: "only"})

	require.Equal(t, ErrLastActiveCredential, credDao.Delete(USER_ID, id, false))
	require.Equal(t, ErrLastActiveCredential, credDao.Delete(USER_ID, id, true))

	still, err := credDao.GetActive(USER_ID)
	require.NoError(t, err)
	require.Equal(t, id, still.Id)
}

func TestCredentialDao_DeleteOneOfTwoPromotesOther(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	credDao := NewCredentialDao(db)

	id1, _ := credDao.Create(model.Credential{UserId: USER_ID, Name: "first"})
	id2, _ := credDao.Create(model.Credential{UserId: USER_ID, Name: "second"})

	require.NoError(t, credDao.Delete(USER_ID, id2, false))

	active, err := credDao.GetActive(USER_ID)
	require.NoError(t, err)
	require.Equal(t, id1, active.Id)

	_, err = credDao.GetOneById(USER_ID, id2)
	require.True(t, IsNotFound(err))

	//archived one can still be purged, the remaining live one cannot
	require.NoError(t, credDao.Delete(USER_ID, id2, true))
	require.Equal(t, ErrLastActiveCredential, credDao.Delete(USER_ID, id1, false))
}

func TestCredentialDao_GetActiveNone(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()

	_, err := NewCredentialDao(db).GetActive(USER_ID)

	require.True(t, IsNotFound(err))
}
