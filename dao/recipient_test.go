package dao

import (
	"testing"

	"github.com/dilshat/zalo-sender/model"
	"github.com/stretchr/testify/require"
)

const (
	PHONE1 = "0909123456"
	PHONE2 = "0912987654"
)

func TestRecipientDao_UpsertCreatesThenOverwrites(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	recDao := NewRecipientDao(db)

	created, err := recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1, Xxx: "An"})
	require.NoError(t, err)
	require.True(t, created.Id > 0)
	require.Equal(t, model.Active, created.State)

	updated, err := recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1, Xxx: "Binh"})
	require.NoError(t, err)
	require.Equal(t, created.Id, updated.Id)

	all, err := recDao.GetAllActive(USER_ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Binh", all[0].Xxx)
}

func TestRecipientDao_Lifecycle(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	recDao := NewRecipientDao(db)

	rec, _ := recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1})

	require.NoError(t, recDao.Archive(USER_ID, rec.Id))
	_, err := recDao.GetById(USER_ID, rec.Id)
	require.True(t, IsNotFound(err))

	//upsert revives archived phone
	revived, err := recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1})
	require.NoError(t, err)
	require.Equal(t, rec.Id, revived.Id)
	require.Equal(t, model.Active, revived.State)

	require.NoError(t, recDao.Purge(USER_ID, rec.Id))
	var gone model.Recipient
	require.True(t, IsNotFound(db.One("Id", rec.Id, &gone)))
}

func TestRecipientDao_ArchiveByPhone(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	recDao := NewRecipientDao(db)

	_, _ = recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1})
	_, _ = recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE2})

	require.NoError(t, recDao.ArchiveByPhone(USER_ID, PHONE1))
	require.NoError(t, recDao.ArchiveByPhone(USER_ID, "unknown"))

	_, err := recDao.GetOneByPhone(USER_ID, PHONE1)
	require.True(t, IsNotFound(err))
	archived, err := recDao.GetAnyByPhone(USER_ID, PHONE1)
	require.NoError(t, err)
	require.Equal(t, model.Archived, archived.State)
	_, err = recDao.GetAnyByPhone(OTHER_USER, PHONE1)
	require.True(t, IsNotFound(err))

	all, err := recDao.GetAllActive(USER_ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, PHONE2, all[0].Phone)
}

func TestRecipientDao_OwnerScoping(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	recDao := NewRecipientDao(db)

	rec, _ := recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1})

	_, err := recDao.GetById(OTHER_USER, rec.Id)
	require.True(t, IsNotFound(err))
	require.True(t, IsNotFound(recDao.Purge(OTHER_USER, rec.Id)))

	other, err := recDao.GetAllActive(OTHER_USER)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestRecipientDao_UpdatePhoneConflict(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	recDao := NewRecipientDao(db)

	rec1, _ := recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1})
	_, _ = recDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE2})

	_, err := recDao.Update(model.Recipient{Id: rec1.Id, UserId: USER_ID, Phone: PHONE2})
	require.Equal(t, ErrDuplicate, err)

	updated, err := recDao.Update(model.Recipient{Id: rec1.Id, UserId: USER_ID, Phone: PHONE1, Sdt: "0909"})
	require.NoError(t, err)
	require.Equal(t, "0909", updated.Sdt)
	require.Equal(t, model.Active, updated.State)
}
