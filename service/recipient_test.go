package service

import (
	"testing"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/stretchr/testify/require"
)

func TestRecipientService_BulkUpsert(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewRecipientService(dao.NewRecipientDao(db))

	var invalid *InvalidPayloadErr
	_, err := srv.BulkUpsert(USER_ID, nil)
	require.ErrorAs(t, err, &invalid)

	result, err := srv.BulkUpsert(USER_ID, []dto.Recipient{
		{Phone: "0909 000 001", Xxx: "An"},
		{Xxx: "nobody"},
		{Phone: PHONE2, Xxx: "Binh"},
	})
	require.NoError(t, err)
	require.Equal(t, dto.Summary{Total: 3, Success: 2, Error: 1}, result.Summary)
	require.True(t, result.Results[0].Success)
	require.Equal(t, PHONE1, result.Results[0].Phone)
	require.False(t, result.Results[1].Success)
	require.NotEmpty(t, result.Results[1].Error)

	//upsert by phone overwrites
	_, err = srv.BulkUpsert(USER_ID, []dto.Recipient{{Phone: PHONE1, Xxx: "An2"}})
	require.NoError(t, err)

	list, err := srv.List(USER_ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	rec, err := srv.Get(USER_ID, result.Results[0].Id)
	require.NoError(t, err)
	require.Equal(t, "An2", rec.Xxx)
	require.Equal(t, model.Active, rec.State)
}

func TestRecipientService_UpdateAndDelete(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewRecipientService(dao.NewRecipientDao(db))

	result, err := srv.BulkUpsert(USER_ID, []dto.Recipient{{Phone: PHONE1}, {Phone: PHONE2}})
	require.NoError(t, err)
	id1, id2 := result.Results[0].Id, result.Results[1].Id

	var conflict *ConflictErr
	_, err = srv.Update(USER_ID, dto.Recipient{Id: id1, Phone: PHONE2})
	require.ErrorAs(t, err, &conflict)

	updated, err := srv.Update(USER_ID, dto.Recipient{Id: id1, Phone: PHONE3, Yyy: "y"})
	require.NoError(t, err)
	require.Equal(t, PHONE3, updated.Phone)

	var invalid *InvalidPayloadErr
	require.ErrorAs(t, srv.Delete(USER_ID, 0, "", false), &invalid)

	require.NoError(t, srv.Delete(USER_ID, 0, PHONE3, false))
	var notFound *NotFoundErr
	_, err = srv.Get(USER_ID, id1)
	require.ErrorAs(t, err, &notFound)

	//archived recipients come back on upsert
	result, err = srv.BulkUpsert(USER_ID, []dto.Recipient{{Phone: PHONE3}})
	require.NoError(t, err)
	require.Equal(t, id1, result.Results[0].Id)

	require.NoError(t, srv.Delete(USER_ID, id2, "", true))
	require.ErrorAs(t, srv.Delete(USER_ID, id2, "", true), &notFound)
	require.ErrorAs(t, srv.Delete(OTHER_USER, id1, "", false), &notFound)
}

func TestRecipientService_PurgeArchivedByPhone(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewRecipientService(dao.NewRecipientDao(db))

	result, err := srv.BulkUpsert(USER_ID, []dto.Recipient{{Phone: PHONE1}})
	require.NoError(t, err)
	id := result.Results[0].Id

	require.NoError(t, srv.Delete(USER_ID, 0, PHONE1, false))

	var notFound *NotFoundErr
	require.ErrorAs(t, srv.Delete(USER_ID, 0, PHONE1, false), &notFound)
	require.ErrorAs(t, srv.Delete(OTHER_USER, 0, PHONE1, true), &notFound)

	require.NoError(t, srv.Delete(USER_ID, 0, PHONE1, true))
	require.ErrorAs(t, srv.Delete(USER_ID, 0, PHONE1, true), &notFound)

	//purged for good: the phone comes back as a new record
	result, err = srv.BulkUpsert(USER_ID, []dto.Recipient{{Phone: PHONE1}})
	require.NoError(t, err)
	require.NotEqual(t, id, result.Results[0].Id)
}
