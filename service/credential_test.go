package service

import (
	"encoding/json"
	"testing"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/stretchr/testify/require"
)

func TestCredentialService_CreateNormalizesCookie(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewCredentialService(dao.NewCredentialDao(db))

	for i, cookie := range []string{
		`[{"name":"a","value":"1"},{"key":"b","val":"2"}]`,
		`{"cookies":[{"name":"a","value":"1"},{"name":"b","value":"2"}]}`,
		`"[{\"name\":\"a\",\"value\":\"1\"},{\"name\":\"b\",\"value\":\"2\"}]"`,
		`"a=1; b=2"`,
	} {
		cred, err := srv.Create(USER_ID, dto.CredentialInput{
			Name: "c" + string(rune('0'+i)), Cookie: json.RawMessage(cookie), Imei: "imei", UserAgent: "ua",
		})
		require.NoError(t, err, cookie)
		require.Equal(t, "a=1; b=2", cred.Cookie, cookie)
		require.True(t, cred.IsActive)
	}

	list, err := srv.List(USER_ID)
	require.NoError(t, err)
	require.Len(t, list, 4)
}

func TestCredentialService_Errors(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewCredentialService(dao.NewCredentialDao(db))

	var invalid *InvalidPayloadErr
	_, err := srv.Create(USER_ID, dto.CredentialInput{Name: "main", Imei: "imei", UserAgent: "ua"})
	require.ErrorAs(t, err, &invalid)
	_, err = srv.Create(USER_ID, dto.CredentialInput{Name: "main", Cookie: json.RawMessage(`42`), Imei: "imei", UserAgent: "ua"})
	require.ErrorAs(t, err, &invalid)

	in := dto.CredentialInput{Name: "main", Cookie: json.RawMessage(`"a=1"`), Imei: "imei", UserAgent: "ua"}
	first, err := srv.Create(USER_ID, in)
	require.NoError(t, err)

	var conflict *ConflictErr
	_, err = srv.Create(USER_ID, in)
	require.ErrorAs(t, err, &conflict)

	//the only live credential cannot go
	var last *LastActiveCredentialErr
	err = srv.Delete(USER_ID, first.Id, false)
	require.ErrorAs(t, err, &last)

	var notFound *NotFoundErr
	_, err = srv.Get(OTHER_USER, first.Id)
	require.ErrorAs(t, err, &notFound)
	_, err = srv.Activate(USER_ID, 42)
	require.ErrorAs(t, err, &notFound)
}

func TestCredentialService_UpdateActivateDelete(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewCredentialService(dao.NewCredentialDao(db))

	first, err := srv.Create(USER_ID, dto.CredentialInput{Name: "first", Cookie: json.RawMessage(`"a=1"`), Imei: "i", UserAgent: "ua"})
	require.NoError(t, err)
	second, err := srv.Create(USER_ID, dto.CredentialInput{Name: "second", Cookie: json.RawMessage(`"b=2"`), Imei: "i", UserAgent: "ua"})
	require.NoError(t, err)

	updated, err := srv.Update(USER_ID, dto.CredentialInput{Id: first.Id, Name: "renamed", Cookie: json.RawMessage(`[{"name":"c","value":"3"}]`), Imei: "i", UserAgent: "ua", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Name)
	require.Equal(t, "c=3", updated.Cookie)
	require.True(t, updated.IsActive)

	got, err := srv.Get(USER_ID, second.Id)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	var conflict *ConflictErr
	_, err = srv.Update(USER_ID, dto.CredentialInput{Id: second.Id, Name: "renamed", Cookie: json.RawMessage(`"b=2"`), Imei: "i", UserAgent: "ua"})
	require.ErrorAs(t, err, &conflict)

	activated, err := srv.Activate(USER_ID, second.Id)
	require.NoError(t, err)
	require.True(t, activated.IsActive)

	//archiving the active one hands activity to the remaining one
	require.NoError(t, srv.Delete(USER_ID, second.Id, false))
	got, err = srv.Get(USER_ID, first.Id)
	require.NoError(t, err)
	require.True(t, got.IsActive)
}
