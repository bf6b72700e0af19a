package service

import (
	"testing"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_Crud(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	srv := NewTemplateService(dao.NewTemplateDao(db), dao.NewRecipientDao(db))

	var invalid *InvalidPayloadErr
	_, err := srv.Create(USER_ID, dto.Template{Name: " "})
	require.ErrorAs(t, err, &invalid)

	tpl, err := srv.Create(USER_ID, dto.Template{Name: "greet", Content: "Hi (YYY) and xxx"})
	require.NoError(t, err)
	require.Equal(t, []string{"xxx", "yyy"}, tpl.Variables)
	require.True(t, tpl.IsActive)

	var conflict *ConflictErr
	_, err = srv.Create(USER_ID, dto.Template{Name: "greet", Content: "other"})
	require.ErrorAs(t, err, &conflict)

	_, err = srv.Update(USER_ID, dto.Template{Name: "greet", Content: "x"})
	require.ErrorAs(t, err, &invalid)

	updated, err := srv.Update(USER_ID, dto.Template{Id: tpl.Id, Name: "greet", Content: "Bye sdt"})
	require.NoError(t, err)
	require.Equal(t, []string{"sdt"}, updated.Variables)

	list, err := srv.List(USER_ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	var notFound *NotFoundErr
	_, err = srv.Get(OTHER_USER, tpl.Id)
	require.ErrorAs(t, err, &notFound)

	require.NoError(t, srv.Delete(USER_ID, tpl.Id))
	_, err = srv.Get(USER_ID, tpl.Id)
	require.ErrorAs(t, err, &notFound)

	//the name is free again once the template is gone
	_, err = srv.Create(USER_ID, dto.Template{Name: "greet", Content: "again"})
	require.NoError(t, err)
}

func TestTemplateService_Preview(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	recipientDao := dao.NewRecipientDao(db)
	srv := NewTemplateService(dao.NewTemplateDao(db), recipientDao)

	rec, err := recipientDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1, Xxx: "An", Sdt: "0909"})
	require.NoError(t, err)
	tpl, err := srv.Create(USER_ID, dto.Template{Name: "t", Content: "Hi xxx, your code is [sdt]"})
	require.NoError(t, err)

	preview, err := srv.Preview(USER_ID, dto.Preview{TemplateId: tpl.Id, RecipientId: rec.Id})
	require.NoError(t, err)
	require.Equal(t, "Hi An, your code is 0909", preview.Message)
	require.Equal(t, []string{"xxx", "sdt"}, preview.Variables)

	preview, err = srv.Preview(USER_ID, dto.Preview{Content: "{ XXX }!", Fields: map[string]string{"XXX": "Binh"}})
	require.NoError(t, err)
	require.Equal(t, "Binh!", preview.Message)

	var invalid *InvalidPayloadErr
	_, err = srv.Preview(USER_ID, dto.Preview{})
	require.ErrorAs(t, err, &invalid)

	var notFound *NotFoundErr
	_, err = srv.Preview(USER_ID, dto.Preview{Content: "x", RecipientId: 99})
	require.ErrorAs(t, err, &notFound)
}
