package service

import (
	"context"
	"testing"
	"time"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/sender"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/zalo"
	"github.com/stretchr/testify/require"
)

type messagingFixture struct {
	srv      MessagingService
	gateway  *mockGateway
	session  *mockSession
	progress *sender.Progress

	credDao      dao.CredentialDao
	templateDao  dao.TemplateDao
	recipientDao dao.RecipientDao
	friendDao    dao.FriendRequestDao
	sendLogDao   dao.SendLogDao
}

func newMessagingFixture(t *testing.T) (*messagingFixture, func()) {
	db, cleanup := createDB(t)
	f := &messagingFixture{
		session:      &mockSession{unknown: map[string]bool{}, failSend: map[string]bool{}},
		progress:     sender.NewProgress(16),
		credDao:      dao.NewCredentialDao(db),
		templateDao:  dao.NewTemplateDao(db),
		recipientDao: dao.NewRecipientDao(db),
		friendDao:    dao.NewFriendRequestDao(db),
		sendLogDao:   dao.NewSendLogDao(db),
	}
	f.gateway = &mockGateway{session: f.session}
	orchestrator := sender.NewOrchestrator(sender.NewMemoryFlags(time.Hour), 5*time.Millisecond, 0)
	f.srv = NewMessagingService(f.gateway, orchestrator, f.progress, f.credDao, f.templateDao,
		f.recipientDao, f.friendDao, f.sendLogDao, 25*time.Second)
	return f, func() {
		f.progress.Shutdown()
		cleanup()
	}
}

func noDelay() *int {
	d := 0
	return &d
}

func (f *messagingFixture) addCredential(t *testing.T) uint32 {
	id, err := f.credDao.Create(model.Credential{UserId: USER_ID, Name: "main", Cookie: "zpw=1", Imei: "imei", UserAgent: "ua"})
	require.NoError(t, err)
	return id
}

func TestMessagingService_SendWithTemplate(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()
	credId := f.addCredential(t)

	tplId, err := f.templateDao.Create(model.Template{UserId: USER_ID, Name: "hello", Content: "Hi {xxx}, code [sdt]"})
	require.NoError(t, err)
	_, err = f.recipientDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1, Xxx: "An", Sdt: "1"})
	require.NoError(t, err)
	_, err = f.recipientDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE2, Xxx: "Binh", Sdt: "2"})
	require.NoError(t, err)
	f.session.failSend["uid-"+PHONE2] = true

	report, err := f.srv.Send(context.Background(), USER_ID, dto.Send{
		SessionId:    "s1",
		TemplateId:   tplId,
		Phones:       []string{PHONE1, PHONE2, PHONE1},
		DelaySeconds: noDelay(),
	})
	require.NoError(t, err)

	require.True(t, report.Success)
	require.Equal(t, "s1", report.SessionId)
	require.Equal(t, 2, report.Total)
	require.Equal(t, 1, report.SuccessCount)
	require.Equal(t, 1, report.FailureCount)
	require.False(t, report.Cancelled)
	require.Equal(t, "Hi An, code 1", report.Results[0].Message)
	require.True(t, report.Results[0].Success)
	require.Equal(t, "msg-uid-"+PHONE1, report.Results[0].MessageId)
	require.False(t, report.Results[1].Success)
	require.Contains(t, report.Results[1].Error, "rejected")

	require.Equal(t, []string{"uid-" + PHONE1 + ":Hi An, code 1"}, f.session.sent)
	require.Equal(t, "zpw=1", f.gateway.creds.Cookie)

	//sent recipients leave the working set, failed ones stay
	_, err = f.recipientDao.GetOneByPhone(USER_ID, PHONE1)
	require.True(t, dao.IsNotFound(err))
	_, err = f.recipientDao.GetOneByPhone(USER_ID, PHONE2)
	require.NoError(t, err)

	logs, err := f.sendLogDao.GetAll(USER_ID, "s1", 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		require.Equal(t, model.ModeMessage, l.Mode)
		require.Equal(t, tplId, l.TemplateId)
	}

	cred, err := f.credDao.GetOneById(USER_ID, credId)
	require.NoError(t, err)
	require.False(t, cred.LastUsed.IsZero())
}

func TestMessagingService_SendWorkingSetAndExplicitItems(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()
	f.addCredential(t)

	_, err := f.recipientDao.Upsert(model.Recipient{UserId: USER_ID, Phone: PHONE1, Xxx: "An"})
	require.NoError(t, err)
	f.session.unknown[PHONE3] = true

	report, err := f.srv.Send(context.Background(), USER_ID, dto.Send{
		Recipients:   []dto.SendItem{{Phone: PHONE3, Message: "custom"}, {Phone: PHONE2}},
		Message:      "Hello xxx",
		DelaySeconds: noDelay(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, report.SessionId)
	require.Equal(t, "custom", report.Results[0].Message)
	require.Equal(t, zalo.ErrContactNotFound.Error(), report.Results[0].Error)
	//unknown phone renders with empty fields
	require.Equal(t, "Hello ", report.Results[1].Message)

	//no selection sends to every active recipient
	report, err = f.srv.Send(context.Background(), USER_ID, dto.Send{Message: "Hello xxx", DelaySeconds: noDelay()})
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)
	require.Equal(t, "Hello An", report.Results[0].Message)
}

func TestMessagingService_SendValidation(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()

	var invalid *InvalidPayloadErr
	_, err := f.srv.Send(context.Background(), USER_ID, dto.Send{Phones: []string{PHONE1}})
	require.ErrorAs(t, err, &invalid)

	negative := -1
	_, err = f.srv.Send(context.Background(), USER_ID, dto.Send{Phones: []string{PHONE1}, Message: "hi", DelaySeconds: &negative})
	require.ErrorAs(t, err, &invalid)

	_, err = f.srv.Send(context.Background(), USER_ID, dto.Send{Phones: []string{" "}, Message: "hi"})
	require.ErrorAs(t, err, &invalid)

	var notFound *NotFoundErr
	_, err = f.srv.Send(context.Background(), USER_ID, dto.Send{Phones: []string{PHONE1}, Message: "hi", DelaySeconds: noDelay()})
	require.ErrorAs(t, err, &notFound)

	_, err = f.srv.Send(context.Background(), USER_ID, dto.Send{TemplateId: 42, Phones: []string{PHONE1}})
	require.ErrorAs(t, err, &notFound)

	f.addCredential(t)
	f.gateway.loginErr = zalo.ErrSessionExpired
	_, err = f.srv.Send(context.Background(), USER_ID, dto.Send{Phones: []string{PHONE1}, Message: "hi", DelaySeconds: noDelay()})
	require.ErrorAs(t, err, &invalid)
}

func TestMessagingService_SendEmptyWorkingSet(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()

	report, err := f.srv.Send(context.Background(), USER_ID, dto.Send{Message: "hi"})
	require.NoError(t, err)
	require.Equal(t, 0, report.Total)
	require.Equal(t, 0, report.CountdownTotalSeconds)
	require.Empty(t, report.Results)
}

func TestMessagingService_SendFriendRequests(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()
	f.addCredential(t)

	_, err := f.friendDao.Add(USER_ID, PHONE1, "")
	require.NoError(t, err)
	_, err = f.friendDao.Add(USER_ID, PHONE2, "")
	require.NoError(t, err)
	f.session.unknown[PHONE2] = true

	report, err := f.srv.SendFriendRequests(context.Background(), USER_ID, dto.Send{Message: "Add me", DelaySeconds: noDelay()})
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)
	require.Equal(t, 1, report.SuccessCount)
	require.Equal(t, []string{"uid-" + PHONE1 + ":Add me"}, f.session.requests)

	pending, err := f.friendDao.GetAll(USER_ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, PHONE2, pending[0].Phone)
}

func TestMessagingService_StopAndSubscribe(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()
	f.addCredential(t)

	sub, err := f.srv.Subscribe(USER_ID, "s2")
	require.NoError(t, err)

	delay := 1
	done := make(chan dto.SendReport)
	go func() {
		report, err := f.srv.Send(context.Background(), USER_ID, dto.Send{
			SessionId: "s2", Phones: []string{PHONE1, PHONE2}, Message: "hi", DelaySeconds: &delay,
		})
		require.NoError(t, err)
		done <- report
	}()

	//first tick event means the job runs
	ev := <-sub.Events()
	require.Equal(t, sender.EventTick, ev.(sender.Event).Kind)

	var notFound *NotFoundErr
	_, err = f.srv.Stop(context.Background(), OTHER_USER, "s2")
	require.ErrorAs(t, err, &notFound)
	_, err = f.srv.Subscribe(OTHER_USER, "s2")
	require.ErrorAs(t, err, &notFound)

	stopped, err := f.srv.Stop(context.Background(), USER_ID, "s2")
	require.NoError(t, err)
	require.True(t, stopped.Stopped)

	report := <-done
	require.True(t, report.Cancelled)
	require.Equal(t, 0, report.SuccessCount)
	require.Equal(t, string(sender.Pending), report.Results[0].Status)
	sub.Close()

	//stopping an unknown session is accepted
	_, err = f.srv.Stop(context.Background(), USER_ID, "unknown")
	require.NoError(t, err)
}

func TestMessagingService_Lookups(t *testing.T) {
	f, cleanup := newMessagingFixture(t)
	defer cleanup()
	f.addCredential(t)
	f.session.unknown[PHONE2] = true

	contact, err := f.srv.FindContact(context.Background(), USER_ID, dto.FindContact{Phone: PHONE1})
	require.NoError(t, err)
	require.Equal(t, "uid-"+PHONE1, contact.Id)

	var notFound *NotFoundErr
	_, err = f.srv.FindContact(context.Background(), USER_ID, dto.FindContact{Phone: PHONE2})
	require.ErrorAs(t, err, &notFound)

	friends, err := f.srv.Friends(context.Background(), USER_ID, 0)
	require.NoError(t, err)
	require.Len(t, friends, 1)

	groups, err := f.srv.Groups(context.Background(), USER_ID, 0)
	require.NoError(t, err)
	require.Equal(t, 3, groups[0].TotalMember)

	logs, err := f.srv.Logs(USER_ID, "", 0)
	require.NoError(t, err)
	require.Empty(t, logs)
}
