package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/render"
	"github.com/dilshat/zalo-sender/sender"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/util"
	"github.com/dilshat/zalo-sender/zalo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLogsLimit = 500

type MessagingService interface {
	// Send runs a paced message job and returns once it is done or stopped.
	Send(ctx context.Context, userId uint32, req dto.Send) (dto.SendReport, error)
	// SendFriendRequests is Send for friend requests.
	SendFriendRequests(ctx context.Context, userId uint32, req dto.Send) (dto.SendReport, error)
	Stop(ctx context.Context, userId uint32, sessionId string) (dto.Stopped, error)
	FindContact(ctx context.Context, userId uint32, req dto.FindContact) (dto.Contact, error)
	Friends(ctx context.Context, userId, credentialId uint32) ([]dto.Contact, error)
	Groups(ctx context.Context, userId, credentialId uint32) ([]dto.Group, error)
	Logs(userId uint32, sessionId string, limit int) ([]dto.SendLog, error)
	// Subscribe streams progress events of a session until its job is done.
	Subscribe(userId uint32, sessionId string) (*sender.Subscription, error)
}

type messagingService struct {
	gateway          zalo.Gateway
	orchestrator     *sender.Orchestrator
	progress         *sender.Progress
	credentialDao    dao.CredentialDao
	templateDao      dao.TemplateDao
	recipientDao     dao.RecipientDao
	friendRequestDao dao.FriendRequestDao
	sendLogDao       dao.SendLogDao
	defaultDelay     time.Duration
	sessions         *sessionOwners
}

func NewMessagingService(gateway zalo.Gateway, orchestrator *sender.Orchestrator, progress *sender.Progress,
	credentialDao dao.CredentialDao, templateDao dao.TemplateDao, recipientDao dao.RecipientDao,
	friendRequestDao dao.FriendRequestDao, sendLogDao dao.SendLogDao, defaultDelay time.Duration) MessagingService {
	return &messagingService{
		gateway:          gateway,
		orchestrator:     orchestrator,
		progress:         progress,
		credentialDao:    credentialDao,
		templateDao:      templateDao,
		recipientDao:     recipientDao,
		friendRequestDao: friendRequestDao,
		sendLogDao:       sendLogDao,
		defaultDelay:     defaultDelay,
		sessions:         newSessionOwners(),
	}
}

// sessionOwners remembers which user runs which session.
type sessionOwners struct {
	mu     sync.Mutex
	owners map[string]uint32
}

func newSessionOwners() *sessionOwners {
	return &sessionOwners{owners: make(map[string]uint32)}
}

func (o *sessionOwners) claim(sessionId string, userId uint32) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.owners[sessionId]; ok {
		return false
	}
	o.owners[sessionId] = userId
	return true
}

func (o *sessionOwners) ownedByOther(sessionId string, userId uint32) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	owner, ok := o.owners[sessionId]
	return ok && owner != userId
}

func (o *sessionOwners) release(sessionId string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.owners, sessionId)
}

func (s *messagingService) Send(ctx context.Context, userId uint32, req dto.Send) (dto.SendReport, error) {
	return s.run(ctx, userId, sender.ModeMessage, req)
}

func (s *messagingService) SendFriendRequests(ctx context.Context, userId uint32, req dto.Send) (dto.SendReport, error) {
	return s.run(ctx, userId, sender.ModeFriendRequest, req)
}

func (s *messagingService) run(ctx context.Context, userId uint32, mode sender.Mode, req dto.Send) (dto.SendReport, error) {
	delay := s.defaultDelay
	if req.DelaySeconds != nil {
		if *req.DelaySeconds < 0 {
			return dto.SendReport{}, NewInvalidPayloadError("Delay must not be negative")
		}
		delay = time.Duration(*req.DelaySeconds) * time.Second
	}

	sessionId := strings.TrimSpace(req.SessionId)
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	tasks, err := s.tasks(userId, mode, req)
	if err != nil {
		return dto.SendReport{}, err
	}

	var cred model.Credential
	var session zalo.Session
	if len(tasks) > 0 {
		cred, session, err = s.login(ctx, userId, req.CredentialId)
		if err != nil {
			return dto.SendReport{}, err
		}
	}

	if !s.sessions.claim(sessionId, userId) {
		return dto.SendReport{}, NewConflictError("Session " + sessionId + " is already running")
	}
	defer s.sessions.release(sessionId)

	job := sender.Job{SessionId: sessionId, Mode: mode, Delay: delay, Tasks: tasks}
	logEntry := model.SendLog{
		UserId:       userId,
		SessionId:    sessionId,
		Mode:         string(mode),
		TemplateId:   req.TemplateId,
		DelaySeconds: int(delay / time.Second),
	}
	obs := s.progress.Observe(sessionId, s.observer(userId, mode, logEntry))

	report, err := s.orchestrator.Run(ctx, job, dispatcher(session, mode), obs)
	if errors.Is(err, sender.ErrJobRunning) {
		return dto.SendReport{}, NewConflictError("Session " + sessionId + " is already running")
	}
	if err != nil {
		return dto.SendReport{}, err
	}

	if cred.Id != 0 {
		if err := s.credentialDao.TouchLastUsed(cred.Id, time.Now()); err != nil {
			zap.L().Warn("Error touching credential", zap.Uint32("credential_id", cred.Id), zap.Error(err))
		}
	}

	return toSendReport(report), nil
}

// dispatcher resolves the phone to a contact and makes the one remote call of the mode.
func dispatcher(session zalo.Session, mode sender.Mode) sender.Dispatcher {
	return func(ctx context.Context, task *sender.Task) error {
		contact, err := session.FindUser(ctx, task.Phone)
		if err != nil {
			return err
		}
		task.ContactId = contact.Id

		if mode == sender.ModeFriendRequest {
			return session.SendFriendRequest(ctx, contact.Id, task.Message)
		}
		receipt, err := session.SendMessage(ctx, contact.Id, task.Message)
		if err != nil {
			return err
		}
		task.MessageId = receipt.MessageId
		return nil
	}
}

// observer logs every dispatched item and drops succeeded phones from their working set.
func (s *messagingService) observer(userId uint32, mode sender.Mode, entry model.SendLog) sender.Observer {
	writeLog := func(task sender.Task, success bool, detail string) {
		e := entry
		e.Phone = task.Phone
		e.ContactId = task.ContactId
		e.Message = task.Message
		e.MessageId = task.MessageId
		e.Success = success
		e.Error = detail
		e.SentAt = task.DispatchedAt
		if _, err := s.sendLogDao.Create(e); err != nil {
			zap.L().Warn("Error writing send log", zap.String("session_id", e.SessionId), zap.String("phone", e.Phone), zap.Error(err))
		}
	}

	return sender.Observer{
		OnItemSucceeded: func(_ int, task sender.Task) {
			writeLog(task, true, "")

			var err error
			if mode == sender.ModeFriendRequest {
				err = s.friendRequestDao.RemoveByPhone(userId, task.Phone)
			} else {
				err = s.recipientDao.ArchiveByPhone(userId, task.Phone)
			}
			if err != nil {
				zap.L().Warn("Error removing sent item from working set", zap.String("phone", task.Phone), zap.Error(err))
			}
		},
		OnItemFailed: func(_ int, task sender.Task, detail string) {
			writeLog(task, false, detail)
		},
	}
}

// tasks builds the job items in dispatch order. Each phone is sent to once.
func (s *messagingService) tasks(userId uint32, mode sender.Mode, req dto.Send) ([]*sender.Task, error) {
	content := req.Message
	if req.TemplateId != 0 {
		tpl, err := s.templateDao.GetById(userId, req.TemplateId)
		if err != nil {
			return nil, translate(err, "Template not found", "")
		}
		content = tpl.Content
	}

	type target struct {
		phone   string
		message string
		fields  render.Fields
	}
	var targets []target

	switch {
	case len(req.Recipients) > 0:
		for _, item := range req.Recipients {
			targets = append(targets, target{phone: item.Phone, message: item.Message})
		}
	case len(req.RecipientIds) > 0:
		for _, id := range req.RecipientIds {
			rec, err := s.recipientDao.GetById(userId, id)
			if err != nil {
				return nil, translate(err, "Recipient not found", "")
			}
			targets = append(targets, target{phone: rec.Phone, fields: rec.Fields()})
		}
	case len(req.Phones) > 0:
		for _, phone := range req.Phones {
			targets = append(targets, target{phone: phone})
		}
	case mode == sender.ModeFriendRequest:
		pending, err := s.friendRequestDao.GetAll(userId)
		if err != nil {
			return nil, err
		}
		for _, p := range pending {
			targets = append(targets, target{phone: p.Phone})
		}
	default:
		active, err := s.recipientDao.GetAllActive(userId)
		if err != nil {
			return nil, err
		}
		//oldest first
		for i := len(active) - 1; i >= 0; i-- {
			targets = append(targets, target{phone: active[i].Phone, fields: active[i].Fields()})
		}
	}

	seen := make(map[string]bool)
	tasks := make([]*sender.Task, 0, len(targets))
	for _, t := range targets {
		phone := util.NormalizePhone(t.phone)
		if phone == "" {
			return nil, NewInvalidPayloadError("Phone is required for every recipient")
		}
		if seen[phone] {
			continue
		}
		seen[phone] = true

		message := t.message
		if util.IsBlank(message) && !util.IsBlank(content) {
			fields := t.fields
			if fields == nil {
				var err error
				if fields, err = s.fieldsFor(userId, phone); err != nil {
					return nil, err
				}
			}
			message = render.Render(content, fields)
		}
		if util.IsBlank(message) && mode == sender.ModeMessage {
			return nil, NewInvalidPayloadError("Message or template id is required")
		}

		tasks = append(tasks, &sender.Task{Phone: phone, Message: message})
	}
	return tasks, nil
}

func (s *messagingService) fieldsFor(userId uint32, phone string) (render.Fields, error) {
	rec, err := s.recipientDao.GetOneByPhone(userId, phone)
	if dao.IsNotFound(err) {
		return render.Fields{"sdt": phone}, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Fields(), nil
}

// login opens a gateway session with the given credential, or the active one.
func (s *messagingService) login(ctx context.Context, userId, credentialId uint32) (model.Credential, zalo.Session, error) {
	var cred model.Credential
	var err error
	if credentialId != 0 {
		cred, err = s.credentialDao.GetOneById(userId, credentialId)
	} else {
		cred, err = s.credentialDao.GetActive(userId)
	}
	if err != nil {
		return model.Credential{}, nil, translate(err, "No active Zalo credential, add one first", "")
	}

	session, err := s.gateway.Login(ctx, zalo.Credentials{
		Cookie:    cred.Cookie,
		Imei:      cred.Imei,
		UserAgent: cred.UserAgent,
		Proxy:     cred.Proxy,
	})
	if errors.Is(err, zalo.ErrSessionExpired) {
		return model.Credential{}, nil, NewInvalidPayloadError("Zalo session of credential " + cred.Name + " expired, log in again")
	}
	if err != nil {
		return model.Credential{}, nil, err
	}
	return cred, session, nil
}

func (s *messagingService) Stop(ctx context.Context, userId uint32, sessionId string) (dto.Stopped, error) {
	sessionId = strings.TrimSpace(sessionId)
	if sessionId == "" {
		return dto.Stopped{}, NewInvalidPayloadError("Session id is required")
	}
	if s.sessions.ownedByOther(sessionId, userId) {
		return dto.Stopped{}, NewNotFoundError("Session not found")
	}
	if err := s.orchestrator.Stop(ctx, sessionId); err != nil {
		return dto.Stopped{}, err
	}
	zap.L().Info("Stop requested", zap.String("session_id", sessionId), zap.Uint32("user_id", userId))
	return dto.Stopped{SessionId: sessionId, Stopped: true}, nil
}

func (s *messagingService) FindContact(ctx context.Context, userId uint32, req dto.FindContact) (dto.Contact, error) {
	phone := util.NormalizePhone(req.Phone)
	if phone == "" {
		return dto.Contact{}, NewInvalidPayloadError("Phone is required")
	}
	_, session, err := s.login(ctx, userId, req.CredentialId)
	if err != nil {
		return dto.Contact{}, err
	}

	contact, err := session.FindUser(ctx, phone)
	if errors.Is(err, zalo.ErrContactNotFound) {
		return dto.Contact{}, NewNotFoundError("No Zalo account for phone " + phone)
	}
	if err != nil {
		return dto.Contact{}, err
	}
	return toContactDto(contact), nil
}

func (s *messagingService) Friends(ctx context.Context, userId, credentialId uint32) ([]dto.Contact, error) {
	_, session, err := s.login(ctx, userId, credentialId)
	if err != nil {
		return nil, err
	}
	friends, err := session.Friends(ctx)
	if err != nil {
		return nil, err
	}
	result := []dto.Contact{}
	for _, f := range friends {
		result = append(result, toContactDto(f))
	}
	return result, nil
}

func (s *messagingService) Groups(ctx context.Context, userId, credentialId uint32) ([]dto.Group, error) {
	_, session, err := s.login(ctx, userId, credentialId)
	if err != nil {
		return nil, err
	}
	groups, err := session.Groups(ctx)
	if err != nil {
		return nil, err
	}
	result := []dto.Group{}
	for _, g := range groups {
		result = append(result, dto.Group{Id: g.Id, Name: g.Name, TotalMember: g.TotalMember})
	}
	return result, nil
}

func (s *messagingService) Logs(userId uint32, sessionId string, limit int) ([]dto.SendLog, error) {
	if limit <= 0 {
		limit = defaultLogsLimit
	}
	logs, err := s.sendLogDao.GetAll(userId, strings.TrimSpace(sessionId), limit)
	if err != nil {
		return nil, err
	}
	result := []dto.SendLog{}
	for _, l := range logs {
		result = append(result, dto.SendLog{
			Id:           l.Id,
			SessionId:    l.SessionId,
			Mode:         l.Mode,
			Phone:        l.Phone,
			ContactId:    l.ContactId,
			Message:      l.Message,
			TemplateId:   l.TemplateId,
			Success:      l.Success,
			Error:        l.Error,
			MessageId:    l.MessageId,
			DelaySeconds: l.DelaySeconds,
			SentAt:       l.SentAt,
		})
	}
	return result, nil
}

func (s *messagingService) Subscribe(userId uint32, sessionId string) (*sender.Subscription, error) {
	if util.IsBlank(sessionId) {
		return nil, NewInvalidPayloadError("Session id is required")
	}
	if s.sessions.ownedByOther(sessionId, userId) {
		return nil, NewNotFoundError("Session not found")
	}
	return s.progress.Subscribe(sessionId), nil
}

func toSendReport(report sender.Report) dto.SendReport {
	results := make([]dto.SendResult, 0, len(report.Tasks))
	for _, t := range report.Tasks {
		results = append(results, dto.SendResult{
			Phone:     t.Phone,
			Message:   t.Message,
			Status:    string(t.Status),
			Success:   t.Status == sender.Succeeded,
			ContactId: t.ContactId,
			MessageId: t.MessageId,
			Error:     t.Error,
			Timestamp: t.DispatchedAt,
		})
	}
	return dto.SendReport{
		Success:               true,
		SessionId:             report.SessionId,
		Results:               results,
		SuccessCount:          report.Succeeded,
		FailureCount:          report.Failed,
		Total:                 report.Total,
		CountdownTotalSeconds: int(report.Countdown / time.Second),
		Cancelled:             report.Cancelled,
	}
}

func toContactDto(c zalo.Contact) dto.Contact {
	return dto.Contact{Id: c.Id, DisplayName: c.DisplayName, ZaloName: c.ZaloName, Avatar: c.Avatar, Phone: c.Phone}
}
