package service

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/zalo"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrImageSize = 256

type QrLoginService interface {
	// Start asks the gateway for a QR ticket and polls it in the background until the
	// user scans it or the session expires.
	Start(ctx context.Context, userId uint32, userAgent string) (dto.QrSession, error)
	Status(userId uint32, sessionId string) (dto.QrStatus, error)
	// Sweep forgets sessions which expired more than a TTL ago.
	Sweep()
	// Close stops every poller.
	Close()
}

type qrSession struct {
	userId       uint32
	qrBase64     string
	expiresAt    time.Time
	scanned      bool
	done         bool
	ok           bool
	err          string
	credentialId uint32
	account      *dto.QrAccount
	cancel       context.CancelFunc
}

type qrLoginService struct {
	gateway          zalo.Gateway
	credentialDao    dao.CredentialDao
	ttl              time.Duration
	pollInterval     time.Duration
	defaultUserAgent string

	mu       sync.Mutex
	sessions map[string]*qrSession
	now      func() time.Time
}

func NewQrLoginService(gateway zalo.Gateway, credentialDao dao.CredentialDao, ttl, pollInterval time.Duration, defaultUserAgent string) QrLoginService {
	return &qrLoginService{
		gateway:          gateway,
		credentialDao:    credentialDao,
		ttl:              ttl,
		pollInterval:     pollInterval,
		defaultUserAgent: defaultUserAgent,
		sessions:         make(map[string]*qrSession),
		now:              time.Now,
	}
}

func (s *qrLoginService) Start(ctx context.Context, userId uint32, userAgent string) (dto.QrSession, error) {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = s.defaultUserAgent
	}

	ticket, err := s.gateway.StartQRLogin(ctx, userAgent)
	if err != nil {
		return dto.QrSession{}, err
	}

	png, err := qrcode.Encode(ticket.Code, qrcode.Medium, qrImageSize)
	if err != nil {
		return dto.QrSession{}, err
	}

	id := uuid.NewString()
	pollCtx, cancel := context.WithTimeout(context.Background(), s.ttl)
	session := &qrSession{
		userId:    userId,
		qrBase64:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		expiresAt: s.now().Add(s.ttl),
		cancel:    cancel,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	go s.poll(pollCtx, id, ticket.Token, userAgent)

	zap.L().Info("QR login started", zap.Uint32("user_id", userId), zap.String("session_id", id))

	return dto.QrSession{SessionId: id, QrBase64: session.qrBase64, ExpiresAt: session.expiresAt}, nil
}

func (s *qrLoginService) poll(ctx context.Context, id, token, userAgent string) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.finish(id, func(q *qrSession) { q.err = "QR code expired" })
			return
		case <-ticker.C:
		}

		status, err := s.gateway.PollQRLogin(ctx, token)
		if err != nil {
			if ctx.Err() == nil {
				zap.L().Warn("Error polling QR login", zap.String("session_id", id), zap.Error(err))
			}
			continue
		}

		switch status.State {
		case zalo.QRScanned:
			s.update(id, func(q *qrSession) { q.scanned = true })
		case zalo.QRSuccess:
			s.complete(id, status, userAgent)
			return
		case zalo.QRExpired, zalo.QRFailed:
			msg := status.Error
			if msg == "" {
				msg = "QR login " + string(status.State)
			}
			s.finish(id, func(q *qrSession) { q.err = msg })
			return
		}
	}
}

// complete turns a successful QR exchange into the user's active credential.
func (s *qrLoginService) complete(id string, status zalo.QRStatus, userAgent string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return
	}

	cookie, err := zalo.NormalizeCookie(status.Cookie)
	if err != nil {
		s.finish(id, func(q *qrSession) { q.err = "Invalid cookie: " + err.Error() })
		return
	}
	if status.UserAgent != "" {
		userAgent = status.UserAgent
	}

	now := s.now()
	credId, err := s.credentialDao.Create(model.Credential{
		UserId:      session.userId,
		Name:        "QR " + status.DisplayName + " " + now.Format("2006-01-02 15:04:05"),
		Cookie:      cookie,
		Imei:        status.Imei,
		UserAgent:   userAgent,
		Avatar:      status.Avatar,
		DisplayName: status.DisplayName,
	})
	if err != nil {
		zap.L().Error("Error saving QR credential", zap.String("session_id", id), zap.Error(err))
		s.finish(id, func(q *qrSession) { q.err = "Failed to save credential" })
		return
	}

	zap.L().Info("QR login succeeded", zap.Uint32("user_id", session.userId), zap.Uint32("credential_id", credId))

	s.finish(id, func(q *qrSession) {
		q.ok = true
		q.scanned = true
		q.credentialId = credId
		q.account = &dto.QrAccount{DisplayName: status.DisplayName, Avatar: status.Avatar}
	})
}

func (s *qrLoginService) update(id string, fn func(q *qrSession)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok := s.sessions[id]; ok && !q.done {
		fn(q)
	}
}

func (s *qrLoginService) finish(id string, fn func(q *qrSession)) {
	s.update(id, func(q *qrSession) {
		fn(q)
		q.done = true
		q.cancel()
	})
}

func (s *qrLoginService) Status(userId uint32, sessionId string) (dto.QrStatus, error) {
	if strings.TrimSpace(sessionId) == "" {
		return dto.QrStatus{}, NewInvalidPayloadError("Session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.sessions[sessionId]
	if !ok || q.userId != userId {
		return dto.QrStatus{}, NewNotFoundError("QR login session not found")
	}

	status := dto.QrStatus{
		SessionId:    sessionId,
		Done:         q.done,
		Ok:           q.ok,
		Scanned:      q.scanned,
		Error:        q.err,
		CredentialId: q.credentialId,
		Account:      q.account,
	}
	if !q.done {
		status.QrBase64 = q.qrBase64
	}
	return status, nil
}

func (s *qrLoginService) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, q := range s.sessions {
		if now.After(q.expiresAt.Add(s.ttl)) {
			q.cancel()
			delete(s.sessions, id)
		}
	}
}

func (s *qrLoginService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.sessions {
		q.cancel()
	}
}

// RunQrSweeper calls Sweep every interval until ctx is done.
func RunQrSweeper(ctx context.Context, srv QrLoginService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.Sweep()
		}
	}
}
