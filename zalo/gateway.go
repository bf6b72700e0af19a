package zalo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	headerCookie = "X-Zalo-Cookie"
	headerImei   = "X-Zalo-Imei"
)

type RateLimiter interface {
	// Wait blocks until the limiter permits an event to happen.
	Wait(ctx context.Context) error
}

type httpGateway struct {
	baseURL string
	timeout time.Duration
	limiter RateLimiter
	client  *http.Client
}

// NewGateway returns a gateway client which allows at most tps calls per second
// across all sessions.
func NewGateway(baseURL string, timeout time.Duration, tps int) Gateway {
	return &httpGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(tps), 1),
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *httpGateway) clientFor(proxy string) (*http.Client, error) {
	if strings.TrimSpace(proxy) == "" {
		return g.client, nil
	}
	proxyURL, err := url.Parse(proxy)
	if err != nil || proxyURL.Host == "" {
		return nil, fmt.Errorf("invalid proxy %q", proxy)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(proxyURL)
	return &http.Client{Timeout: g.timeout, Transport: transport}, nil
}

// call sends one JSON request and decodes a JSON response into out (when not nil).
func (g *httpGateway) call(ctx context.Context, client *http.Client, creds *Credentials, op, method, path string, in, out interface{}) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil {
		req.Header.Set(headerCookie, creds.Cookie)
		req.Header.Set(headerImei, creds.Imei)
		req.Header.Set("User-Agent", creds.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, Status: resp.StatusCode, Body: string(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode json: %w body=%q", op, err, string(data))
	}
	return nil
}

func statusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

func (g *httpGateway) Login(ctx context.Context, creds Credentials) (Session, error) {
	client, err := g.clientFor(creds.Proxy)
	if err != nil {
		return nil, err
	}

	var resp struct {
		OwnId string `json:"ownId"`
	}
	err = g.call(ctx, client, &creds, "login", http.MethodPost, "/api/login", nil, &resp)
	if statusOf(err) == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}

	zap.L().Debug("zalo session established", zap.String("own_id", resp.OwnId))
	return &httpSession{gw: g, client: client, creds: creds, ownId: resp.OwnId}, nil
}

func (g *httpGateway) StartQRLogin(ctx context.Context, userAgent string) (ticket QRTicket, err error) {
	in := map[string]string{"userAgent": userAgent}
	err = g.call(ctx, g.client, nil, "qr start", http.MethodPost, "/api/qr/start", in, &ticket)
	if err == nil && (ticket.Token == "" || ticket.Code == "") {
		err = errors.New("qr start: gateway returned an empty ticket")
	}
	return
}

func (g *httpGateway) PollQRLogin(ctx context.Context, token string) (status QRStatus, err error) {
	err = g.call(ctx, g.client, nil, "qr poll", http.MethodGet, "/api/qr/"+url.PathEscape(token), nil, &status)
	if statusOf(err) == http.StatusNotFound {
		return QRStatus{State: QRExpired, Error: "qr ticket not found"}, nil
	}
	return
}

type httpSession struct {
	gw     *httpGateway
	client *http.Client
	creds  Credentials
	ownId  string
}

func (s *httpSession) OwnId() string {
	return s.ownId
}

func (s *httpSession) do(ctx context.Context, op, method, path string, in, out interface{}) error {
	err := s.gw.call(ctx, s.client, &s.creds, op, method, path, in, out)
	if statusOf(err) == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	return err
}

func (s *httpSession) FindUser(ctx context.Context, phone string) (Contact, error) {
	var contact Contact
	err := s.do(ctx, "find user", http.MethodPost, "/api/find-user", map[string]string{"phone": phone}, &contact)
	if statusOf(err) == http.StatusNotFound || (err == nil && contact.Id == "") {
		return Contact{}, ErrContactNotFound
	}
	if err != nil {
		return Contact{}, err
	}
	contact.Phone = phone
	return contact, nil
}

func (s *httpSession) SendMessage(ctx context.Context, contactId, text string) (Receipt, error) {
	var receipt Receipt
	in := map[string]string{"threadId": contactId, "message": text}
	if err := s.do(ctx, "send message", http.MethodPost, "/api/send-message", in, &receipt); err != nil {
		return Receipt{}, &DeliveryError{ContactId: contactId, Err: err}
	}
	return receipt, nil
}

func (s *httpSession) SendFriendRequest(ctx context.Context, contactId, text string) error {
	in := map[string]string{"userId": contactId, "message": text}
	if err := s.do(ctx, "send friend request", http.MethodPost, "/api/send-friend-request", in, nil); err != nil {
		return &RequestError{ContactId: contactId, Err: err}
	}
	return nil
}

func (s *httpSession) Friends(ctx context.Context) (friends []Contact, err error) {
	err = s.do(ctx, "friends", http.MethodGet, "/api/friends", nil, &friends)
	return
}

func (s *httpSession) Groups(ctx context.Context) (groups []Group, err error) {
	err = s.do(ctx, "groups", http.MethodGet, "/api/groups", nil, &groups)
	return
}
