// Package zalo talks to the Zalo gateway: logging in with stored credentials, resolving
// phone numbers to contacts, and sending messages and friend requests.
package zalo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrSessionExpired  = errors.New("zalo session expired, log in again")
)

// StatusError is a non-2xx gateway response.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d body=%q", e.Op, e.Status, e.Body)
}

// DeliveryError is a failed SendMessage.
type DeliveryError struct {
	ContactId string
	Err       error
}

func (e *DeliveryError) Error() string {
	return "send message to " + e.ContactId + ": " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// RequestError is a failed SendFriendRequest.
type RequestError struct {
	ContactId string
	Err       error
}

func (e *RequestError) Error() string {
	return "send friend request to " + e.ContactId + ": " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type Credentials struct {
	Cookie    string
	Imei      string
	UserAgent string
	Proxy     string
}

type Contact struct {
	Id          string `json:"uid"`
	DisplayName string `json:"displayName"`
	ZaloName    string `json:"zaloName"`
	Avatar      string `json:"avatar"`
	Phone       string `json:"phoneNumber,omitempty"`
}

type Group struct {
	Id          string `json:"groupId"`
	Name        string `json:"name"`
	TotalMember int    `json:"totalMember"`
}

type Receipt struct {
	MessageId string `json:"msgId"`
}

type QRTicket struct {
	Token string `json:"token"`
	// Code is the text encoded into the QR image the user scans.
	Code string `json:"qr"`
}

type QRState string

const (
	QRWaiting QRState = "waiting"
	QRScanned QRState = "scanned"
	QRSuccess QRState = "success"
	QRExpired QRState = "expired"
	QRFailed  QRState = "failed"
)

func (s QRState) Done() bool {
	return s == QRSuccess || s == QRExpired || s == QRFailed
}

type QRStatus struct {
	State       QRState         `json:"state"`
	Cookie      json.RawMessage `json:"cookie,omitempty"`
	Imei        string          `json:"imei,omitempty"`
	UserAgent   string          `json:"userAgent,omitempty"`
	DisplayName string          `json:"displayName,omitempty"`
	Avatar      string          `json:"avatar,omitempty"`
	Error       string          `json:"error,omitempty"`
}

type Gateway interface {
	// Login establishes a session; every call made through it carries the credentials.
	Login(ctx context.Context, creds Credentials) (Session, error)
	// StartQRLogin asks the gateway for a fresh QR login ticket.
	StartQRLogin(ctx context.Context, userAgent string) (QRTicket, error)
	// PollQRLogin reports the state of a QR login ticket.
	PollQRLogin(ctx context.Context, token string) (QRStatus, error)
}

type Session interface {
	OwnId() string
	FindUser(ctx context.Context, phone string) (Contact, error)
	SendMessage(ctx context.Context, contactId, text string) (Receipt, error)
	SendFriendRequest(ctx context.Context, contactId, text string) error
	Friends(ctx context.Context) ([]Contact, error)
	Groups(ctx context.Context) ([]Group, error)
}
