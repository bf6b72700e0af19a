package dto

import (
	"encoding/json"
	"time"
)

type Id struct {
	Id uint32 `json:"id"`
}

type Error struct {
	Error string `json:"error"`
}

type Register struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Refresh struct {
	RefreshToken string `json:"refreshToken"`
}

type User struct {
	Id        uint32    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	LastLogin time.Time `json:"lastLogin"`
	CreatedAt time.Time `json:"createdAt"`
}

type Tokens struct {
	AccessToken      string    `json:"accessToken"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
	User             User      `json:"user"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserId   uint32
	Username string
	Role     string
}

type Template struct {
	Id        uint32    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Preview renders either a stored template or raw content, with the fields of a stored
// recipient or the given ones.
type Preview struct {
	TemplateId  uint32            `json:"templateId"`
	Content     string            `json:"content"`
	RecipientId uint32            `json:"recipientId"`
	Fields      map[string]string `json:"fields"`
}

type PreviewResult struct {
	Message   string   `json:"message"`
	Variables []string `json:"variables"`
}

type Recipient struct {
	Id           uint32            `json:"id"`
	Phone        string            `json:"phone"`
	Xxx          string            `json:"xxx"`
	Yyy          string            `json:"yyy"`
	Sdt          string            `json:"sdt"`
	Ttt          string            `json:"ttt"`
	Zzz          string            `json:"zzz"`
	Www          string            `json:"www"`
	Uuu          string            `json:"uuu"`
	Vvv          string            `json:"vvv"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	State        string            `json:"state,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type Recipients struct {
	DataList []Recipient `json:"dataList"`
}

type ItemResult struct {
	Index   int    `json:"index"`
	Phone   string `json:"phone"`
	Success bool   `json:"success"`
	Id      uint32 `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Summary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Error   int `json:"error"`
}

type BulkResult struct {
	Results []ItemResult `json:"results"`
	Summary Summary      `json:"summary"`
}

type FriendRequestTarget struct {
	Id        uint32    `json:"id"`
	Phone     string    `json:"phone"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type FriendRequestTargets struct {
	Targets []FriendRequestTarget `json:"targets"`
}

// CredentialInput accepts the cookie in any of the shapes Zalo tools export.
type CredentialInput struct {
	Id        uint32          `json:"id"`
	Name      string          `json:"name"`
	Cookie    json.RawMessage `json:"cookie" swaggertype:"string"`
	Imei      string          `json:"imei"`
	UserAgent string          `json:"userAgent"`
	Proxy     string          `json:"proxy"`
	IsActive  bool            `json:"isActive"`
}

type Credential struct {
	Id          uint32    `json:"id"`
	Name        string    `json:"name"`
	Cookie      string    `json:"cookie"`
	Imei        string    `json:"imei"`
	UserAgent   string    `json:"userAgent"`
	Proxy       string    `json:"proxy,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	IsActive    bool      `json:"isActive"`
	State       string    `json:"state"`
	LastUsed    time.Time `json:"lastUsed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SendItem struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send selects recipients by explicit items, stored recipient ids or phones. With none
// of them the whole working set is used.
type Send struct {
	SessionId    string     `json:"sessionId"`
	CredentialId uint32     `json:"credentialId"`
	TemplateId   uint32     `json:"templateId"`
	Message      string     `json:"message"`
	Recipients   []SendItem `json:"recipients"`
	RecipientIds []uint32   `json:"recipientIds"`
	Phones       []string   `json:"phones"`
	DelaySeconds *int       `json:"delaySeconds"`
}

type SendResult struct {
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	Success   bool      `json:"success"`
	ContactId string    `json:"contactId,omitempty"`
	MessageId string    `json:"messageId,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SendReport struct {
	Success               bool         `json:"success"`
	SessionId             string       `json:"sessionId"`
	Results               []SendResult `json:"results"`
	SuccessCount          int          `json:"successCount"`
	FailureCount          int          `json:"failureCount"`
	Total                 int          `json:"total"`
	CountdownTotalSeconds int          `json:"countdownTotalSeconds"`
	Cancelled             bool         `json:"cancelled"`
}

type Stop struct {
	SessionId string `json:"sessionId"`
}

type Stopped struct {
	SessionId string `json:"sessionId"`
	Stopped   bool   `json:"stopped"`
}

type FindContact struct {
	Phone        string `json:"phone"`
	CredentialId uint32 `json:"credentialId"`
}

type Contact struct {
	Id          string `json:"uid"`
	DisplayName string `json:"displayName"`
	ZaloName    string `json:"zaloName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type Group struct {
	Id          string `json:"groupId"`
	Name        string `json:"name"`
	TotalMember int    `json:"totalMember"`
}

type SendLog struct {
	Id           uint32    `json:"id"`
	SessionId    string    `json:"sessionId"`
	Mode         string    `json:"mode"`
	Phone        string    `json:"phone"`
	ContactId    string    `json:"contactId,omitempty"`
	Message      string    `json:"message,omitempty"`
	TemplateId   uint32    `json:"templateId,omitempty"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	MessageId    string    `json:"messageId,omitempty"`
	DelaySeconds int       `json:"delaySeconds"`
	SentAt       time.Time `json:"sentAt"`
}

type QrStart struct {
	UserAgent string `json:"userAgent"`
}

type QrSession struct {
	SessionId string    `json:"sessionId"`
	QrBase64  string    `json:"qrBase64"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type QrAccount struct {
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}

type QrStatus struct {
	SessionId    string     `json:"sessionId"`
	Done         bool       `json:"done"`
	Ok           bool       `json:"ok"`
	Scanned      bool       `json:"scanned"`
	Error        string     `json:"error,omitempty"`
	QrBase64     string     `json:"qrBase64,omitempty"`
	CredentialId uint32     `json:"credentialId,omitempty"`
	Account      *QrAccount `json:"account,omitempty"`
}
