package service

import (
	"strings"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/util"
	"github.com/dilshat/zalo-sender/zalo"
	"go.uber.org/zap"
)

const (
	credentialNotFound  = "Zalo credential not found"
	credentialDuplicate = "Zalo credential name already exists"
)

type CredentialService interface {
	List(userId uint32) ([]dto.Credential, error)
	Get(userId, id uint32) (dto.Credential, error)
	// Create stores a credential and makes it the active one.
	Create(userId uint32, in dto.CredentialInput) (dto.Credential, error)
	Update(userId uint32, in dto.CredentialInput) (dto.Credential, error)
	Activate(userId, id uint32) (dto.Credential, error)
	Delete(userId, id uint32, hard bool) error
}

type credentialService struct {
	credentialDao dao.CredentialDao
}

func NewCredentialService(credentialDao dao.CredentialDao) CredentialService {
	return &credentialService{credentialDao: credentialDao}
}

func (s credentialService) List(userId uint32) ([]dto.Credential, error) {
	creds, err := s.credentialDao.GetAllLive(userId)
	if err != nil {
		return nil, err
	}
	result := []dto.Credential{}
	for _, c := range creds {
		result = append(result, toCredentialDto(c))
	}
	return result, nil
}

func (s credentialService) Get(userId, id uint32) (dto.Credential, error) {
	cred, err := s.credentialDao.GetOneById(userId, id)
	if err != nil {
		return dto.Credential{}, translate(err, credentialNotFound, "")
	}
	return toCredentialDto(cred), nil
}

// fromInput validates the input and normalizes the cookie to its raw form.
func fromInput(userId uint32, in dto.CredentialInput) (model.Credential, error) {
	if util.IsBlank(in.Name) || len(in.Cookie) == 0 || util.IsBlank(in.Imei) || util.IsBlank(in.UserAgent) {
		return model.Credential{}, NewInvalidPayloadError("Name, cookie, imei and userAgent are required")
	}
	cookie, err := zalo.NormalizeCookie(in.Cookie)
	if err != nil {
		return model.Credential{}, NewInvalidPayloadError("Invalid cookie: " + err.Error())
	}
	if cookie == "" {
		return model.Credential{}, NewInvalidPayloadError("Cookie is empty")
	}
	return model.Credential{
		Id:        in.Id,
		UserId:    userId,
		Name:      strings.TrimSpace(in.Name),
		Cookie:    cookie,
		Imei:      strings.TrimSpace(in.Imei),
		UserAgent: strings.TrimSpace(in.UserAgent),
		Proxy:     strings.TrimSpace(in.Proxy),
	}, nil
}

func (s credentialService) Create(userId uint32, in dto.CredentialInput) (dto.Credential, error) {
	cred, err := fromInput(userId, in)
	if err != nil {
		return dto.Credential{}, err
	}

	id, err := s.credentialDao.Create(cred)
	if err != nil {
		return dto.Credential{}, translate(err, "", credentialDuplicate)
	}
	zap.L().Info("Zalo credential created", zap.Uint32("user_id", userId), zap.Uint32("credential_id", id))

	return s.Get(userId, id)
}

func (s credentialService) Update(userId uint32, in dto.CredentialInput) (dto.Credential, error) {
	if in.Id == 0 {
		return dto.Credential{}, NewInvalidPayloadError("Credential id is required")
	}
	cred, err := fromInput(userId, in)
	if err != nil {
		return dto.Credential{}, err
	}

	//profile fields come from QR login only
	stored, err := s.credentialDao.GetOneById(userId, in.Id)
	if err != nil {
		return dto.Credential{}, translate(err, credentialNotFound, "")
	}
	cred.Avatar = stored.Avatar
	cred.DisplayName = stored.DisplayName

	updated, err := s.credentialDao.Update(cred, in.IsActive)
	if err != nil {
		return dto.Credential{}, translate(err, credentialNotFound, credentialDuplicate)
	}
	return toCredentialDto(updated), nil
}

func (s credentialService) Activate(userId, id uint32) (dto.Credential, error) {
	cred, err := s.credentialDao.Activate(userId, id)
	if err != nil {
		return dto.Credential{}, translate(err, credentialNotFound, "")
	}
	return toCredentialDto(cred), nil
}

func (s credentialService) Delete(userId, id uint32, hard bool) error {
	if id == 0 {
		return NewInvalidPayloadError("Credential id is required")
	}
	err := s.credentialDao.Delete(userId, id, hard)
	if err == nil {
		zap.L().Info("Zalo credential deleted", zap.Uint32("user_id", userId), zap.Uint32("credential_id", id), zap.Bool("hard", hard))
	}
	return translate(err, credentialNotFound, "")
}

func toCredentialDto(c model.Credential) dto.Credential {
	return dto.Credential{
		Id:          c.Id,
		Name:        c.Name,
		Cookie:      c.Cookie,
		Imei:        c.Imei,
		UserAgent:   c.UserAgent,
		Proxy:       c.Proxy,
		Avatar:      c.Avatar,
		DisplayName: c.DisplayName,
		IsActive:    c.IsActive,
		State:       c.State,
		LastUsed:    c.LastUsed,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
