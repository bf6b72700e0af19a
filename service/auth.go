package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/dilshat/zalo-sender/auth"
	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/util"
	"go.uber.org/zap"
)

const minPasswordLen = 6

type AuthService interface {
	Register(req dto.Register) (dto.User, error)
	Login(req dto.Login) (dto.Tokens, error)
	Refresh(refreshToken string) (dto.Tokens, error)
	Logout(userId uint32) error
	Authenticate(accessToken string) (dto.Principal, error)
	Me(userId uint32) (dto.User, error)
}

type authService struct {
	userDao    dao.UserDao
	tokenDao   dao.RefreshTokenDao
	issuer     *auth.Issuer
	refreshTTL time.Duration
}

func NewAuthService(userDao dao.UserDao, tokenDao dao.RefreshTokenDao, issuer *auth.Issuer, refreshTTL time.Duration) AuthService {
	return &authService{userDao: userDao, tokenDao: tokenDao, issuer: issuer, refreshTTL: refreshTTL}
}

func (s authService) Register(req dto.Register) (dto.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if util.IsBlank(req.Username) || util.IsBlank(req.Email) || util.IsBlank(req.Password) {
		return dto.User{}, NewInvalidPayloadError("Username, email and password are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return dto.User{}, NewInvalidPayloadError("Invalid email " + req.Email)
	}
	if len([]rune(req.Password)) < minPasswordLen {
		return dto.User{}, NewInvalidPayloadError("Password must be at least 6 characters long")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.User{}, err
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         model.RoleUser,
		IsActive:     true,
	}
	id, err := s.userDao.Create(user)
	if err != nil {
		return dto.User{}, translate(err, "", "Username or email already registered")
	}
	user.Id = id

	zap.L().Info("User registered", zap.Uint32("user_id", id), zap.String("username", user.Username))

	return toUserDto(user), nil
}

func (s authService) Login(req dto.Login) (dto.Tokens, error) {
	if util.IsBlank(req.Username) || util.IsBlank(req.Password) {
		return dto.Tokens{}, NewInvalidPayloadError("Username and password are required")
	}

	user, err := s.userDao.GetOneByUsername(strings.TrimSpace(req.Username))
	if dao.IsNotFound(err) {
		return dto.Tokens{}, NewAuthError("Invalid username or password")
	}
	if err != nil {
		return dto.Tokens{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return dto.Tokens{}, NewAuthError("Invalid username or password")
	}
	if !user.IsActive {
		return dto.Tokens{}, NewForbiddenError("Account is disabled")
	}

	now := time.Now()
	if err = s.userDao.UpdateLastLogin(user.Id, now); err != nil {
		zap.L().Warn("Error updating last login", zap.Uint32("user_id", user.Id), zap.Error(err))
	}
	user.LastLogin = now

	return s.issue(user)
}

// Refresh exchanges a refresh token for a new pair. Every token of the user is revoked
// on the way, so a refresh token works once.
func (s authService) Refresh(refreshToken string) (dto.Tokens, error) {
	if util.IsBlank(refreshToken) {
		return dto.Tokens{}, NewInvalidPayloadError("Refresh token is required")
	}

	stored, err := s.tokenDao.GetOneByHash(auth.HashToken(refreshToken))
	if dao.IsNotFound(err) {
		return dto.Tokens{}, NewAuthError("Invalid refresh token")
	}
	if err != nil {
		return dto.Tokens{}, err
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return dto.Tokens{}, NewAuthError("Refresh token expired or revoked")
	}

	user, err := s.userDao.GetOneById(stored.UserId)
	if dao.IsNotFound(err) {
		return dto.Tokens{}, NewAuthError("Invalid refresh token")
	}
	if err != nil {
		return dto.Tokens{}, err
	}
	if !user.IsActive {
		return dto.Tokens{}, NewForbiddenError("Account is disabled")
	}

	if err = s.tokenDao.RevokeAllForUser(user.Id); err != nil {
		return dto.Tokens{}, err
	}

	return s.issue(user)
}

func (s authService) Logout(userId uint32) error {
	return s.tokenDao.RevokeAllForUser(userId)
}

func (s authService) Authenticate(accessToken string) (dto.Principal, error) {
	claims, err := s.issuer.Parse(accessToken)
	switch err {
	case nil:
	case auth.ErrExpiredToken:
		return dto.Principal{}, NewAuthError("Access token expired")
	default:
		return dto.Principal{}, NewAuthError("Invalid access token")
	}
	return dto.Principal{UserId: claims.UserId, Username: claims.Username, Role: claims.Role}, nil
}

func (s authService) Me(userId uint32) (dto.User, error) {
	user, err := s.userDao.GetOneById(userId)
	if err != nil {
		return dto.User{}, translate(err, "User not found", "")
	}
	return toUserDto(user), nil
}

func (s authService) issue(user model.User) (dto.Tokens, error) {
	access, expiresAt, err := s.issuer.Issue(user.Id, user.Username, user.Role)
	if err != nil {
		return dto.Tokens{}, err
	}

	refresh := auth.NewRefreshToken()
	refreshExpiresAt := time.Now().Add(s.refreshTTL)
	if _, err = s.tokenDao.Create(user.Id, auth.HashToken(refresh), refreshExpiresAt); err != nil {
		return dto.Tokens{}, err
	}

	return dto.Tokens{
		AccessToken:      access,
		ExpiresAt:        expiresAt,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpiresAt,
		User:             toUserDto(user),
	}, nil
}

func toUserDto(user model.User) dto.User {
	return dto.User{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}
