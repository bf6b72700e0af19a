package service

import (
	"errors"

	"github.com/dilshat/zalo-sender/dao"
)

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

type AuthErr struct {
	message string
}

func (e *AuthErr) Error() string {
	return e.message
}

func NewAuthError(msg string) *AuthErr {
	return &AuthErr{message: msg}
}

type ForbiddenErr struct {
	message string
}

func (e *ForbiddenErr) Error() string {
	return e.message
}

func NewForbiddenError(msg string) *ForbiddenErr {
	return &ForbiddenErr{message: msg}
}

type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

func NewNotFoundError(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}

type ConflictErr struct {
	message string
}

func (e *ConflictErr) Error() string {
	return e.message
}

func NewConflictError(msg string) *ConflictErr {
	return &ConflictErr{message: msg}
}

// LastActiveCredentialErr refuses to delete the only live credential of a user.
type LastActiveCredentialErr struct {
	ConflictErr
}

func NewLastActiveCredentialError() *LastActiveCredentialErr {
	return &LastActiveCredentialErr{ConflictErr{message: "Cannot delete the last active Zalo credential"}}
}

// translate maps dao sentinels to service errors; anything else is returned as is.
func translate(err error, notFound, duplicate string) error {
	switch {
	case err == nil:
		return nil
	case dao.IsNotFound(err):
		return NewNotFoundError(notFound)
	case errors.Is(err, dao.ErrDuplicate):
		return NewConflictError(duplicate)
	case errors.Is(err, dao.ErrLastActiveCredential):
		return NewLastActiveCredentialError()
	}
	return err
}
