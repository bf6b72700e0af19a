package service

import (
	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/util"
)

type FriendRequestTargetService interface {
	List(userId uint32) ([]dto.FriendRequestTarget, error)
	Add(userId uint32, targets []dto.FriendRequestTarget) (dto.BulkResult, error)
	Remove(userId uint32, phone string) error
}

type friendRequestTargetService struct {
	friendRequestDao dao.FriendRequestDao
}

func NewFriendRequestTargetService(friendRequestDao dao.FriendRequestDao) FriendRequestTargetService {
	return &friendRequestTargetService{friendRequestDao: friendRequestDao}
}

func (s friendRequestTargetService) List(userId uint32) ([]dto.FriendRequestTarget, error) {
	targets, err := s.friendRequestDao.GetAll(userId)
	if err != nil {
		return nil, err
	}
	result := []dto.FriendRequestTarget{}
	for _, t := range targets {
		result = append(result, dto.FriendRequestTarget{Id: t.Id, Phone: t.Phone, Note: t.Note, CreatedAt: t.CreatedAt})
	}
	return result, nil
}

func (s friendRequestTargetService) Add(userId uint32, targets []dto.FriendRequestTarget) (dto.BulkResult, error) {
	if len(targets) == 0 {
		return dto.BulkResult{}, NewInvalidPayloadError("Targets are empty")
	}

	result := dto.BulkResult{Results: make([]dto.ItemResult, 0, len(targets)), Summary: dto.Summary{Total: len(targets)}}
	for i, t := range targets {
		phone := util.NormalizePhone(t.Phone)
		item := dto.ItemResult{Index: i, Phone: phone}
		if phone == "" {
			item.Error = "Phone is required"
		} else if stored, err := s.friendRequestDao.Add(userId, phone, t.Note); err != nil {
			item.Error = err.Error()
		} else {
			item.Success = true
			item.Id = stored.Id
		}

		if item.Success {
			result.Summary.Success++
		} else {
			result.Summary.Error++
		}
		result.Results = append(result.Results, item)
	}
	return result, nil
}

func (s friendRequestTargetService) Remove(userId uint32, phone string) error {
	phone = util.NormalizePhone(phone)
	if phone == "" {
		return NewInvalidPayloadError("Phone is required")
	}
	return s.friendRequestDao.RemoveByPhone(userId, phone)
}
