package service

import (
	"strings"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/util"
	"go.uber.org/zap"
)

type RecipientService interface {
	List(userId uint32) ([]dto.Recipient, error)
	Get(userId, id uint32) (dto.Recipient, error)
	// BulkUpsert stores every item it can; a bad item fails alone.
	BulkUpsert(userId uint32, dataList []dto.Recipient) (dto.BulkResult, error)
	Update(userId uint32, rec dto.Recipient) (dto.Recipient, error)
	// Delete archives (hard=false) or purges a recipient chosen by id or phone.
	Delete(userId, id uint32, phone string, hard bool) error
}

type recipientService struct {
	recipientDao dao.RecipientDao
}

func NewRecipientService(recipientDao dao.RecipientDao) RecipientService {
	return &recipientService{recipientDao: recipientDao}
}

func (s recipientService) List(userId uint32) ([]dto.Recipient, error) {
	recipients, err := s.recipientDao.GetAllActive(userId)
	if err != nil {
		return nil, err
	}
	result := []dto.Recipient{}
	for _, rec := range recipients {
		result = append(result, toRecipientDto(rec))
	}
	return result, nil
}

func (s recipientService) Get(userId, id uint32) (dto.Recipient, error) {
	rec, err := s.recipientDao.GetById(userId, id)
	if err != nil {
		return dto.Recipient{}, translate(err, "Recipient not found", "")
	}
	return toRecipientDto(rec), nil
}

func (s recipientService) BulkUpsert(userId uint32, dataList []dto.Recipient) (dto.BulkResult, error) {
	if len(dataList) == 0 {
		return dto.BulkResult{}, NewInvalidPayloadError("Data list is empty")
	}

	result := dto.BulkResult{Results: make([]dto.ItemResult, 0, len(dataList))}
	for i, item := range dataList {
		phone := util.NormalizePhone(item.Phone)
		itemResult := dto.ItemResult{Index: i, Phone: phone}

		if phone == "" {
			itemResult.Error = "Phone is required"
		} else {
			rec := fromRecipientDto(item)
			rec.UserId = userId
			rec.Phone = phone
			stored, err := s.recipientDao.Upsert(rec)
			if err != nil {
				zap.L().Warn("Error saving recipient", zap.Uint32("user_id", userId), zap.String("phone", phone), zap.Error(err))
				itemResult.Error = err.Error()
			} else {
				itemResult.Success = true
				itemResult.Id = stored.Id
			}
		}

		if itemResult.Success {
			result.Summary.Success++
		} else {
			result.Summary.Error++
		}
		result.Results = append(result.Results, itemResult)
	}
	result.Summary.Total = len(dataList)

	return result, nil
}

func (s recipientService) Update(userId uint32, item dto.Recipient) (dto.Recipient, error) {
	if item.Id == 0 {
		return dto.Recipient{}, NewInvalidPayloadError("Recipient id is required")
	}
	phone := util.NormalizePhone(item.Phone)
	if phone == "" {
		return dto.Recipient{}, NewInvalidPayloadError("Phone is required")
	}

	rec := fromRecipientDto(item)
	rec.UserId = userId
	rec.Phone = phone
	stored, err := s.recipientDao.Update(rec)
	if err != nil {
		return dto.Recipient{}, translate(err, "Recipient not found", "Phone "+phone+" already exists")
	}
	return toRecipientDto(stored), nil
}

func (s recipientService) Delete(userId, id uint32, phone string, hard bool) error {
	phone = util.NormalizePhone(phone)
	if id == 0 && phone == "" {
		return NewInvalidPayloadError("Recipient id or phone is required")
	}

	if id == 0 {
		lookup := s.recipientDao.GetOneByPhone
		if hard {
			lookup = s.recipientDao.GetAnyByPhone
		}
		rec, err := lookup(userId, phone)
		if err != nil {
			return translate(err, "Recipient not found", "")
		}
		id = rec.Id
	}

	if hard {
		return translate(s.recipientDao.Purge(userId, id), "Recipient not found", "")
	}
	return translate(s.recipientDao.Archive(userId, id), "Recipient not found", "")
}

func fromRecipientDto(item dto.Recipient) model.Recipient {
	custom := map[string]string{}
	for k, v := range item.CustomFields {
		custom[strings.TrimSpace(k)] = v
	}
	return model.Recipient{
		Id:           item.Id,
		Xxx:          item.Xxx,
		Yyy:          item.Yyy,
		Sdt:          item.Sdt,
		Ttt:          item.Ttt,
		Zzz:          item.Zzz,
		Www:          item.Www,
		Uuu:          item.Uuu,
		Vvv:          item.Vvv,
		CustomFields: custom,
	}
}

func toRecipientDto(rec model.Recipient) dto.Recipient {
	return dto.Recipient{
		Id:           rec.Id,
		Phone:        rec.Phone,
		Xxx:          rec.Xxx,
		Yyy:          rec.Yyy,
		Sdt:          rec.Sdt,
		Ttt:          rec.Ttt,
		Zzz:          rec.Zzz,
		Www:          rec.Www,
		Uuu:          rec.Uuu,
		Vvv:          rec.Vvv,
		CustomFields: rec.CustomFields,
		State:        rec.State,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
