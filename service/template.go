package service

import (
	"strings"

	"github.com/dilshat/zalo-sender/dao"
	"github.com/dilshat/zalo-sender/model"
	"github.com/dilshat/zalo-sender/render"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/dilshat/zalo-sender/util"
)

type TemplateService interface {
	List(userId uint32) ([]dto.Template, error)
	Get(userId, id uint32) (dto.Template, error)
	Create(userId uint32, tpl dto.Template) (dto.Template, error)
	Update(userId uint32, tpl dto.Template) (dto.Template, error)
	Delete(userId, id uint32) error
	Preview(userId uint32, req dto.Preview) (dto.PreviewResult, error)
}

type templateService struct {
	templateDao  dao.TemplateDao
	recipientDao dao.RecipientDao
}

func NewTemplateService(templateDao dao.TemplateDao, recipientDao dao.RecipientDao) TemplateService {
	return &templateService{templateDao: templateDao, recipientDao: recipientDao}
}

func (s templateService) List(userId uint32) ([]dto.Template, error) {
	templates, err := s.templateDao.GetAllActive(userId)
	if err != nil {
		return nil, err
	}
	result := []dto.Template{}
	for _, tpl := range templates {
		result = append(result, toTemplateDto(tpl))
	}
	return result, nil
}

func (s templateService) Get(userId, id uint32) (dto.Template, error) {
	tpl, err := s.templateDao.GetById(userId, id)
	if err != nil {
		return dto.Template{}, translate(err, "Template not found", "")
	}
	return toTemplateDto(tpl), nil
}

func validateTemplate(tpl dto.Template) error {
	if util.IsBlank(tpl.Name) || util.IsBlank(tpl.Content) {
		return NewInvalidPayloadError("Template name and content are required")
	}
	return nil
}

func (s templateService) Create(userId uint32, tpl dto.Template) (dto.Template, error) {
	if err := validateTemplate(tpl); err != nil {
		return dto.Template{}, err
	}

	stored := model.Template{
		UserId:    userId,
		Name:      strings.TrimSpace(tpl.Name),
		Content:   tpl.Content,
		Variables: render.Detect(tpl.Content),
	}
	id, err := s.templateDao.Create(stored)
	if err != nil {
		return dto.Template{}, translate(err, "", "Template name already exists")
	}

	return s.Get(userId, id)
}

func (s templateService) Update(userId uint32, tpl dto.Template) (dto.Template, error) {
	if tpl.Id == 0 {
		return dto.Template{}, NewInvalidPayloadError("Template id is required")
	}
	if err := validateTemplate(tpl); err != nil {
		return dto.Template{}, err
	}

	stored, err := s.templateDao.Update(model.Template{
		Id:        tpl.Id,
		UserId:    userId,
		Name:      strings.TrimSpace(tpl.Name),
		Content:   tpl.Content,
		Variables: render.Detect(tpl.Content),
	})
	if err != nil {
		return dto.Template{}, translate(err, "Template not found", "Template name already exists")
	}
	return toTemplateDto(stored), nil
}

func (s templateService) Delete(userId, id uint32) error {
	return translate(s.templateDao.Deactivate(userId, id), "Template not found", "")
}

func (s templateService) Preview(userId uint32, req dto.Preview) (dto.PreviewResult, error) {
	content := req.Content
	if req.TemplateId != 0 {
		tpl, err := s.templateDao.GetById(userId, req.TemplateId)
		if err != nil {
			return dto.PreviewResult{}, translate(err, "Template not found", "")
		}
		content = tpl.Content
	}
	if util.IsBlank(content) {
		return dto.PreviewResult{}, NewInvalidPayloadError("Template id or content is required")
	}

	fields := render.Fields{}
	for k, v := range req.Fields {
		fields[strings.ToLower(k)] = v
	}
	if req.RecipientId != 0 {
		rec, err := s.recipientDao.GetById(userId, req.RecipientId)
		if err != nil {
			return dto.PreviewResult{}, translate(err, "Recipient not found", "")
		}
		fields = rec.Fields()
	}

	return dto.PreviewResult{
		Message:   render.Render(content, fields),
		Variables: render.Detect(content),
	}, nil
}

func toTemplateDto(tpl model.Template) dto.Template {
	variables := tpl.Variables
	if variables == nil {
		variables = []string{}
	}
	return dto.Template{
		Id:        tpl.Id,
		Name:      tpl.Name,
		Content:   tpl.Content,
		Variables: variables,
		IsActive:  tpl.IsActive,
		CreatedAt: tpl.CreatedAt,
		UpdatedAt: tpl.UpdatedAt,
	}
}
