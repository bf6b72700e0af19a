package dao

import (
	"sort"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/index"
	"github.com/dilshat/zalo-sender/model"
)

type CredentialDao interface {
	//Create stores a credential, makes it the active one and deactivates the rest of the user's credentials
	Create(cred model.Credential) (uint32, error)
	//Update overwrites editable fields; with activate=true the credential becomes the only active one
	Update(cred model.Credential, activate bool) (model.Credential, error)
	//Activate makes the credential the only active one of its owner
	Activate(userId, id uint32) (model.Credential, error)
	//GetOneById returns the user's credential with the given id
	GetOneById(userId, id uint32) (model.Credential, error)
	//GetActive returns the user's active credential
	GetActive(userId uint32) (model.Credential, error)
	//GetAllLive returns the user's credentials which are not archived, newest first
	GetAllLive(userId uint32) ([]model.Credential, error)
	//Delete archives (hard=false) or removes (hard=true) a credential, refusing to drop the user's last live one
	Delete(userId, id uint32, hard bool) error
	//TouchLastUsed records when the credential was last used for sending
	TouchLastUsed(id uint32, at time.Time) error
}

func NewCredentialDao(db Db) CredentialDao {
	return &credentialDao{db: db}
}

type credentialDao struct {
	db Db
}

type finder interface {
	Find(fieldName string, value interface{}, to interface{}, options ...func(q *index.Options)) error
}

type fieldUpdater interface {
	UpdateField(data interface{}, fieldName string, value interface{}) error
}

func userCredentials(node finder, userId uint32) ([]model.Credential, error) {
	var creds []model.Credential
	err := node.Find("UserId", userId, &creds)
	return creds, ignoreNotFound(err)
}

func nameTaken(creds []model.Credential, name string, exceptId uint32) bool {
	for _, c := range creds {
		if c.Id != exceptId && c.IsLive() && c.Name == name {
			return true
		}
	}
	return false
}

func deactivateOthers(node fieldUpdater, creds []model.Credential, keepId uint32) error {
	for _, c := range creds {
		if c.Id == keepId || !c.IsActive {
			continue
		}
		if err := node.UpdateField(&model.Credential{Id: c.Id}, "IsActive", false); err != nil {
			return err
		}
	}
	return nil
}

func (d credentialDao) Create(cred model.Credential) (uint32, error) {
	tx, err := d.db.Begin(true)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	creds, err := userCredentials(tx, cred.UserId)
	if err != nil {
		return 0, err
	}
	if nameTaken(creds, cred.Name, 0) {
		return 0, ErrDuplicate
	}

	now := time.Now()
	cred.Id = 0
	cred.State = model.Live
	cred.IsActive = true
	cred.CreatedAt = now
	cred.UpdatedAt = now
	if err = tx.Save(&cred); err != nil {
		return 0, err
	}
	if err = deactivateOthers(tx, creds, cred.Id); err != nil {
		return 0, err
	}

	return cred.Id, tx.Commit()
}

func (d credentialDao) Update(cred model.Credential, activate bool) (model.Credential, error) {
	tx, err := d.db.Begin(true)
	if err != nil {
		return model.Credential{}, err
	}
	defer tx.Rollback()

	var stored model.Credential
	if err = tx.One("Id", cred.Id, &stored); err != nil {
		return model.Credential{}, err
	}
	if stored.UserId != cred.UserId || !stored.IsLive() {
		return model.Credential{}, storm.ErrNotFound
	}

	creds, err := userCredentials(tx, stored.UserId)
	if err != nil {
		return model.Credential{}, err
	}
	if nameTaken(creds, cred.Name, stored.Id) {
		return model.Credential{}, ErrDuplicate
	}

	stored.Name = cred.Name
	stored.Cookie = cred.Cookie
	stored.Imei = cred.Imei
	stored.UserAgent = cred.UserAgent
	stored.Proxy = cred.Proxy
	stored.Avatar = cred.Avatar
	stored.DisplayName = cred.DisplayName
	stored.UpdatedAt = time.Now()
	if activate {
		stored.IsActive = true
		if err = deactivateOthers(tx, creds, stored.Id); err != nil {
			return model.Credential{}, err
		}
	}
	if err = tx.Save(&stored); err != nil {
		return model.Credential{}, err
	}

	return stored, tx.Commit()
}

func (d credentialDao) Activate(userId, id uint32) (model.Credential, error) {
	tx, err := d.db.Begin(true)
	if err != nil {
		return model.Credential{}, err
	}
	defer tx.Rollback()

	creds, err := userCredentials(tx, userId)
	if err != nil {
		return model.Credential{}, err
	}
	var target *model.Credential
	for i := range creds {
		if creds[i].Id == id && creds[i].IsLive() {
			target = &creds[i]
		}
	}
	if target == nil {
		return model.Credential{}, storm.ErrNotFound
	}

	if err = deactivateOthers(tx, creds, id); err != nil {
		return model.Credential{}, err
	}
	if !target.IsActive {
		target.IsActive = true
		target.UpdatedAt = time.Now()
		if err = tx.Save(target); err != nil {
			return model.Credential{}, err
		}
	}

	return *target, tx.Commit()
}

func (d credentialDao) GetOneById(userId, id uint32) (cred model.Credential, err error) {
	err = d.db.One("Id", id, &cred)
	if err == nil && (cred.UserId != userId || !cred.IsLive()) {
		return model.Credential{}, storm.ErrNotFound
	}
	return
}

func (d credentialDao) GetActive(userId uint32) (model.Credential, error) {
	creds, err := userCredentials(d.db, userId)
	if err != nil {
		return model.Credential{}, err
	}
	for _, c := range creds {
		if c.IsActive && c.IsLive() {
			return c, nil
		}
	}
	return model.Credential{}, storm.ErrNotFound
}

func (d credentialDao) GetAllLive(userId uint32) ([]model.Credential, error) {
	creds, err := userCredentials(d.db, userId)
	if err != nil {
		return nil, err
	}
	live := make([]model.Credential, 0, len(creds))
	for _, c := range creds {
		if c.IsLive() {
			live = append(live, c)
		}
	}
	sort.Slice(live, func(i, j int) bool {
		return live[i].CreatedAt.After(live[j].CreatedAt)
	})
	return live, nil
}

func (d credentialDao) Delete(userId, id uint32, hard bool) error {
	tx, err := d.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	creds, err := userCredentials(tx, userId)
	if err != nil {
		return err
	}

	var target *model.Credential
	var live []model.Credential
	for i := range creds {
		if creds[i].Id == id {
			target = &creds[i]
		}
		if creds[i].IsLive() {
			live = append(live, creds[i])
		}
	}
	if target == nil || (!target.IsLive() && !hard) {
		return storm.ErrNotFound
	}
	wasLive, wasActive := target.IsLive(), target.IsActive
	if wasLive && len(live) <= 1 {
		return ErrLastActiveCredential
	}

	if hard {
		err = tx.DeleteStruct(target)
	} else {
		target.State = model.Archived
		target.IsActive = false
		target.UpdatedAt = time.Now()
		err = tx.Save(target)
	}
	if err != nil {
		return err
	}

	//keep exactly one active credential when the active one goes away
	if wasLive && wasActive {
		if err = promoteNewest(tx, live, target.Id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func promoteNewest(node fieldUpdater, live []model.Credential, removedId uint32) error {
	var newest *model.Credential
	for i := range live {
		if live[i].Id == removedId {
			continue
		}
		if newest == nil || live[i].UpdatedAt.After(newest.UpdatedAt) {
			newest = &live[i]
		}
	}
	if newest == nil {
		return nil
	}
	return node.UpdateField(&model.Credential{Id: newest.Id}, "IsActive", true)
}

func (d credentialDao) TouchLastUsed(id uint32, at time.Time) error {
	return d.db.UpdateField(&model.Credential{Id: id}, "LastUsed", at)
}
