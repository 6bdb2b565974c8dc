package service

import (
	"fmt"
	"time"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/cache"
	"lnticket/api/internal/infra/postgres"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FormsService struct {
	repo  repository.Forms
	db    *gorm.DB
	cache *cache.Cache
	l     logger.Logger
}

func NewFormsService(db *gorm.DB, repo repository.Forms, cache *cache.Cache, l logger.Logger) *FormsService {
	return &FormsService{repo: repo, db: db, cache: cache, l: l}
}

func (s *FormsService) Create(tx *gorm.DB, form *domain.Forms) error {
	return s.repo.Create(tx, form)
}

// applies the typed patch and persists the merged copy
func (s *FormsService) Patch(tx *gorm.DB, form *domain.Forms, patch domain.FormPatch) (*domain.Forms, error) {
	patched := form.ApplyPatch(patch)

	err := s.repo.Update(tx, &patched)
	if err != nil {
		return nil, err
	}

	s.cache.Set(patched.FormID, &patched, time.Minute*5)
	return &patched, nil
}

func (s *FormsService) FindByID(tx *gorm.DB, formId string) (*domain.Forms, error) {
	form, err := s.repo.FindByID(tx, formId)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// tries the cache first, falls back to the database. the public submit page
// reads the same form over and over.
func (s *FormsService) FindGlobal(formId string) (*domain.Forms, error) {
	// validate uuid (to avoid unnecessary database and cache queries)
	if uuid.Validate(formId) != nil {
		return nil, domain.ErrFormNotFound
	}

	cacheV := s.cache.Load(formId)
	if cacheV != nil { // found
		form, ok := cacheV.(*domain.Forms)
		if ok {
			return form, nil
		}
	}

	form, err := s.repo.FindByID(s.db, formId)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrFormNotFound
		}
		return nil, fmt.Errorf("find form by id: %w", err)
	}

	s.cache.Set(formId, form, time.Minute*5)

	return form, nil
}

func (s *FormsService) FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Forms, error) {
	return s.repo.FindByWallets(tx, walletIds)
}

func (s *FormsService) Delete(tx *gorm.DB, formId string) error {
	s.cache.Del(formId)
	return s.repo.Delete(tx, formId)
}
