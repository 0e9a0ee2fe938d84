package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

type settingsService struct {
	repo     repository.ViewSettingsRepo
	defaults domain.ViewSettings
}

// NewSettingsService serves defaults until the first Save.
func NewSettingsService(repo repository.ViewSettingsRepo, defaults domain.ViewSettings) SettingsService {
	return &settingsService{repo: repo, defaults: defaults}
}

func (s *settingsService) Get(ctx context.Context) (domain.ViewSettings, error) {
	saved, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return s.defaults.Clone(), nil
	}
	if err != nil {
		return domain.ViewSettings{}, err
	}
	return *saved, nil
}

func (s *settingsService) Save(ctx context.Context, v domain.ViewSettings) error {
	if err := v.Validate(); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, v)
}
