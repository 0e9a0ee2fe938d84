package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/google/uuid"
)

type resourceService struct {
	resources repository.ResourceRepo
}

func NewResourceService(resources repository.ResourceRepo) ResourceService {
	return &resourceService{resources: resources}
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("resource name is required")
	}
	if _, err := s.resources.GetByName(ctx, r.Name); err == nil {
		return fmt.Errorf("resource %q already exists", r.Name)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().UTC()
	return s.resources.Create(ctx, r)
}

func (s *resourceService) Resolve(ctx context.Context, ref string) (*domain.Resource, error) {
	r, err := s.resources.GetByName(ctx, ref)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return r, err
	}
	r, err = s.resources.GetByID(ctx, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("resource %q: %w", ref, repository.ErrNotFound)
	}
	return r, err
}

func (s *resourceService) List(ctx context.Context) ([]*domain.Resource, error) {
	return s.resources.List(ctx)
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	return s.resources.Delete(ctx, id)
}
