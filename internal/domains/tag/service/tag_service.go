package service

import (
	"context"
	"strings"

	"douren-backend/internal/domains/tag"
	"douren-backend/pkg/logger"
)

type tagService struct {
	repo tag.Repository
}

func NewTagService(repo tag.Repository) tag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context) ([]tag.Tag, error) {
	tags, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []tag.Tag{}
	}
	return tags, nil
}

func (s *tagService) Create(ctx context.Context, req *tag.CreateTagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &tag.Tag{
		Name:  strings.TrimSpace(req.Name),
		Index: req.Index,
	})
}

func (s *tagService) Rename(ctx context.Context, name string, req *tag.RenameTagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newName := strings.TrimSpace(req.NewName)
	if newName == name {
		// Index-only update still goes through Rename to keep one path
		return s.repo.Rename(ctx, name, newName, req.Index)
	}

	renamed, err := s.repo.Rename(ctx, name, newName, req.Index)
	if err != nil {
		return nil, err
	}

	logger.Info("tag renamed", map[string]interface{}{"from": name, "to": newName})

	return renamed, nil
}

func (s *tagService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

func (s *tagService) SyncCounts(ctx context.Context) (int64, error) {
	updated, err := s.repo.SyncCounts(ctx)
	if err != nil {
		return 0, err
	}

	logger.Info("tag counts synced", map[string]interface{}{"updated": updated})

	return updated, nil
}
