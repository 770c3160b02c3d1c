package services

import (
	"context"
	"strings"

	"github.com/example/stabiliq/internal/models"
)

const statusCheckListLimit = 1000

type StatusCheckService struct {
	store StatusCheckStore
}

func NewStatusCheckService(store StatusCheckStore) *StatusCheckService {
	return &StatusCheckService{store: store}
}

func (s *StatusCheckService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, invalid("client_name is required")
	}
	check := &models.StatusCheck{ClientName: clientName}
	if err := s.store.Create(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusCheckService) List(ctx context.Context) ([]models.StatusCheck, error) {
	checks, err := s.store.List(ctx, statusCheckListLimit)
	if err != nil {
		return nil, err
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	return checks, nil
}
