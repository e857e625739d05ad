package service

import (
	"context"
	"fmt"

	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/core/domain"
)

// APILevelSyncer sends UPDATE /accounts/level/{level}/{points}.
type APILevelSyncer struct {
	sender Sender
}

// NewAPILevelSyncer creates a syncer that uses sender.
func NewAPILevelSyncer(sender Sender) *APILevelSyncer {
	return &APILevelSyncer{sender: sender}
}

// SyncLevel stores level and points remotely. The service answers 204.
func (s *APILevelSyncer) SyncLevel(ctx context.Context, level, points int) error {
	resp, err := s.sender.Send(ctx, api.NewUpdate(api.LevelPath(level, points)))
	if err != nil {
		return fmt.Errorf("sync level: %w", err)
	}
	return expectStatus(resp, domain.StatusPointsUpdated)
}
