package service

import (
	"context"
	"fmt"

	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/core/domain"
)

// CatalogService reads learning content. Games, sections and lessons
// rarely change and are served from the response cache; goals and the
// leaderboard are always fetched.
type CatalogService struct {
	client CachingSender
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(client CachingSender) *CatalogService {
	return &CatalogService{client: client}
}

// Games lists the practice games.
func (s *CatalogService) Games(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	err := s.fetch(ctx, api.GamesPath(), true, "games", &games)
	return games, err
}

// Sections lists the lesson sections.
func (s *CatalogService) Sections(ctx context.Context) ([]domain.Section, error) {
	var sections []domain.Section
	err := s.fetch(ctx, api.SectionsPath(), true, "sections", &sections)
	return sections, err
}

// SectionLessons lists the lessons of a section.
func (s *CatalogService) SectionLessons(ctx context.Context, sectionID int) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	err := s.fetch(ctx, api.SectionLessonsPath(sectionID), true, "lessons", &lessons)
	return lessons, err
}

// Lesson returns one lesson. The service wraps it in a one-element list.
func (s *CatalogService) Lesson(ctx context.Context, id int) (domain.Lesson, error) {
	var lessons []domain.Lesson
	if err := s.fetch(ctx, api.LessonPath(id), true, "lessons", &lessons); err != nil {
		return domain.Lesson{}, err
	}
	if len(lessons) == 0 {
		return domain.Lesson{}, domain.ErrNotFound.WithDetails(fmt.Sprintf("lesson %d", id))
	}
	return lessons[0], nil
}

// Goals lists every goal.
func (s *CatalogService) Goals(ctx context.Context) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := s.fetch(ctx, api.GoalsPath(), false, "goals", &goals)
	return goals, err
}

// RecentGoals lists recently completed goals.
func (s *CatalogService) RecentGoals(ctx context.Context) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := s.fetch(ctx, api.RecentGoalsPath(), false, "goals", &goals)
	return goals, err
}

// Leaderboard lists the top accounts.
func (s *CatalogService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	err := s.fetch(ctx, api.LeaderboardPath(), false, "leaderboard", &entries)
	return entries, err
}

func (s *CatalogService) fetch(ctx context.Context, path string, cached bool, key string, v any) error {
	req := api.NewFetch(path)

	var (
		resp *api.Response
		err  error
	)
	if cached {
		resp, err = s.client.SendCached(ctx, req)
	} else {
		resp, err = s.client.Send(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", key, err)
	}
	if err := expectStatus(resp, domain.StatusOK); err != nil {
		return err
	}
	if err := resp.Decode(key, v); err != nil {
		return fmt.Errorf("fetch %s: %w", key, err)
	}
	return nil
}
