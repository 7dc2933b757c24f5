package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/models"
)

// ContestService manages admin-created contests. The admin gate lives at the
// route layer.
type ContestService struct {
	Store kv.Store
}

// List returns all contests in scan order.
func (s *ContestService) List(ctx context.Context) ([]models.Contest, error) {
	raws, err := s.Store.GetByPrefix(ctx, models.ContestKeyPrefix)
	if err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	contests := []models.Contest{}
	for _, raw := range raws {
		var contest models.Contest
		if err := json.Unmarshal(raw, &contest); err != nil {
			continue
		}
		contests = append(contests, contest)
	}
	return contests, nil
}

// Create persists a new contest with an empty entry list.
func (s *ContestService) Create(ctx context.Context, title, description, startDate, endDate, category string) (*models.Contest, error) {
	if title == "" {
		return nil, apierr.Validation("title is required")
	}

	contest := models.Contest{
		ID:          kv.NewID(models.ContestKeyPrefix),
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Category:    category,
		Entries:     []models.ContestEntry{},
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Store.Set(ctx, contest.ID, contest); err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	log.Info().Str("contestId", contest.ID).Str("title", title).Msg("Contest created")
	return &contest, nil
}
