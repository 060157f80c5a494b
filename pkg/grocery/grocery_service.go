package grocery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Grocery-Tracker/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		GetGroceryItems(ctx context.Context) ([]domain.GroceryItemResponse, error)
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest) (domain.GroceryItemResponse, error)
		AddExtractedEntries(ctx context.Context, entries []domain.ExtractedEntry) ([]domain.GroceryItemResponse, error)
		UpdateExpiry(ctx context.Context, id int64, req domain.UpdateExpiryRequest) error
		DeleteGroceryItem(ctx context.Context, id int64) error
		ClearExpired(ctx context.Context, req domain.ClearExpiredRequest) (domain.ClearExpiredResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		logger            zerolog.Logger
		now               func() time.Time
	}
)

func NewGroceryService(groceryRepository GroceryRepository, logger zerolog.Logger) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		logger:            logger.With().Str("component", "grocery").Logger(),
		now:               time.Now,
	}
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStore, err)
}

func (s *groceryService) GetGroceryItems(ctx context.Context) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	now := s.now()
	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item, now))
	}
	return response, nil
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest) (domain.GroceryItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.GroceryItemResponse{}, domain.ErrEmptyItemName
	}

	if req.PerishInDays != nil && req.ExpiresOn != "" {
		return domain.GroceryItemResponse{}, domain.ErrConflictingExpiry
	}

	now := s.now()
	entry := domain.ExtractedEntry{Name: name}
	if req.PerishInDays != nil {
		entry.PerishInDays = *req.PerishInDays
	}

	items := Materialize([]domain.ExtractedEntry{entry}, now)
	if req.ExpiresOn != "" {
		expiresOn, err := domain.ParseExpiryDate(req.ExpiresOn)
		if err != nil {
			return domain.GroceryItemResponse{}, err
		}
		items[0].ExpiresOn = &expiresOn
	}

	if err := s.groceryRepository.CreateGroceryItems(ctx, items); err != nil {
		return domain.GroceryItemResponse{}, storeError(err)
	}
	return toResponse(items[0], now), nil
}

func (s *groceryService) AddExtractedEntries(ctx context.Context, entries []domain.ExtractedEntry) ([]domain.GroceryItemResponse, error) {
	now := s.now()
	items := Materialize(entries, now)

	if err := s.groceryRepository.CreateGroceryItems(ctx, items); err != nil {
		s.logger.Error().Err(err).Int("batch", len(items)).Msg("bulk insert rejected")
		return nil, storeError(err)
	}

	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item, now))
	}
	return response, nil
}

func (s *groceryService) UpdateExpiry(ctx context.Context, id int64, req domain.UpdateExpiryRequest) error {
	expiresOn, err := domain.ParseExpiryDate(req.ExpiresOn)
	if err != nil {
		return err
	}

	if err := s.groceryRepository.UpdateExpiry(ctx, id, expiresOn); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryItemNotFound
		}
		return storeError(err)
	}
	return nil
}

func (s *groceryService) DeleteGroceryItem(ctx context.Context, id int64) error {
	if err := s.groceryRepository.DeleteGroceryItem(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

func (s *groceryService) ClearExpired(ctx context.Context, req domain.ClearExpiredRequest) (domain.ClearExpiredResponse, error) {
	ids := ExpiredIDs(req.Items, s.now())
	if len(ids) == 0 {
		return domain.ClearExpiredResponse{DeletedIDs: []int64{}}, domain.ErrNothingExpired
	}

	deleted, err := s.groceryRepository.DeleteGroceryItems(ctx, ids)
	if err != nil {
		return domain.ClearExpiredResponse{}, storeError(err)
	}
	if int(deleted) != len(ids) {
		s.logger.Warn().Int64("deleted", deleted).Int("requested", len(ids)).
			Msg("some expired items were already removed")
	}

	return domain.ClearExpiredResponse{
		DeletedIDs: ids,
		Deleted:    int(deleted),
	}, nil
}
