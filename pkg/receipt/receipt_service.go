package receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/entities"
	"Grocery-Tracker/internal/utils/storage"
	"Grocery-Tracker/pkg/grocery"
	"Grocery-Tracker/pkg/llm"
	"Grocery-Tracker/pkg/ocr"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	ReceiptService interface {
		ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest, progress ocr.ProgressFunc) (domain.ScanReceiptResponse, error)
		GetReceiptScan(ctx context.Context, id string) (domain.ReceiptScanResponse, error)
	}

	// TextExtractor is satisfied by *ocr.Extractor.
	TextExtractor interface {
		Extract(ctx context.Context, image []byte, progress ocr.ProgressFunc) (string, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		groceryService    grocery.GroceryService
		extractor         TextExtractor
		model             llm.Client
		s3                storage.AwsS3
		timeout           time.Duration
		logger            zerolog.Logger
	}
)

// NewReceiptService wires the scan pipeline. s3 may be nil, in which case
// receipt images are not archived.
func NewReceiptService(
	receiptRepository ReceiptRepository,
	groceryService grocery.GroceryService,
	extractor TextExtractor,
	model llm.Client,
	s3 storage.AwsS3,
	timeout time.Duration,
	logger zerolog.Logger,
) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		groceryService:    groceryService,
		extractor:         extractor,
		model:             model,
		s3:                s3,
		timeout:           timeout,
		logger:            logger.With().Str("component", "receipt").Logger(),
	}
}

// ScanReceipt runs image → OCR → normalize → model extraction →
// materialize → bulk insert. Any failing step aborts the scan; rows are only
// written by the final step.
func (s *receiptService) ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest, progress ocr.ProgressFunc) (domain.ScanReceiptResponse, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	mtype, err := ocr.DetectImage(req.Image)
	if err != nil {
		return domain.ScanReceiptResponse{}, fmt.Errorf("%w: %w", domain.ErrOCR, err)
	}

	scan := &entities.ReceiptScan{
		ID:     uuid.New(),
		Status: entities.ReceiptScanPending,
	}
	log := s.logger.With().Str("scan_id", scan.ID.String()).Str("file", req.FileName).Logger()

	var archiveKey string
	if s.s3 != nil {
		key := fmt.Sprintf("receipts/receipt-%s%s", scan.ID.String(), mtype.Extension())
		if objectKey, err := s.s3.UploadFile(ctx, key, req.Image, mtype.String()); err != nil {
			log.Warn().Err(err).Msg("receipt image not archived")
		} else {
			archiveKey = objectKey
			scan.ImageURL = s.s3.GetPublicLinkKey(objectKey)
		}
	}

	if err := s.receiptRepository.CreateReceiptScan(ctx, scan); err != nil {
		s.discardArchive(ctx, log, archiveKey)
		return domain.ScanReceiptResponse{}, fmt.Errorf("%w: %w", domain.ErrStore, err)
	}

	text, err := s.extractor.Extract(ctx, req.Image, progress)
	if err != nil {
		return domain.ScanReceiptResponse{}, s.fail(ctx, log, scan, archiveKey, "ocr", err)
	}
	scan.OcrResults = text

	answer, err := s.model.Generate(ctx, BuildExtractionPrompt(text))
	if err != nil {
		return domain.ScanReceiptResponse{}, s.fail(ctx, log, scan, archiveKey, "extract", err)
	}

	entries, err := ParseExtraction(answer)
	if err != nil {
		log.Debug().Str("response", answer).Msg("unparseable extraction response")
		return domain.ScanReceiptResponse{}, s.fail(ctx, log, scan, archiveKey, "parse", err)
	}

	var items []domain.GroceryItemResponse
	if len(entries) > 0 {
		items, err = s.groceryService.AddExtractedEntries(ctx, entries)
		if err != nil {
			return domain.ScanReceiptResponse{}, s.fail(ctx, log, scan, archiveKey, "materialize", err)
		}
	}

	scan.Status = entities.ReceiptScanProcessed
	scan.ItemCount = len(items)
	if err := s.receiptRepository.UpdateReceiptScan(ctx, scan); err != nil {
		log.Error().Err(err).Msg("failed to record processed scan")
	}
	log.Info().Int("items", len(items)).Msg("receipt processed")

	if items == nil {
		items = []domain.GroceryItemResponse{}
	}
	return domain.ScanReceiptResponse{
		ScanID:   scan.ID.String(),
		Status:   scan.Status,
		ImageURL: scan.ImageURL,
		Items:    items,
	}, nil
}

// fail records the failure on the scan row, drops the archived image and
// hands err back. Both happen even if ctx has already been cancelled.
func (s *receiptService) fail(ctx context.Context, log zerolog.Logger, scan *entities.ReceiptScan, archiveKey, step string, err error) error {
	log.Error().Err(err).Str("step", step).Msg("receipt scan failed")

	if archiveKey != "" {
		s.discardArchive(ctx, log, archiveKey)
		scan.ImageURL = ""
	}
	scan.Status = entities.ReceiptScanFailed
	scan.Error = err.Error()
	if uerr := s.receiptRepository.UpdateReceiptScan(context.WithoutCancel(ctx), scan); uerr != nil {
		log.Error().Err(uerr).Msg("failed to record failed scan")
	}
	return err
}

func (s *receiptService) discardArchive(ctx context.Context, log zerolog.Logger, key string) {
	if key == "" {
		return
	}
	if err := s.s3.DeleteFile(context.WithoutCancel(ctx), key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("archived receipt image not removed")
	}
}

func (s *receiptService) GetReceiptScan(ctx context.Context, id string) (domain.ReceiptScanResponse, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return domain.ReceiptScanResponse{}, domain.ErrParseID
	}

	scan, err := s.receiptRepository.GetReceiptScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrReceiptScanNotFound
		}
		return domain.ReceiptScanResponse{}, fmt.Errorf("%w: %w", domain.ErrStore, err)
	}

	return domain.ReceiptScanResponse{
		ID:         scan.ID.String(),
		Status:     scan.Status,
		ImageURL:   scan.ImageURL,
		OcrResults: scan.OcrResults,
		ItemCount:  scan.ItemCount,
		Error:      scan.Error,
		CreatedAt:  scan.CreatedAt,
	}, nil
}
