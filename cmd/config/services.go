package config

import (
	"context"
	"time"

	"Grocery-Tracker/internal/utils"
	"Grocery-Tracker/internal/utils/storage"
	"Grocery-Tracker/pkg/grocery"
	"Grocery-Tracker/pkg/llm"
	"Grocery-Tracker/pkg/ocr"
	"Grocery-Tracker/pkg/ocr/tesseract"
	"Grocery-Tracker/pkg/receipt"
	"Grocery-Tracker/pkg/recipe"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Services is the shared service graph used by both the HTTP server and
// the CLI commands.
type Services struct {
	Grocery grocery.GroceryService
	Receipt receipt.ReceiptService
	Recipe  recipe.RecipeService
	Model   llm.Client
}

func NewServices(ctx context.Context, db *gorm.DB, logger zerolog.Logger) (*Services, error) {
	// utils
	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		return nil, err
	}
	if s3 == nil {
		logger.Info().Msg("AWS_S3_BUCKET not set, receipt images will not be archived")
	}

	model := llm.NewGeminiClient(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
		utils.GetConfig("GEMINI_BASE_URL"),
		utils.GetDuration("GEMINI_TIMEOUT", 60*time.Second),
	)
	if utils.GetConfig("GEMINI_API_KEY") == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set, model calls will fail")
	}
	extractor := ocr.NewExtractor(tesseract.New(utils.GetConfig("OCR_LANGUAGE")))

	// Repository
	groceryRepository := grocery.NewGroceryRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)

	// Service
	groceryService := grocery.NewGroceryService(groceryRepository, logger)
	receiptService := receipt.NewReceiptService(
		receiptRepository,
		groceryService,
		extractor,
		model,
		s3,
		utils.GetDuration("SCAN_TIMEOUT", 2*time.Minute),
		logger,
	)
	recipeService := recipe.NewRecipeService(groceryRepository, model, logger)

	return &Services{
		Grocery: groceryService,
		Receipt: receiptService,
		Recipe:  recipeService,
		Model:   model,
	}, nil
}
