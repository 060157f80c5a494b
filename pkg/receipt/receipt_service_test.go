package receipt

import (
	"context"
	"errors"
	"testing"

	"Grocery-Tracker/domain"
	"Grocery-Tracker/entities"
	"Grocery-Tracker/internal/testutil"
	"Grocery-Tracker/pkg/grocery"
	"Grocery-Tracker/pkg/llm"
	"Grocery-Tracker/pkg/ocr"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, image []byte, progress ocr.ProgressFunc) (string, error) {
	if progress != nil {
		progress(0.5)
	}
	return f.text, f.err
}

type fakeModel struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type fakeS3 struct {
	keys    []string
	deleted []string
	err     error
}

func (f *fakeS3) UploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return key, nil
}

func (f *fakeS3) DeleteFile(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(key string) string { return "https://bucket.example/" + key }

type fixture struct {
	service   ReceiptService
	receipts  ReceiptRepository
	groceries grocery.GroceryRepository
	model     *fakeModel
	db        *gorm.DB
}

func newFixture(t *testing.T, extractor TextExtractor, model *fakeModel, s3 *fakeS3) fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	groceryRepo := grocery.NewGroceryRepository(db)
	receiptRepo := NewReceiptRepository(db)
	groceryService := grocery.NewGroceryService(groceryRepo, zerolog.Nop())

	var svc ReceiptService
	if s3 != nil {
		svc = NewReceiptService(receiptRepo, groceryService, extractor, model, s3, 0, zerolog.Nop())
	} else {
		svc = NewReceiptService(receiptRepo, groceryService, extractor, model, nil, 0, zerolog.Nop())
	}
	return fixture{service: svc, receipts: receiptRepo, groceries: groceryRepo, model: model, db: db}
}

func TestScanReceipt(t *testing.T) {
	model := &fakeModel{answer: "```json\n[{\"name\":\"🥛 Milk\",\"perishInDays\":7},{\"name\":\"🍌 Bananas\",\"perishInDays\":4}]\n```"}
	s3 := &fakeS3{}
	f := newFixture(t, &fakeExtractor{text: "MILK 1.99\nBANANAS 0.59"}, model, s3)
	ctx := context.Background()

	var progress []float64
	res, err := f.service.ScanReceipt(ctx, domain.ScanReceiptRequest{FileName: "r.png", Image: pngImage}, func(p float64) {
		progress = append(progress, p)
	})
	require.NoError(t, err)

	assert.Equal(t, entities.ReceiptScanProcessed, res.Status)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "🥛 Milk", res.Items[0].Name)
	assert.Equal(t, []float64{0.5}, progress)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "MILK 1.99\nBANANAS 0.59")

	require.Len(t, s3.keys, 1)
	assert.Equal(t, "receipts/receipt-"+res.ScanID+".png", s3.keys[0])
	assert.Empty(t, s3.deleted)
	assert.Equal(t, "https://bucket.example/"+s3.keys[0], res.ImageURL)

	stored, err := f.groceries.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	scan, err := f.service.GetReceiptScan(ctx, res.ScanID)
	require.NoError(t, err)
	assert.Equal(t, entities.ReceiptScanProcessed, scan.Status)
	assert.Equal(t, 2, scan.ItemCount)
	assert.Equal(t, "MILK 1.99\nBANANAS 0.59", scan.OcrResults)
}

func TestScanReceiptRescanInsertsAgain(t *testing.T) {
	model := &fakeModel{answer: `[{"name":"🥚 Eggs","perishInDays":14}]`}
	f := newFixture(t, &fakeExtractor{text: "EGGS"}, model, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.service.ScanReceipt(ctx, domain.ScanReceiptRequest{Image: pngImage}, nil)
		require.NoError(t, err)
	}

	stored, err := f.groceries.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestScanReceiptFailures(t *testing.T) {
	tests := []struct {
		name      string
		image     []byte
		extractor *fakeExtractor
		model     *fakeModel
		wantErr   error
		wantCalls int
	}{
		{
			name:      "not an image",
			image:     []byte("plain text"),
			extractor: &fakeExtractor{text: "x"},
			model:     &fakeModel{},
			wantErr:   domain.ErrOCR,
		},
		{
			name:      "ocr failure",
			image:     pngImage,
			extractor: &fakeExtractor{err: domain.ErrOCR},
			model:     &fakeModel{},
			wantErr:   domain.ErrOCR,
		},
		{
			name:      "upstream failure",
			image:     pngImage,
			extractor: &fakeExtractor{text: "MILK"},
			model:     &fakeModel{err: &llm.UpstreamError{StatusCode: 503, Detail: "overloaded"}},
			wantErr:   domain.ErrUpstream,
			wantCalls: 1,
		},
		{
			name:      "unparseable answer",
			image:     pngImage,
			extractor: &fakeExtractor{text: "MILK"},
			model:     &fakeModel{answer: "Sure! You bought milk."},
			wantErr:   domain.ErrExtractionParse,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.extractor, tt.model, nil)
			ctx := context.Background()

			_, err := f.service.ScanReceipt(ctx, domain.ScanReceiptRequest{Image: tt.image}, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, tt.model.prompts, tt.wantCalls)

			stored, err := f.groceries.GetGroceryItems(ctx)
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestScanReceiptArchiveFailureIsNotFatal(t *testing.T) {
	model := &fakeModel{answer: `[{"name":"Tea","perishInDays":365}]`}
	f := newFixture(t, &fakeExtractor{text: "TEA"}, model, &fakeS3{err: errors.New("access denied")})

	res, err := f.service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: pngImage}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.ImageURL)
	assert.Len(t, res.Items, 1)
}

func TestScanReceiptRecordsFailure(t *testing.T) {
	model := &fakeModel{answer: `not json`}
	s3 := &fakeS3{}
	f := newFixture(t, &fakeExtractor{text: "MILK"}, model, s3)
	ctx := context.Background()

	_, err := f.service.ScanReceipt(ctx, domain.ScanReceiptRequest{Image: pngImage}, nil)
	require.Error(t, err)

	var scans []entities.ReceiptScan
	require.NoError(t, f.db.Find(&scans).Error)
	require.Len(t, scans, 1)
	assert.Equal(t, entities.ReceiptScanFailed, scans[0].Status)
	assert.Contains(t, scans[0].Error, domain.ErrExtractionParse.Error())
	assert.Empty(t, scans[0].ImageURL)

	require.Len(t, s3.keys, 1)
	assert.Equal(t, s3.keys, s3.deleted)
}

func TestGetReceiptScan(t *testing.T) {
	f := newFixture(t, &fakeExtractor{}, &fakeModel{}, nil)

	_, err := f.service.GetReceiptScan(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseID)

	_, err = f.service.GetReceiptScan(context.Background(), "8a1f0d3e-9f7b-4c1e-a6a5-0c0b9e6f4d21")
	assert.ErrorIs(t, err, domain.ErrReceiptScanNotFound)
}
