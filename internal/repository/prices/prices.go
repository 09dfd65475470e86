package prices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("gold price not found")
	// ErrUnsupportedSource is returned by ListBySource for vendors we don't track.
	ErrUnsupportedSource = errors.New("source not supported")
)

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Source    *string
	GoldType  *string
	BuyPrice  *string
	SellPrice *string
	Date      *string
	Time      *string
	ScrapedAt *time.Time
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every stored quote in insertion order.
func (that *Repository) ListAll(ctx context.Context) ([]*model.GoldPrice, error) {
	var rows []*model.GoldPrice

	if err := that.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch prices from database: %w", err)
	}

	return rows, nil
}

// ListBySource returns the quotes whose source equals the upper-cased input.
// Only SJC, DOJI and PNJ are accepted; anything else fails with ErrUnsupportedSource.
func (that *Repository) ListBySource(ctx context.Context, source string) ([]*model.GoldPrice, error) {
	upper := strings.ToUpper(source)
	if !model.SupportedSource(upper) {
		return nil, ErrUnsupportedSource
	}

	var rows []*model.GoldPrice

	query := that.db.WithContext(ctx).Where("source = ?", upper).Order("id")
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch prices by source from database: %w", err)
	}

	return rows, nil
}

func (that *Repository) Get(ctx context.Context, id int64) (*model.GoldPrice, error) {
	var row model.GoldPrice

	if err := that.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch price from database: %w", err)
	}

	return &row, nil
}

// Create persists a new quote and assigns its id.
// A missing scraped_at is stamped with the ingestion instant.
func (that *Repository) Create(ctx context.Context, price *model.GoldPrice) error {
	if price.ScrapedAt == nil {
		now := time.Now()
		price.ScrapedAt = &now
	}

	if err := that.db.WithContext(ctx).Create(price).Error; err != nil {
		return fmt.Errorf("create price in database: %w", err)
	}

	return nil
}

// Update applies a field-wise merge of patch onto the stored row.
func (that *Repository) Update(ctx context.Context, id int64, patch Patch) (*model.GoldPrice, error) {
	row, err := that.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Source != nil {
		row.Source = *patch.Source
	}
	if patch.GoldType != nil {
		row.GoldType = patch.GoldType
	}
	if patch.BuyPrice != nil {
		row.BuyPrice = patch.BuyPrice
	}
	if patch.SellPrice != nil {
		row.SellPrice = patch.SellPrice
	}
	if patch.Date != nil {
		row.Date = patch.Date
	}
	if patch.Time != nil {
		row.Time = patch.Time
	}
	if patch.ScrapedAt != nil {
		row.ScrapedAt = patch.ScrapedAt
	}

	if err = that.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, fmt.Errorf("update price in database: %w", err)
	}

	return row, nil
}

// Delete removes the row permanently. There is no soft delete.
func (that *Repository) Delete(ctx context.Context, id int64) error {
	result := that.db.WithContext(ctx).Delete(&model.GoldPrice{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("delete price from database: %w", err)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
