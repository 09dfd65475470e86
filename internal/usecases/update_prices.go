package usecases

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vogiahuy257/GoldDataProject/internal/interaction/vendors"
	"github.com/vogiahuy257/GoldDataProject/internal/model"
)

const ParallelFetchLimit = 3

type Repository interface {
	Create(ctx context.Context, price *model.GoldPrice) error
}

type VendorInteraction interface {
	Source() string
	GetPrices(ctx context.Context, loc *time.Location) (*vendors.PriceList, error)
}

// UpdatePricesUseCase pulls the current quote tables of every vendor and
// appends them to the store. Vendors that fail are logged and skipped; there
// is no retry.
type UpdatePricesUseCase struct {
	logger       *slog.Logger
	repository   Repository
	interactions []VendorInteraction
	loc          *time.Location
}

func NewUpdatePricesUseCase(logger *slog.Logger, repository Repository, interactions []VendorInteraction, loc *time.Location) *UpdatePricesUseCase {
	return &UpdatePricesUseCase{
		logger:       logger.With("component", "update_prices"),
		repository:   repository,
		interactions: interactions,
		loc:          loc,
	}
}

func (that *UpdatePricesUseCase) UpdatePrices(ctx context.Context) {
	log := that.logger.With("method", "UpdatePrices")

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(ParallelFetchLimit)

	for _, interaction := range that.interactions {
		group.Go(func() error {
			list, err := interaction.GetPrices(groupCtx, that.loc)
			if err != nil {
				log.Error("failed to get prices", "error", err, "source", interaction.Source())
				return nil
			}

			observedAt := list.UpdatedAt
			if observedAt.IsZero() {
				observedAt = time.Now()
			}
			observedAt = observedAt.In(that.loc)

			date := observedAt.Format("2006-01-02")
			clock := observedAt.Format("15:04:05")

			for _, quote := range list.Quotes {
				row := &model.GoldPrice{
					Source:    interaction.Source(),
					GoldType:  &quote.GoldType,
					BuyPrice:  &quote.BuyPrice,
					SellPrice: &quote.SellPrice,
					Date:      &date,
					Time:      &clock,
				}

				if err = that.repository.Create(groupCtx, row); err != nil {
					log.Error("failed to save price", "error", err, "source", interaction.Source())
				}
			}

			log.Info("vendor prices saved", "source", interaction.Source(), "count", len(list.Quotes))
			return nil
		})
	}

	_ = group.Wait()
}
