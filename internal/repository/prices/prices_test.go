package prices_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/internal/repository/prices"
	"github.com/vogiahuy257/GoldDataProject/testing/suite"
)

func Test_Repository_Lifecycle(t *testing.T) {
	ctx, st := suite.New(t, suite.WithPostgres())
	repository := prices.NewRepository(st.GetDB())

	t.Run("should assign an id and default scraped_at on create", func(t *testing.T) {
		// Given: A quote without a scraped_at timestamp
		row := &model.GoldPrice{
			Source:    model.SourceSJC,
			GoldType:  suite.Str("Vàng SJC 1L"),
			BuyPrice:  suite.Str("7,400,000"),
			SellPrice: suite.Str("7,450,000"),
			Date:      suite.Str("2026-08-01"),
			Time:      suite.Str("09:30:00"),
		}

		// When: We create it
		require.NoError(t, repository.Create(ctx, row))

		// Then: It gets an id, scraped_at is stamped, and a get returns the same record
		require.NotZero(t, row.ID)
		require.NotNil(t, row.ScrapedAt)
		require.WithinDuration(t, time.Now(), *row.ScrapedAt, time.Minute)

		fetched, err := repository.Get(ctx, row.ID)
		require.NoError(t, err)
		require.Equal(t, row.ID, fetched.ID)
		require.Equal(t, model.SourceSJC, fetched.Source)
		require.Equal(t, "Vàng SJC 1L", *fetched.GoldType)
		require.Equal(t, "7,400,000", *fetched.BuyPrice)
		require.Equal(t, "7,450,000", *fetched.SellPrice)
		require.Equal(t, "2026-08-01", *fetched.Date)
		require.Equal(t, "09:30:00", *fetched.Time)
	})

	t.Run("should permit duplicate observations", func(t *testing.T) {
		row := &model.GoldPrice{
			Source:   model.SourceDOJI,
			GoldType: suite.Str("AVPL"),
			Date:     suite.Str("2026-08-01"),
			Time:     suite.Str("09:30:00"),
		}
		require.NoError(t, repository.Create(ctx, row))

		duplicate := &model.GoldPrice{
			Source:   model.SourceDOJI,
			GoldType: suite.Str("AVPL"),
			Date:     suite.Str("2026-08-01"),
			Time:     suite.Str("09:30:00"),
		}
		require.NoError(t, repository.Create(ctx, duplicate))
		require.NotEqual(t, row.ID, duplicate.ID)
	})

	t.Run("should store a quote without a gold type", func(t *testing.T) {
		row := &model.GoldPrice{Source: model.SourcePNJ}
		require.NoError(t, repository.Create(ctx, row))

		fetched, err := repository.Get(ctx, row.ID)
		require.NoError(t, err)
		require.Nil(t, fetched.GoldType)
	})

	t.Run("should change only the patched field on update", func(t *testing.T) {
		row := &model.GoldPrice{
			Source:    model.SourceSJC,
			GoldType:  suite.Str("Nhẫn 9999"),
			BuyPrice:  suite.Str("7,100,000"),
			SellPrice: suite.Str("7,150,000"),
			Date:      suite.Str("2026-08-02"),
			Time:      suite.Str("10:00:00"),
		}
		require.NoError(t, repository.Create(ctx, row))

		updated, err := repository.Update(ctx, row.ID, prices.Patch{GoldType: suite.Str("Nhẫn 999.9")})
		require.NoError(t, err)

		require.Equal(t, "Nhẫn 999.9", *updated.GoldType)
		require.Equal(t, row.Source, updated.Source)
		require.Equal(t, *row.BuyPrice, *updated.BuyPrice)
		require.Equal(t, *row.SellPrice, *updated.SellPrice)
		require.Equal(t, *row.Date, *updated.Date)
		require.Equal(t, *row.Time, *updated.Time)
	})

	t.Run("shouldn't create a record when updating an unknown id", func(t *testing.T) {
		var before int64
		require.NoError(t, st.GetDB().WithContext(ctx).Model(&model.GoldPrice{}).Count(&before).Error)

		_, err := repository.Update(ctx, 999999, prices.Patch{GoldType: suite.Str("x")})
		require.ErrorIs(t, err, prices.ErrNotFound)

		var after int64
		require.NoError(t, st.GetDB().WithContext(ctx).Model(&model.GoldPrice{}).Count(&after).Error)
		require.Equal(t, before, after)
	})

	t.Run("should delete permanently", func(t *testing.T) {
		row := &model.GoldPrice{Source: model.SourceSJC}
		require.NoError(t, repository.Create(ctx, row))

		require.NoError(t, repository.Delete(ctx, row.ID))

		_, err := repository.Get(ctx, row.ID)
		require.ErrorIs(t, err, prices.ErrNotFound)

		require.ErrorIs(t, repository.Delete(ctx, row.ID), prices.ErrNotFound)
	})
}

func Test_Repository_ListBySource(t *testing.T) {
	ctx, st := suite.New(t, suite.WithPostgres())
	repository := prices.NewRepository(st.GetDB())

	// Given: Quotes from all three vendors
	for _, source := range model.Sources {
		require.NoError(t, repository.Create(ctx, &model.GoldPrice{Source: source, GoldType: suite.Str("Vàng " + source)}))
	}

	t.Run("should match the upper-cased source for any case variant", func(t *testing.T) {
		for _, variant := range []string{"SJC", "sjc", "Sjc"} {
			rows, err := repository.ListBySource(ctx, variant)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			require.Equal(t, model.SourceSJC, rows[0].Source)
		}
	})

	t.Run("should fail for unsupported sources", func(t *testing.T) {
		for _, source := range []string{"BTMC", "sj", ""} {
			_, err := repository.ListBySource(ctx, source)
			require.ErrorIs(t, err, prices.ErrUnsupportedSource)
		}
	})

	t.Run("should list everything unfiltered", func(t *testing.T) {
		rows, err := repository.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
	})
}
