package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/internal/repository/prices"
)

// createRequest mirrors the writable GoldPrice fields. Only source is required;
// everything else is flat length/format validation, no cross-field rules.
type createRequest struct {
	Source    string     `json:"source" binding:"required,max=20"`
	GoldType  *string    `json:"gold_type" binding:"omitempty,max=100"`
	BuyPrice  *string    `json:"buy_price" binding:"omitempty,max=225"`
	SellPrice *string    `json:"sell_price" binding:"omitempty,max=225"`
	Date      *string    `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time      *string    `json:"time" binding:"omitempty,datetime=15:04:05"`
	ScrapedAt *time.Time `json:"scraped_at"`
}

func (r *createRequest) toModel() *model.GoldPrice {
	return &model.GoldPrice{
		Source:    r.Source,
		GoldType:  nilIfEmpty(r.GoldType),
		BuyPrice:  nilIfEmpty(r.BuyPrice),
		SellPrice: nilIfEmpty(r.SellPrice),
		Date:      nilIfEmpty(r.Date),
		Time:      nilIfEmpty(r.Time),
		ScrapedAt: r.ScrapedAt,
	}
}

// updateRequest is the patch payload: absent fields stay untouched.
// Source is optional but must not be empty when supplied.
type updateRequest struct {
	Source    *string    `json:"source" binding:"omitempty,max=20"`
	GoldType  *string    `json:"gold_type" binding:"omitempty,max=100"`
	BuyPrice  *string    `json:"buy_price" binding:"omitempty,max=225"`
	SellPrice *string    `json:"sell_price" binding:"omitempty,max=225"`
	Date      *string    `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time      *string    `json:"time" binding:"omitempty,datetime=15:04:05"`
	ScrapedAt *time.Time `json:"scraped_at"`
}

func (r *updateRequest) toPatch() prices.Patch {
	return prices.Patch{
		Source:    r.Source,
		GoldType:  r.GoldType,
		BuyPrice:  r.BuyPrice,
		SellPrice: r.SellPrice,
		Date:      r.Date,
		Time:      r.Time,
		ScrapedAt: r.ScrapedAt,
	}
}

// nilIfEmpty normalizes submitted empty strings to stored nulls.
func nilIfEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

var tagNamesOnce sync.Once

// useJSONTagNames makes validation errors report json field names
// instead of Go struct field names.
func useJSONTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// formatValidationErrors converts a binding error into per-field messages.
func formatValidationErrors(err error) map[string][]string {
	out := make(map[string][]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["body"] = []string{"invalid request body"}
		return out
	}

	for _, e := range validationErrors {
		field := e.Field()

		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "max":
			msg = fmt.Sprintf("%s must have maximum length %s", field, e.Param())
		case "min":
			msg = fmt.Sprintf("%s must have minimum length %s", field, e.Param())
		case "datetime":
			msg = fmt.Sprintf("%s must match format %s", field, e.Param())
		default:
			msg = fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
		}

		out[field] = append(out[field], msg)
	}

	return out
}
