package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vogiahuy257/GoldDataProject/internal/model"
	"github.com/vogiahuy257/GoldDataProject/internal/repository/prices"
)

type PricesRepository interface {
	ListAll(ctx context.Context) ([]*model.GoldPrice, error)
	ListBySource(ctx context.Context, source string) ([]*model.GoldPrice, error)
	Get(ctx context.Context, id int64) (*model.GoldPrice, error)
	Create(ctx context.Context, price *model.GoldPrice) error
	Update(ctx context.Context, id int64, patch prices.Patch) (*model.GoldPrice, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	logger     *slog.Logger
	repository PricesRepository
}

func NewHandler(logger *slog.Logger, repository PricesRepository) *Handler {
	return &Handler{logger: logger.With("component", "api"), repository: repository}
}

func (that *Handler) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/gold-prices")
	group.GET("", that.list)
	group.GET("/source/:source", that.listBySource)
	group.GET("/:id", that.show)
	group.POST("", that.store)
	group.PUT("/:id", that.update)
	group.PATCH("/:id", that.update)
	group.DELETE("/:id", that.destroy)
}

func (that *Handler) list(c *gin.Context) {
	log := that.logger.With("method", "list")

	rows, err := that.repository.ListAll(c.Request.Context())
	if err != nil {
		log.Error("failed to list prices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	if rows == nil {
		rows = []*model.GoldPrice{}
	}

	c.JSON(http.StatusOK, rows)
}

func (that *Handler) listBySource(c *gin.Context) {
	log := that.logger.With("method", "listBySource")

	rows, err := that.repository.ListBySource(c.Request.Context(), c.Param("source"))
	if err != nil {
		if errors.Is(err, prices.ErrUnsupportedSource) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Source not supported"})
			return
		}

		log.Error("failed to list prices by source", "error", err, "source", c.Param("source"))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	if rows == nil {
		rows = []*model.GoldPrice{}
	}

	c.JSON(http.StatusOK, rows)
}

func (that *Handler) show(c *gin.Context) {
	log := that.logger.With("method", "show")

	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := that.repository.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, prices.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}

		log.Error("failed to get price", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, row)
}

func (that *Handler) store(c *gin.Context) {
	log := that.logger.With("method", "store")

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  formatValidationErrors(err),
		})
		return
	}

	row := req.toModel()
	if err := that.repository.Create(c.Request.Context(), row); err != nil {
		log.Error("failed to create price", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (that *Handler) update(c *gin.Context) {
	log := that.logger.With("method", "update")

	id, ok := parseID(c)
	if !ok {
		return
	}

	// Existence is checked before validation, so an unknown id
	// always answers 404 even with a malformed payload.
	if _, err := that.repository.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, prices.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}

		log.Error("failed to get price", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  formatValidationErrors(err),
		})
		return
	}

	if req.Source != nil && *req.Source == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  map[string][]string{"source": {"source is required"}},
		})
		return
	}

	row, err := that.repository.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		if errors.Is(err, prices.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}

		log.Error("failed to update price", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, row)
}

func (that *Handler) destroy(c *gin.Context) {
	log := that.logger.With("method", "destroy")

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := that.repository.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, prices.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}

		log.Error("failed to delete price", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// parseID answers 404 for garbage ids, like a lookup on an id that
// cannot exist.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return 0, false
	}

	return id, true
}
