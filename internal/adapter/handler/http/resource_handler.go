package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/motodash/internal/core/domain"
	"github.com/sm8ta/motodash/internal/core/ports"
)

// ResourceHandler serves the five CRUD routes of one resource type.
type ResourceHandler[T any, I domain.Input] struct {
	service ports.ResourceService[T, I]
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewResourceHandler[T any, I domain.Input](
	service ports.ResourceService[T, I],
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ResourceHandler[T, I] {
	return &ResourceHandler[T, I]{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the handler under /{resource}.
func (h *ResourceHandler[T, I]) Register(r gin.IRouter) {
	group := r.Group("/" + h.service.Resource())
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// @Summary Список записей
// @Description Все записи ресурса, новые первыми
// @Tags resources
// @Produce json
// @Param resource path string true "Ресурс" Enums(bikes, fuel, maintenance, parts, tours)
// @Success 200 {array} object "Список записей"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /{resource} [get]
func (h *ResourceHandler[T, I]) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, records)
}

// @Summary Получить запись
// @Description Получение записи по ID
// @Tags resources
// @Produce json
// @Param resource path string true "Ресурс" Enums(bikes, fuel, maintenance, parts, tours)
// @Param id path string true "ID записи"
// @Success 200 {object} object "Запись найдена"
// @Failure 404 {object} errorResponse "Запись не найдена"
// @Router /{resource}/{id} [get]
func (h *ResourceHandler[T, I]) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, record)
}

// @Summary Создать запись
// @Description Числа принимаются и строкой. ID генерируется, если не передан.
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Ресурс" Enums(bikes, fuel, maintenance, parts, tours)
// @Param request body object true "Данные записи"
// @Success 201 {object} object "Запись создана"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /{resource} [post]
func (h *ResourceHandler[T, I]) Create(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	in, err := h.bindInput(c)
	if err != nil {
		h.handleError(c, err, "")
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Обновить запись
// @Description Сохраняются только переданные поля
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Ресурс" Enums(bikes, fuel, maintenance, parts, tours)
// @Param id path string true "ID записи"
// @Param request body object true "Изменённые поля"
// @Success 200 {object} object "Запись обновлена"
// @Failure 400 {object} errorResponse "Неверный запрос или нет изменений"
// @Failure 404 {object} errorResponse "Запись не найдена"
// @Router /{resource}/{id} [put]
func (h *ResourceHandler[T, I]) Update(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")

	in, err := h.bindInput(c)
	if err != nil {
		h.handleError(c, err, id)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Удалить запись
// @Description Повторное удаление не является ошибкой
// @Tags resources
// @Param resource path string true "Ресурс" Enums(bikes, fuel, maintenance, parts, tours)
// @Param id path string true "ID записи"
// @Success 204 "Запись удалена"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T, I]) Delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, id)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindInput decodes the body into a fresh input. An empty body decodes to an
// input with no fields set.
func (h *ResourceHandler[T, I]) bindInput(c *gin.Context) (I, error) {
	in := h.service.NewInput()

	err := c.ShouldBindJSON(in)
	if err == nil || errors.Is(err, io.EOF) {
		return in, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return in, domain.NewValidationError(typeErr.Field, "has an invalid type")
	}

	h.logger.Warn("Failed JSON parse", map[string]interface{}{
		"resource": h.service.Resource(),
		"error":    err.Error(),
	})
	return in, errInvalidJSON
}

func (h *ResourceHandler[T, I]) handleError(c *gin.Context, err error, id string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		newValidationResponse(c, verr)
	case errors.Is(err, errInvalidJSON):
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
	case errors.Is(err, domain.ErrNoChanges):
		newErrorResponse(c, http.StatusBadRequest, "no changes supplied")
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "record not found")
	default:
		h.logger.Error("Request failed", map[string]interface{}{
			"resource": h.service.Resource(),
			"id":       id,
			"method":   c.Request.Method,
			"error":    err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
