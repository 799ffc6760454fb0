package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
	"github.com/Gunvolt24/streets_etl/pkg/httpx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Handler struct {
	service    ports.StreetReadService
	log        ports.Logger
	reqTimeout time.Duration // 0 - без таймаута
}

func NewHandler(service ports.StreetReadService, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// parseCode - код из path; при ошибке сразу отвечает 400.
func parseCode(c *gin.Context, name string) (int64, bool) {
	v, ok := httpx.PositiveInt64Param(c, name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
	}
	return v, ok
}

func (h *Handler) getStreet(c *gin.Context) {
	cityCode, ok := parseCode(c, "cityCode")
	if !ok {
		return
	}
	streetCode, ok := parseCode(c, "streetCode")
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	key := domain.StreetKey{CityCode: cityCode, StreetCode: streetCode}
	street, err := h.service.GetStreet(ctx, key)
	if err != nil {
		h.log.Errorf(ctx, "GetStreet failed city=%d street=%d err=%v", cityCode, streetCode, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if street == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "street not found"})
		return
	}
	c.JSON(http.StatusOK, street)
}

func (h *Handler) listStreetsByCity(c *gin.Context) {
	cityCode, ok := parseCode(c, "cityCode")
	if !ok {
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)
	query := c.Query("q")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	streets, err := h.service.StreetsByCity(ctx, cityCode, query, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "StreetsByCity failed city=%d q=%q err=%v", cityCode, query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if streets == nil {
		streets = []*domain.Street{}
	}
	c.JSON(http.StatusOK, streets)
}
