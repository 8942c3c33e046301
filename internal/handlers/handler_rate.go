package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/eggkhata/egg_khata_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// rateHandler handles HTTP requests related to daily board rates.
type rateHandler struct {
	rateService    portssvc.RateSvcFacade
	contactService portssvc.ContactSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rateService portssvc.RateSvcFacade, contactService portssvc.ContactSvcFacade) *rateHandler {
	return &rateHandler{rateService: rateService, contactService: contactService}
}

// registerRateRoutes sets up the routes for board rate management.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, contactService portssvc.ContactSvcFacade) {
	h := newRateHandler(rateService, contactService)

	rates := rg.Group("/rates")
	{
		rates.PUT("", h.setDailyRate)
		rates.GET("/today", h.getTodayRates)
		rates.GET("/effective", h.getEffectiveRate)
	}
}

// setDailyRate godoc
// @Summary Set a daily board rate
// @Description Sets the per-egg rate for an egg type on a day. Setting it again for the same day overwrites the rate.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.SetDailyRateRequest true "Rate details"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to set rate"
// @Router /rates [put]
func (h *rateHandler) setDailyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetDailyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asOf := time.Now()
	if req.Date != nil {
		asOf = *req.Date
	}

	rate, err := h.rateService.SetDailyRate(c.Request.Context(), req.EggType, req.RatePerEgg, asOf, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to set daily rate", slog.String("error", err.Error()), slog.String("egg_type", req.EggType))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// getTodayRates godoc
// @Summary Get today's board rates
// @Description Retrieves all rates set for the current day
// @Tags rates
// @Produce json
// @Success 200 {object} dto.ListRatesResponse
// @Failure 500 {object} ErrorResponse "Failed to retrieve rates"
// @Router /rates/today [get]
func (h *rateHandler) getTodayRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.GetTodayRates(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to get today's rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRatesResponse(rates))
}

// getEffectiveRate godoc
// @Summary Get the effective rate for an egg type
// @Description Resolves today's board rate for an egg type and applies the contact's price adjustment when a contactID is given.
// @Tags rates
// @Produce json
// @Param eggType query string true "Egg type"
// @Param contactID query string false "Contact whose price adjustment applies"
// @Success 200 {object} dto.EffectiveRateResponse
// @Failure 400 {object} ErrorResponse "Missing egg type"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Failed to resolve rate"
// @Router /rates/effective [get]
func (h *rateHandler) getEffectiveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	eggType := c.Query("eggType")
	if eggType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "eggType query parameter is required"})
		return
	}

	adjustment := decimal.Zero
	if contactID := c.Query("contactID"); contactID != "" {
		contact, err := h.contactService.GetContactByID(c.Request.Context(), contactID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contact not found"})
				return
			}
			logger.Error("Failed to get contact for effective rate", slog.String("error", err.Error()), slog.String("contact_id", contactID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve rate"})
			return
		}
		adjustment = contact.PriceAdjustment
	}

	rate, found, err := h.rateService.GetEffectiveRate(c.Request.Context(), eggType, time.Now(), adjustment)
	if err != nil {
		logger.Error("Failed to resolve effective rate", slog.String("error", err.Error()), slog.String("egg_type", eggType))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve rate"})
		return
	}

	c.JSON(http.StatusOK, dto.EffectiveRateResponse{
		EggType:    eggType,
		RatePerEgg: rate,
		Found:      found,
	})
}
