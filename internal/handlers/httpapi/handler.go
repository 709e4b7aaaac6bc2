package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raffleworks/tombola/internal/models"
	raffleService "github.com/raffleworks/tombola/internal/services/raffle"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// RaffleService handles the actual raffle operations
	RaffleService raffleService.Service
}

// Handler exposes the raffle service over JSON HTTP. It is thin glue: all
// domain rules live in the service, this layer only translates requests and
// maps errors onto status codes and machine-readable reasons.
type Handler struct {
	service raffleService.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RaffleService == nil {
		return nil, errors.New("raffle service cannot be nil")
	}

	return &Handler{service: cfg.RaffleService}, nil
}

// RegisterRoutes registers all raffle routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/tickets", h.BuyTicket)
	api.POST("/draws", h.DrawWinner)
	api.GET("/shifts/current", h.GetCurrentShift)
	api.GET("/shifts/:date/:shift", h.GetShift)
	api.POST("/shifts/:date/:shift/claim", h.ClaimPrize)
	api.GET("/winners/:month", h.ListWinners)
}

type shiftKeyRequest struct {
	// Date and Shift select a partition; leave both empty for the shift
	// currently open
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

func (r *shiftKeyRequest) key() (models.ShiftKey, bool) {
	if r.Date == "" && r.Shift == "" {
		return models.ShiftKey{}, true
	}
	key := models.ShiftKey{Date: r.Date, Shift: models.Shift(r.Shift)}
	return key, keyValid(key)
}

func keyValid(key models.ShiftKey) bool {
	if !key.Shift.Valid() {
		return false
	}
	_, err := time.Parse("2006-01-02", key.Date)
	return err == nil
}

func pathKey(c *gin.Context) (models.ShiftKey, bool) {
	key := models.ShiftKey{
		Date:  c.Param("date"),
		Shift: models.Shift(c.Param("shift")),
	}
	return key, keyValid(key)
}

// reasonFor maps a service error to a status code and a stable reason token
func reasonFor(err error) (int, string) {
	switch {
	case errors.Is(err, raffleService.ErrInvalidNumber):
		return http.StatusBadRequest, "invalid_number"
	case errors.Is(err, raffleService.ErrNumberAlreadySold):
		return http.StatusConflict, "number_already_sold"
	case errors.Is(err, raffleService.ErrAlreadyDrawn):
		return http.StatusConflict, "already_drawn"
	case errors.Is(err, raffleService.ErrNoTicketsSold):
		return http.StatusConflict, "no_tickets_sold"
	case errors.Is(err, raffleService.ErrNoUniqueNumberFound):
		return http.StatusServiceUnavailable, "no_unique_number_found"
	case errors.Is(err, raffleService.ErrNotDrawn):
		return http.StatusConflict, "not_drawn"
	case errors.Is(err, raffleService.ErrPrizeAlreadyClaimed):
		return http.StatusConflict, "prize_already_claimed"
	}
	return http.StatusInternalServerError, "store_unavailable"
}

// fail writes the structured failure result. Store faults are logged here
// and surfaced as a generic failure; nothing crosses this boundary as a
// crash.
func (h *Handler) fail(c *gin.Context, err error) {
	status, reason := reasonFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("raffle operation failed: %v", err)
	}
	c.JSON(status, gin.H{"success": false, "reason": reason})
}

func (h *Handler) badRequest(c *gin.Context, reason string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "reason": reason})
}

type buyTicketRequest struct {
	shiftKeyRequest
	Number    int    `json:"number"`
	BuyerName string `json:"buyerName"`
}

// BuyTicket handles POST /api/tickets
func (h *Handler) BuyTicket(c *gin.Context) {
	var req buyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid_request")
		return
	}

	key, ok := req.key()
	if !ok {
		h.badRequest(c, "invalid_shift")
		return
	}

	out, err := h.service.BuyTicket(c.Request.Context(), &raffleService.BuyTicketInput{
		Key:       key,
		Number:    req.Number,
		BuyerName: req.BuyerName,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"date":    out.Key.Date,
		"shift":   out.Key.Shift,
		"ticket":  out.Ticket,
	})
}

type drawWinnerRequest struct {
	shiftKeyRequest
	Prize string `json:"prize"`
}

// DrawWinner handles POST /api/draws
func (h *Handler) DrawWinner(c *gin.Context) {
	var req drawWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid_request")
		return
	}

	key, ok := req.key()
	if !ok {
		h.badRequest(c, "invalid_shift")
		return
	}

	out, err := h.service.DrawWinner(c.Request.Context(), &raffleService.DrawWinnerInput{
		Key:   key,
		Prize: req.Prize,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"date":          out.Key.Date,
		"shift":         out.Key.Shift,
		"winningNumber": out.WinningNumber,
		"winnerName":    out.WinnerName,
		"message":       out.Message,
	})
}

// GetCurrentShift handles GET /api/shifts/current
func (h *Handler) GetCurrentShift(c *gin.Context) {
	h.renderShift(c, models.ShiftKey{})
}

// GetShift handles GET /api/shifts/:date/:shift
func (h *Handler) GetShift(c *gin.Context) {
	key, ok := pathKey(c)
	if !ok {
		h.badRequest(c, "invalid_shift")
		return
	}
	h.renderShift(c, key)
}

func (h *Handler) renderShift(c *gin.Context, key models.ShiftKey) {
	out, err := h.service.GetShift(c.Request.Context(), &raffleService.GetShiftInput{Key: key})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    out.Key.Date,
		"shift":   out.Key.Shift,
		"record":  out.Record,
	})
}

type claimPrizeRequest struct {
	ClaimerID   string `json:"claimerId"`
	ClaimerName string `json:"claimerName"`
}

// ClaimPrize handles POST /api/shifts/:date/:shift/claim
func (h *Handler) ClaimPrize(c *gin.Context) {
	key, ok := pathKey(c)
	if !ok {
		h.badRequest(c, "invalid_shift")
		return
	}

	var req claimPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid_request")
		return
	}

	out, err := h.service.ClaimPrize(c.Request.Context(), &raffleService.ClaimPrizeInput{
		Key:         key,
		ClaimerID:   req.ClaimerID,
		ClaimerName: req.ClaimerName,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"winner":  out.Winner,
	})
}

// ListWinners handles GET /api/winners/:month
func (h *Handler) ListWinners(c *gin.Context) {
	month := c.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		h.badRequest(c, "invalid_month")
		return
	}

	out, err := h.service.ListWinners(c.Request.Context(), &raffleService.ListWinnersInput{Month: month})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"month":   out.Month,
		"numbers": out.Numbers,
		"winners": out.Winners,
	})
}
