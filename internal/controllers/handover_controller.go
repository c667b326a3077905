package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/ledger"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/reports"
)

// CreateHandovers records one or more transfers of collected money to
// administration. The whole batch commits or rolls back together.
func CreateHandovers(c *gin.Context) {
	var body struct {
		Entries      []ledger.HandoverEntry `json:"entries" binding:"required,dive"`
		HandedOverTo string                 `json:"handed_over_to" binding:"required"`
		HandoverDate time.Time              `json:"handover_date"`
		Remarks      string                 `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.HandoverDate.IsZero() {
		body.HandoverDate = time.Now()
	}

	actor, _ := middleware.CurrentEmail(c)
	created, err := ledger.CreateHandovers(config.DB, body.Entries, body.HandedOverTo, body.HandoverDate, body.Remarks, actor)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrAmountExceedsRemaining):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create handovers"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"handovers": created})
}

// ListHandovers returns the full handover ledger, newest first, with the
// denormalized student and course columns the ledger screen displays.
func ListHandovers(c *gin.Context) {
	rows, err := reports.HandoverLedger(config.DBX)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch handovers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// VerifyHandoverByID is the legacy single-row verification endpoint. New
// handovers are verified at creation; this only matters for imported rows.
func VerifyHandoverByID(c *gin.Context) {
	var id struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	handover, err := ledger.VerifyHandover(config.DB, id.ID, actor)
	if err != nil {
		if errors.Is(err, ledger.ErrHandoverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "handover not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify handover"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"handover": handover})
}
