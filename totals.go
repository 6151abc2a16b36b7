package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get totals by person
// @Description Sum amounts, payments and outstanding balances per person
// @Tags totals
// @Produce json
// @Success 200 {array} PersonTotal "Totals for each person with transactions"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /api/totals [get]
func (a *App) getTotals(c *gin.Context) {
	totals, err := a.ledger.Totals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPersonTotals(totals))
}
