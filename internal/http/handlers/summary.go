package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/ledger"
)

// Summary reports the aggregate figures of the ledger.
func (h *Handler) Summary(c *gin.Context) {
	txs, err := h.Store.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	totals := ledger.Totals(txs)
	c.JSON(http.StatusOK, gin.H{
		"income":           totals.Income,
		"expense":          totals.Expense,
		"balance":          totals.Income.Sub(totals.Expense),
		"transactionCount": len(txs),
		"currency":         h.Currency,
	})
}
