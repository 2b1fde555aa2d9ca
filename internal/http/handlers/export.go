package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/ledger"
)

// Export streams the ledger as a CSV attachment.
func (h *Handler) Export(c *gin.Context) {
	txs, err := h.Store.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(ledger.ToCSV(txs)))
}
