package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finledger/internal/domain"
	"finledger/internal/http/middleware"
	"finledger/internal/ledger"
	"finledger/internal/ws"
)

// List returns the ledger, optionally filtered by ?q= (case-insensitive
// substring on description) and truncated to the last ?limit= entries.
func (h *Handler) List(c *gin.Context) {
	txs, err := h.Store.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	txs = ledger.Search(txs, c.Query("q"))
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			limit = ledger.DefaultRecentLimit
		}
		txs = ledger.Recent(txs, limit)
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

// RecentTxs returns the last N transactions, N defaulting to 10.
func (h *Handler) RecentTxs(c *gin.Context) {
	txs, err := h.Store.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	limit := ledger.DefaultRecentLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	txs = ledger.Recent(txs, limit)
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

// Create adds a transaction.
func (h *Handler) Create(c *gin.Context) {
	var in ledger.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var created domain.Transaction
	_, err := h.Store.Mutate(c.Request.Context(), func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := h.Coordinator.Add(txs, in)
		created = tx
		return next, err
	})
	if err != nil {
		middleware.LedgerMutations.WithLabelValues("add", "error").Inc()
		respondError(c, err)
		return
	}

	middleware.LedgerMutations.WithLabelValues("add", "ok").Inc()
	h.Hub.Broadcast(ws.Event{Event: "added", Transaction: &created})
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into an existing transaction.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var patch ledger.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var updated domain.Transaction
	_, err = h.Store.Mutate(c.Request.Context(), func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := h.Coordinator.Update(txs, id, patch)
		updated = tx
		return next, err
	})
	if err != nil {
		middleware.LedgerMutations.WithLabelValues("update", "error").Inc()
		respondError(c, err)
		return
	}

	middleware.LedgerMutations.WithLabelValues("update", "ok").Inc()
	h.Hub.Broadcast(ws.Event{Event: "updated", Transaction: &updated})
	c.JSON(http.StatusOK, updated)
}

// Delete removes a transaction by id and returns the removed record.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var removed domain.Transaction
	_, err = h.Store.Mutate(c.Request.Context(), func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := h.Coordinator.DeleteByID(txs, id)
		removed = tx
		return next, err
	})
	if err != nil {
		middleware.LedgerMutations.WithLabelValues("delete", "error").Inc()
		respondError(c, err)
		return
	}

	middleware.LedgerMutations.WithLabelValues("delete", "ok").Inc()
	h.Hub.Broadcast(ws.Event{Event: "deleted", Transaction: &removed})
	c.JSON(http.StatusOK, gin.H{"deleted": removed})
}
