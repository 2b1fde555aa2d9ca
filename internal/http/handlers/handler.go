package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/ledger"
	"finledger/internal/logger"
	"finledger/internal/store"
	"finledger/internal/ws"
)

type Handler struct {
	Store       *store.Guarded
	Coordinator *ledger.Coordinator
	Hub         *ws.Hub
	Currency    string
}

func NewHandler(s *store.Guarded, hub *ws.Hub, currency string) *Handler {
	return &Handler{
		Store:       s,
		Coordinator: ledger.NewCoordinator(),
		Hub:         hub,
		Currency:    currency,
	}
}

// respondError maps core errors to HTTP statuses. Validation and range
// problems are the caller's fault, unknown ids are 404, storage failures
// are 500 with the detail kept in the log.
func respondError(c *gin.Context, err error) {
	var (
		verr *ledger.ValidationError
		nf   *ledger.NotFoundError
		oor  *ledger.OutOfRangeError
		serr *store.StorageError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &oor):
		c.JSON(http.StatusBadRequest, gin.H{"error": oor.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &serr):
		logger.Error("storage failure", "op", serr.Op, "error", serr.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		logger.Error("unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
