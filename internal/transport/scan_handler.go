// Package transport exposes the HTTP JSON boundary of the scanner.
package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zecscope/zecscope-backend/internal/compact"
	"github.com/zecscope/zecscope-backend/internal/keys"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/scan"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ScanService is the scanning capability behind the handler.
type ScanService interface {
	Scan(ctx context.Context, req *model.ScanRequest) ([]model.ZecTransaction, error)
	ScanSummary(ctx context.Context, req *model.ScanRequest) (*model.ScanSummary, error)
}

// ScanHandler serves scan requests over JSON.
type ScanHandler struct {
	service ScanService
	logger  *zap.Logger
}

// NewScanHandler builds a ScanHandler.
func NewScanHandler(service ScanService, logger *zap.Logger) (*ScanHandler, error) {
	if service == nil {
		return nil, errors.New("scan service is required")
	}
	return &ScanHandler{service: service, logger: logger}, nil
}

// Register mounts the handler routes.
func (h *ScanHandler) Register(r gin.IRouter) {
	r.GET("/v1/health", h.health)
	r.POST("/v1/scan", h.scan)
}

func (h *ScanHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type errorResponse struct {
	Error  string  `json:"error"`
	Kind   string  `json:"kind"`
	Height *uint64 `json:"height,omitempty"`
	Field  string  `json:"field,omitempty"`
}

func (h *ScanHandler) scan(c *gin.Context) {
	var req model.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "invalid_request"})
		return
	}

	if c.Query("summary") == "1" {
		summary, err := h.service.ScanSummary(c.Request.Context(), &req)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	txs, err := h.service.Scan(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (h *ScanHandler) writeError(c *gin.Context, err error) {
	var (
		vkErr   *keys.InvalidViewingKeyError
		encErr  *compact.EncodingError
		discErr *scan.DiscontinuityError
	)
	switch {
	case errors.As(err, &vkErr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: vkErr.Error(), Kind: "invalid_viewing_key"})
	case errors.As(err, &encErr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: encErr.Error(), Kind: "invalid_encoding", Field: encErr.Field})
	case errors.As(err, &discErr):
		height := discErr.Height
		c.JSON(http.StatusBadRequest, errorResponse{Error: discErr.Error(), Kind: "chain_discontinuity", Height: &height})
	default:
		if h.logger != nil {
			h.logger.Error("scan failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}
