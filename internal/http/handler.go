package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strongfield/adk-sampler/internal/adapter/rng"
	"github.com/strongfield/adk-sampler/internal/usecase"
)

// Handler handles HTTP requests for the trajectory-seed sampler.
type Handler struct {
	sampler  *usecase.Sampler
	rootSeed int64
}

// NewHandler creates a new HTTP handler. rootSeed is mixed with the
// batch index (rng.DeriveSeed) to build a fresh RNG for every request, a
// pure function of the index alone: repeated requests for the same batch
// reproduce the same Monte Carlo draws, and concurrent requests never
// touch shared RNG state (Gin serves them from a goroutine per request).
func NewHandler(sampler *usecase.Sampler, rootSeed int64) *Handler {
	return &Handler{
		sampler:  sampler,
		rootSeed: rootSeed,
	}
}

// BatchCount handles GET /v1/batches/count.
func (h *Handler) BatchCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"batch_count":    h.sampler.BatchCount(),
		"batch_max_size": h.sampler.BatchMaxSize(),
	})
}

// GenerateBatch handles POST /v1/batches/:index.
func (h *Handler) GenerateBatch(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid batch index: %v", err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	batchRNG := rng.NewSplitMix64RNG(rng.DeriveSeed(h.rootSeed, uint64(index)))
	result, err := h.sampler.GenerateBatch(ctx, batchRNG, index)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"index": result.Index,
		"empty": result.Empty,
		"rows":  result.Rows,
	})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
