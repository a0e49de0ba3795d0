package rest

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoofledger/hoofledger/internal/api/shared/dto"
	"github.com/hoofledger/hoofledger/internal/api/shared/executor"
	"github.com/hoofledger/hoofledger/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateCattleRecord stores a new cattle record
	// POST /cattle-records
	CreateCattleRecord(c *gin.Context)

	// ListCattleRecords returns every cattle record
	// GET /cattle-records
	ListCattleRecords(c *gin.Context)

	// GetCattleRecord returns one record, or null when it does not exist
	// GET /cattle-records/:id
	GetCattleRecord(c *gin.Context)

	// UpdateCattleRecord applies a partial update
	// PATCH /cattle-records/:id
	UpdateCattleRecord(c *gin.Context)

	// DeleteCattleRecord deletes one record
	// DELETE /cattle-records/:id
	DeleteCattleRecord(c *gin.Context)

	// MintCattleRecord mints a stored record as an NFT (requires authentication when configured)
	// POST /cattle-records/:id/mint
	MintCattleRecord(c *gin.Context)

	// CreateAuction creates an on-chain auction (requires authentication when configured)
	// POST /auctions
	CreateAuction(c *gin.Context)

	// GetAuction returns the on-chain auction state of a token
	// GET /auctions/:tokenId
	GetAuction(c *gin.Context)

	// ListAuctions reads several auctions at once
	// GET /auctions?token_ids=1,2,3
	ListAuctions(c *gin.Context)

	// GetCattleData returns the on-chain cattle attributes of a token
	// GET /auctions/cattle/:tokenId
	GetCattleData(c *gin.Context)

	// HealthCheck returns the health status of the API and its chain connection
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// bindJSON binds the request body and writes the 400 response on failure
func bindJSON(c *gin.Context, body interface{}) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		if fields, ok := bindingFieldErrors(err); ok {
			respondValidationError(c, fields)
			return false
		}
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

// tokenIDParam parses a positive decimal token id path parameter
func tokenIDParam(c *gin.Context) (*big.Int, bool) {
	tokenID, err := domain.ParseTokenID(c.Param("tokenId"))
	if err != nil || tokenID.Sign() <= 0 {
		respondBadRequest(c, "Invalid token id", c.Param("tokenId"))
		return nil, false
	}
	return tokenID, true
}

func (h *handler) CreateCattleRecord(c *gin.Context) {
	var req dto.CreateCattleRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.executor.CreateCattleRecord(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *handler) ListCattleRecords(c *gin.Context) {
	records, err := h.executor.ListCattleRecords(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *handler) GetCattleRecord(c *gin.Context) {
	record, err := h.executor.GetCattleRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if record == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *handler) UpdateCattleRecord(c *gin.Context) {
	var req dto.UpdateCattleRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.executor.UpdateCattleRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *handler) DeleteCattleRecord(c *gin.Context) {
	result, err := h.executor.DeleteCattleRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) MintCattleRecord(c *gin.Context) {
	var req dto.MintCattleRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.MintCattleRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) CreateAuction(c *gin.Context) {
	var req dto.CreateAuctionRequest
	if !bindJSON(c, &req) {
		return
	}

	tokenID, err := domain.ParseTokenID(req.TokenID.String())
	if err != nil || tokenID.Sign() <= 0 {
		respondValidationError(c, map[string]string{"token_id": "token_id must be a positive integer"})
		return
	}

	result, err := h.executor.CreateAuction(c.Request.Context(), tokenID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) GetAuction(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}

	auction, err := h.executor.GetAuction(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, auction)
}

func (h *handler) ListAuctions(c *gin.Context) {
	tokenIDs, err := domain.ParseTokenIDs(c.Query("token_ids"))
	if err != nil {
		respondValidationError(c, map[string]string{"token_ids": err.Error()})
		return
	}
	if len(tokenIDs) == 0 {
		respondValidationError(c, map[string]string{"token_ids": "token_ids must not be empty"})
		return
	}

	result, err := h.executor.GetAuctions(c.Request.Context(), tokenIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) GetCattleData(c *gin.Context) {
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}

	data, err := h.executor.GetCattleData(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.Health(c.Request.Context()))
}
