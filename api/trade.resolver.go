package api

import (
	"fmt"
	"net/http"

	"roboadvisor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// shares and price accept either JSON numbers or numeric strings
type tradeRequest struct {
	UserID string          `json:"userId"`
	Symbol string          `json:"symbol" binding:"required"`
	Shares decimal.Decimal `json:"shares"`
	Price  decimal.Decimal `json:"price"`
}

type tradeResponse struct {
	Success  bool                            `json:"success"`
	Message  string                          `json:"message"`
	Event    *rebalancingEventResponse       `json:"event,omitempty"`
	TlhEvent *taxLossHarvestingEventResponse `json:"tlhEvent,omitempty"`
}

func tradeResultToResponse(result service.TradeResult) tradeResponse {
	out := tradeResponse{
		Success: result.Success,
		Message: result.Message,
	}
	if result.Event != nil {
		e := rebalancingEventToResponse(*result.Event)
		out.Event = &e
	}
	if result.TaxLossHarvestingEvent != nil {
		e := taxLossHarvestingEventToResponse(*result.TaxLossHarvestingEvent)
		out.TlhEvent = &e
	}
	return out
}

func bindTradeRequest(c *gin.Context) (string, *tradeRequest, bool) {
	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, http.StatusBadRequest)
		return "", nil, false
	}

	userID, ok := resolveUserID(c, requestBody.UserID)
	if !ok {
		return "", nil, false
	}

	return userID, &requestBody, true
}

func returnTradeResult(result *service.TradeResult, c *gin.Context) {
	code := 200
	if !result.Success {
		code = http.StatusBadRequest
	}
	c.JSON(code, tradeResultToResponse(*result))
}

func (m ApiHandler) buy(c *gin.Context) {
	userID, req, ok := bindTradeRequest(c)
	if !ok {
		return
	}

	result, err := m.AdvisoryService.BuyAsset(c.Request.Context(), userID, req.Symbol, req.Shares, req.Price)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	returnTradeResult(result, c)
}

func (m ApiHandler) sell(c *gin.Context) {
	userID, req, ok := bindTradeRequest(c)
	if !ok {
		return
	}

	result, err := m.AdvisoryService.SellAsset(c.Request.Context(), userID, req.Symbol, req.Shares, req.Price)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	returnTradeResult(result, c)
}
