package api

import (
	"github.com/gin-gonic/gin"
)

type holdingResponse struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Shares       float64 `json:"shares"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Sector       string  `json:"sector"`
}

type getPortfolioResponse struct {
	UserID   string            `json:"userId"`
	Holdings []holdingResponse `json:"holdings"`
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}

	portfolio, err := m.AdvisoryService.GetUserPortfolio(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := getPortfolioResponse{
		UserID:   portfolio.UserID,
		Holdings: []holdingResponse{},
	}
	for _, h := range portfolio.Holdings {
		out.Holdings = append(out.Holdings, holdingResponse{
			Symbol:       h.Symbol,
			Name:         h.Name,
			Shares:       h.Shares.InexactFloat64(),
			AvgPrice:     h.AvgPrice.InexactFloat64(),
			CurrentPrice: h.CurrentPrice.InexactFloat64(),
			Sector:       h.Sector,
		})
	}

	c.JSON(200, out)
}

type getPortfolioSummaryResponse struct {
	UserID           string  `json:"userId"`
	TotalValue       float64 `json:"totalValue"`
	TotalGainLoss    float64 `json:"totalGainLoss"`
	ReturnPercentage float64 `json:"returnPercentage"`
	NumHoldings      int     `json:"numHoldings"`
}

func (m ApiHandler) getPortfolioSummary(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}

	summary, err := m.AdvisoryService.GetPortfolioSummary(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, getPortfolioSummaryResponse{
		UserID:           summary.UserID,
		TotalValue:       summary.TotalValue.Round(2).InexactFloat64(),
		TotalGainLoss:    summary.TotalGainLoss.Round(2).InexactFloat64(),
		ReturnPercentage: summary.ReturnPercentage.Round(4).InexactFloat64(),
		NumHoldings:      summary.NumHoldings,
	})
}
