package api

import (
	"github.com/gin-gonic/gin"
)

type getRecommendationsResponse struct {
	RiskTolerance    string             `json:"riskTolerance"`
	TargetAllocation map[string]float64 `json:"targetAllocation"`
}

func (m ApiHandler) getRecommendations(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}

	recommendations, err := m.AdvisoryService.GetInvestmentRecommendations(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, getRecommendationsResponse{
		RiskTolerance:    string(recommendations.RiskTolerance),
		TargetAllocation: recommendations.TargetAllocation,
	})
}
