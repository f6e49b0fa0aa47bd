package api

import (
	"github.com/gin-gonic/gin"
)

type getTaxLossHarvestingOpportunitiesResponse struct {
	Opportunities []taxLossHarvestingEventResponse `json:"opportunities"`
	Message       string                           `json:"message,omitempty"`
}

func (m ApiHandler) getTaxLossHarvestingOpportunities(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}

	result, err := m.AdvisoryService.GetTaxLossHarvestingOpportunities(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := getTaxLossHarvestingOpportunitiesResponse{
		Opportunities: []taxLossHarvestingEventResponse{},
		Message:       result.Message,
	}
	for _, opp := range result.Opportunities {
		out.Opportunities = append(out.Opportunities, taxLossHarvestingEventToResponse(opp))
	}

	c.JSON(200, out)
}
