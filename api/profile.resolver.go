package api

import (
	"fmt"
	"net/http"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/service"
	"roboadvisor/internal/util"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getProfile(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}

	profile, err := m.AdvisoryService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, profileToResponse(*profile))
}

type financialGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	// YYYY-MM-DD
	TargetDate string `json:"targetDate"`
}

type updateProfileRequest struct {
	UserID                  string                 `json:"userId"`
	RiskTolerance           *string                `json:"riskTolerance"`
	FinancialGoals          []financialGoalRequest `json:"financialGoals"`
	TargetAllocation        map[string]float64     `json:"targetAllocation"`
	RebalancingThreshold    *float64               `json:"rebalancingThreshold"`
	RebalancingFrequency    *string                `json:"rebalancingFrequency"`
	TaxLossHarvestingOptIn  *bool                  `json:"taxLossHarvestingOptIn"`
	ToggleTaxLossHarvesting bool                   `json:"toggleTaxLossHarvesting"`
}

func (r updateProfileRequest) toProfileUpdate() (*service.ProfileUpdate, error) {
	update := service.ProfileUpdate{
		TargetAllocation:        r.TargetAllocation,
		RebalancingThreshold:    r.RebalancingThreshold,
		TaxLossHarvestingOptIn:  r.TaxLossHarvestingOptIn,
		ToggleTaxLossHarvesting: r.ToggleTaxLossHarvesting,
	}
	if r.RiskTolerance != nil {
		riskTolerance := domain.RiskTolerance(*r.RiskTolerance)
		update.RiskTolerance = &riskTolerance
	}
	if r.RebalancingFrequency != nil {
		frequency := domain.RebalancingFrequency(*r.RebalancingFrequency)
		update.RebalancingFrequency = &frequency
	}
	if r.FinancialGoals != nil {
		goals := []domain.FinancialGoal{}
		for _, g := range r.FinancialGoals {
			targetDate, err := util.ParseDate(g.TargetDate)
			if err != nil {
				return nil, fmt.Errorf("invalid targetDate for goal %q: %w", g.Name, err)
			}
			goals = append(goals, domain.FinancialGoal{
				Name:         g.Name,
				TargetAmount: g.TargetAmount,
				TargetDate:   targetDate,
			})
		}
		update.FinancialGoals = goals
	}

	return &update, nil
}

func (m ApiHandler) updateProfile(c *gin.Context) {
	var requestBody updateProfileRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, http.StatusBadRequest)
		return
	}

	userID, ok := resolveUserID(c, requestBody.UserID)
	if !ok {
		return
	}

	update, err := requestBody.toProfileUpdate()
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	profile, err := m.AdvisoryService.UpdateUserProfile(c.Request.Context(), userID, *update)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, profileToResponse(*profile))
}
