package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// drift values are fixed 4 decimal strings on the wire
type driftDetailResponse struct {
	Current        string `json:"current"`
	Target         string `json:"target"`
	Drift          string `json:"drift"`
	Action         string `json:"action"`
	AmountToAdjust string `json:"amountToAdjust"`
}

type getRebalancingStatusResponse struct {
	NeedsRebalance   bool                           `json:"needsRebalance"`
	DriftDetails     map[string]driftDetailResponse `json:"driftDetails"`
	MaxAbsoluteDrift float64                        `json:"maxAbsoluteDrift"`
	// true for users who have never traded
	CalendarDue      bool                           `json:"calendarDue"`
}

func formatDrift(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

func (m ApiHandler) getRebalancingStatus(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}

	status, err := m.AdvisoryService.CheckRebalancingStatus(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := getRebalancingStatusResponse{
		NeedsRebalance:   status.NeedsRebalance,
		DriftDetails:     map[string]driftDetailResponse{},
		MaxAbsoluteDrift: status.MaxAbsoluteDrift,
		CalendarDue:      status.CalendarDue,
	}
	for symbol, detail := range status.DriftDetails {
		out.DriftDetails[symbol] = driftDetailResponse{
			Current:        formatDrift(detail.Current),
			Target:         formatDrift(detail.Target),
			Drift:          formatDrift(detail.Drift),
			Action:         string(detail.Action),
			AmountToAdjust: formatDrift(detail.AmountToAdjust),
		}
	}

	c.JSON(200, out)
}
