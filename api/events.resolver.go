package api

import (
	"fmt"
	"net/http"
	"time"

	"roboadvisor/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

const (
	exportFormat_Json = "json"
	exportFormat_Csv  = "csv"
)

type rebalancingEventCsvRow struct {
	EventID         string `csv:"event_id"`
	UserID          string `csv:"user_id"`
	Timestamp       string `csv:"timestamp"`
	ActionType      string `csv:"action_type"`
	Symbol          string `csv:"symbol"`
	Name            string `csv:"name"`
	Quantity        string `csv:"quantity"`
	Price           string `csv:"price"`
	TransactionCost string `csv:"transaction_cost"`
	Status          string `csv:"status"`
}

type taxLossHarvestingEventCsvRow struct {
	EventID            string `csv:"event_id"`
	UserID             string `csv:"user_id"`
	Timestamp          string `csv:"timestamp"`
	SoldSymbol         string `csv:"sold_symbol"`
	SharesSold         string `csv:"shares_sold"`
	RealizedLossAmount string `csv:"realized_loss_amount"`
	ReplacementSymbol  string `csv:"replacement_symbol"`
	Status             string `csv:"status"`
}

func exportFormat(c *gin.Context) (string, bool) {
	format := c.DefaultQuery("format", exportFormat_Json)
	switch format {
	case exportFormat_Json, exportFormat_Csv:
		return format, true
	}
	returnErrorJsonCode(fmt.Errorf("unsupported format %q, expected json or csv", format), c, http.StatusBadRequest)
	return "", false
}

func returnCsv(rows any, filename string, c *gin.Context) {
	body, err := gocsv.MarshalBytes(rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to encode csv: %w", err), c)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "text/csv", body)
}

func (m ApiHandler) getRebalancingEvents(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}
	format, ok := exportFormat(c)
	if !ok {
		return
	}

	events, err := m.AdvisoryService.ListRebalancingEvents(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	if format == exportFormat_Csv {
		rows := []rebalancingEventCsvRow{}
		for _, e := range events {
			rows = append(rows, rebalancingEventToCsvRow(e))
		}
		returnCsv(&rows, "rebalancing_events.csv", c)
		return
	}

	out := []rebalancingEventResponse{}
	for _, e := range events {
		out = append(out, rebalancingEventToResponse(e))
	}
	c.JSON(200, map[string]any{"events": out})
}

func rebalancingEventToCsvRow(e domain.RebalancingEvent) rebalancingEventCsvRow {
	return rebalancingEventCsvRow{
		EventID:         e.EventID.String(),
		UserID:          e.UserID,
		Timestamp:       e.Timestamp.Format(time.RFC3339),
		ActionType:      string(e.ActionType),
		Symbol:          e.Asset.Symbol,
		Name:            e.Asset.Name,
		Quantity:        e.Quantity.String(),
		Price:           e.Price.StringFixed(2),
		TransactionCost: e.TransactionCost.StringFixed(2),
		Status:          string(e.Status),
	}
}

func (m ApiHandler) getTaxLossHarvestingEvents(c *gin.Context) {
	userID, ok := resolveUserID(c, c.Query("userId"))
	if !ok {
		return
	}
	format, ok := exportFormat(c)
	if !ok {
		return
	}

	events, err := m.AdvisoryService.ListTaxLossHarvestingEvents(c.Request.Context(), userID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	if format == exportFormat_Csv {
		rows := []taxLossHarvestingEventCsvRow{}
		for _, e := range events {
			rows = append(rows, taxLossHarvestingEventCsvRow{
				EventID:            e.EventID.String(),
				UserID:             e.UserID,
				Timestamp:          e.Timestamp.Format(time.RFC3339),
				SoldSymbol:         e.SoldAsset.Symbol,
				SharesSold:         e.SoldAsset.SharesSold.String(),
				RealizedLossAmount: e.RealizedLossAmount.StringFixed(2),
				ReplacementSymbol:  e.ReplacementAsset.Symbol,
				Status:             string(e.Status),
			})
		}
		returnCsv(&rows, "tlh_events.csv", c)
		return
	}

	out := []taxLossHarvestingEventResponse{}
	for _, e := range events {
		out = append(out, taxLossHarvestingEventToResponse(e))
	}
	c.JSON(200, map[string]any{"events": out})
}
