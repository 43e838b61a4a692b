package alerts

import "time"

// DemoAlerts returns the seed dataset for the feed. Timestamps are offsets
// from now so the relative-age display stays plausible.
func DemoAlerts(now time.Time) []Alert {
	resolvedAt := now.Add(-2 * time.Hour)

	return []Alert{
		{
			ID:         "alert-001",
			Type:       TypeOptimization,
			Title:      "High Consolidation Opportunity",
			Message:    "15 orders in TX-CA lane can be consolidated, potential savings: $4,200",
			Priority:   PriorityHigh,
			Status:     StatusActive,
			Category:   "Cost Optimization",
			Actionable: true,
			Data: map[string]any{
				"orders":           15,
				"lane":             "TX-CA",
				"potentialSavings": 4200,
			},
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:         "alert-002",
			Type:       TypeException,
			Title:      "Weather Delay - Shipment SHIP-2024-045",
			Message:    "Severe weather in Dallas causing 6-hour delay. Customer notification sent.",
			Priority:   PriorityMedium,
			Status:     StatusActive,
			Category:   "Operations",
			Actionable: true,
			Data: map[string]any{
				"shipmentId": "SHIP-2024-045",
				"delayHours": 6,
				"location":   "Dallas, TX",
			},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:         "alert-003",
			Type:       TypeCompliance,
			Title:      "Carrier Insurance Expiring",
			Message:    "FastFreight LLC insurance expires in 15 days. Renewal required.",
			Priority:   PriorityHigh,
			Status:     StatusActive,
			Category:   "Compliance",
			Actionable: true,
			Data: map[string]any{
				"carrierId":   "carr-001",
				"carrierName": "FastFreight LLC",
				"expiryDays":  15,
			},
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:         "alert-004",
			Type:       TypePerformance,
			Title:      "Carrier Performance Drop",
			Message:    "RoadRunner Express on-time performance dropped to 85% (below 90% threshold)",
			Priority:   PriorityMedium,
			Status:     StatusActive,
			Category:   "Performance",
			Actionable: true,
			Data: map[string]any{
				"carrierId":          "carr-002",
				"carrierName":        "RoadRunner Express",
				"currentPerformance": 85,
				"threshold":          90,
			},
			CreatedAt: now.Add(-6 * time.Hour),
		},
		{
			ID:         "alert-005",
			Type:       TypeCapacity,
			Title:      "Peak Season Capacity Warning",
			Message:    "Capacity utilization at 95% for next week. Consider securing additional carriers.",
			Priority:   PriorityHigh,
			Status:     StatusActive,
			Category:   "Capacity",
			Actionable: true,
			Data: map[string]any{
				"utilizationRate":   95,
				"timeframe":         "next week",
				"recommendedAction": "secure additional carriers",
			},
			CreatedAt: now.Add(-8 * time.Hour),
		},
		{
			ID:         "alert-006",
			Type:       TypeFinancial,
			Title:      "Invoice Overdue",
			Message:    "Invoice INV-240015 from Acme Corp is 30 days overdue ($5,200)",
			Priority:   PriorityHigh,
			Status:     StatusResolved,
			Category:   "Financial",
			Actionable: false,
			Data: map[string]any{
				"invoiceId":    "inv-240015",
				"customerId":   "cust-001",
				"customerName": "Acme Corp",
				"amount":       5200,
				"daysPastDue":  30,
			},
			CreatedAt:  now.Add(-24 * time.Hour),
			ResolvedAt: &resolvedAt,
		},
	}
}
