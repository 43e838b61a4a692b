package tms

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/haulfront/haulfront-backend/pkg/pagination"
)

// Fixture providers below never touch the network. Pages fall back to them
// when the upstream is unreachable or when the app runs in demo mode; the
// fallback is an explicit, named path so callers (and tests) can always tell
// which source produced the data.

// DemoCarriers returns the offline carrier dataset.
func DemoCarriers() *CarrierList {
	return &CarrierList{
		Carriers: []Carrier{
			{
				ID:                "1",
				Name:              "FastFreight LLC",
				Email:             "dispatch@fastfreight.com",
				Phone:             "+1-555-0123",
				City:              "Dallas",
				State:             "TX",
				PerformanceScore:  94.2,
				OnTimePerformance: 96.1,
				AcceptanceRate:    89.3,
				CostRating:        4.2,
				QualityRating:     4.5,
				ReliabilityScore:  92.8,
				TotalShipments:    1247,
				ServiceLanes:      []string{"TX-CA", "TX-FL", "TX-NY"},
				Certifications:    []string{"ISO 9001", "SmartWay", "HAZMAT"},
				IsActive:          true,
				CreatedAt:         time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:                "2",
				Name:              "RoadRunner Express",
				Email:             "ops@roadrunner.com",
				Phone:             "+1-555-0456",
				City:              "Phoenix",
				State:             "AZ",
				PerformanceScore:  91.5,
				OnTimePerformance: 93.2,
				AcceptanceRate:    95.1,
				CostRating:        3.8,
				QualityRating:     4.3,
				ReliabilityScore:  90.7,
				TotalShipments:    892,
				ServiceLanes:      []string{"AZ-CA", "AZ-NV", "AZ-TX"},
				Certifications:    []string{"SmartWay", "Temperature Controlled"},
				IsActive:          true,
				CreatedAt:         time.Date(2024, time.February, 1, 14, 20, 0, 0, time.UTC),
			},
			{
				ID:                "3",
				Name:              "Premier Logistics",
				Email:             "dispatch@premierlog.com",
				Phone:             "+1-555-0789",
				City:              "Atlanta",
				State:             "GA",
				PerformanceScore:  96.3,
				OnTimePerformance: 98.1,
				AcceptanceRate:    92.4,
				CostRating:        4.4,
				QualityRating:     4.8,
				ReliabilityScore:  95.2,
				TotalShipments:    2134,
				ServiceLanes:      []string{"GA-FL", "GA-NC", "GA-SC"},
				Certifications:    []string{"ISO 9001", "SmartWay", "HAZMAT", "Food Grade"},
				IsActive:          true,
				CreatedAt:         time.Date(2023, time.November, 10, 9, 15, 0, 0, time.UTC),
			},
		},
		Pagination: pagination.Meta{Page: 1, Limit: 20, Total: 3, Pages: 1},
	}
}

// DemoLoadPlans returns the offline load-plan dataset.
func DemoLoadPlans() *LoadPlanList {
	return &LoadPlanList{
		LoadPlans: []LoadPlan{
			{
				ID:                "plan-001",
				Name:              "Midwest Consolidation Route",
				Status:            "OPTIMIZED",
				Orders:            []string{"order-001", "order-002"},
				TotalCost:         decimal.NewFromInt(5700),
				TotalSavings:      decimal.NewFromInt(1200),
				OptimizationScore: 92.5,
				CreatedAt:         time.Date(2024, time.July, 5, 10, 30, 0, 0, time.UTC),
				Creator: PlanCreator{
					ID:        "user-001",
					FirstName: "John",
					LastName:  "Doe",
					Email:     "john.doe@company.com",
				},
			},
			{
				ID:                "plan-002",
				Name:              "West Coast Express",
				Status:            "APPROVED",
				Orders:            []string{"order-003", "order-004", "order-005"},
				TotalCost:         decimal.NewFromInt(8900),
				TotalSavings:      decimal.NewFromInt(2100),
				OptimizationScore: 89.3,
				CreatedAt:         time.Date(2024, time.July, 4, 15, 45, 0, 0, time.UTC),
				Creator: PlanCreator{
					ID:        "user-002",
					FirstName: "Jane",
					LastName:  "Smith",
					Email:     "jane.smith@company.com",
				},
			},
		},
		Pagination: pagination.Meta{Page: 1, Limit: 20, Total: 2, Pages: 1},
	}
}

// DemoShipments returns the offline shipment dataset.
func DemoShipments() *ShipmentList {
	temp36 := 36.0
	pickup1 := time.Date(2024, time.July, 6, 8, 30, 0, 0, time.UTC)
	pickup3 := time.Date(2024, time.July, 4, 9, 15, 0, 0, time.UTC)
	delivery3 := time.Date(2024, time.July, 6, 15, 30, 0, 0, time.UTC)
	pickup4 := time.Date(2024, time.July, 7, 6, 0, 0, 0, time.UTC)

	return &ShipmentList{
		Shipments: []Shipment{
			{
				ID:                "SH2024001",
				OrderNumber:       "ORD-4567",
				Customer:          "Acme Corp",
				CustomerContact:   "john.smith@acme.com",
				Origin:            "Chicago, IL 60601",
				Destination:       "Atlanta, GA 30309",
				Status:            ShipmentInTransit,
				Mode:              ModeFTL,
				Carrier:           "FastFreight LLC",
				CarrierContact:    "+1-555-0123",
				Driver:            "Mike Johnson",
				EstimatedDelivery: time.Date(2024, time.July, 8, 14, 0, 0, 0, time.UTC),
				ActualPickup:      &pickup1,
				OptimizationScore: 94,
				Cost:              decimal.NewFromInt(1850),
				Weight:            15000,
				Volume:            1200,
				Temperature:       &temp36,
				Alerts:            []string{"Weather delay possible - Thunderstorms in Atlanta area"},
				Route:             "Chicago → Indianapolis → Louisville → Atlanta",
				Mileage:           465,
			},
			{
				ID:                "SH2024002",
				OrderNumber:       "ORD-4568",
				Customer:          "Tech Solutions Inc",
				CustomerContact:   "sarah.davis@techsol.com",
				Origin:            "Los Angeles, CA 90210",
				Destination:       "Seattle, WA 98101",
				Status:            ShipmentPlanned,
				Mode:              ModeLTL,
				EstimatedDelivery: time.Date(2024, time.July, 9, 10, 0, 0, 0, time.UTC),
				OptimizationScore: 87,
				Cost:              decimal.NewFromInt(1280),
				Weight:            8500,
				Volume:            680,
				Alerts:            []string{},
				Route:             "LA → Sacramento → Portland → Seattle",
				Mileage:           1135,
			},
			{
				ID:                "SH2024003",
				OrderNumber:       "ORD-4569",
				Customer:          "Global Retail Co",
				CustomerContact:   "orders@globalretail.com",
				Origin:            "Dallas, TX 75201",
				Destination:       "Miami, FL 33101",
				Status:            ShipmentDelivered,
				Mode:              ModeFTL,
				Carrier:           "RoadRunner Express",
				CarrierContact:    "+1-555-0456",
				Driver:            "Carlos Rodriguez",
				EstimatedDelivery: time.Date(2024, time.July, 6, 16, 0, 0, 0, time.UTC),
				ActualPickup:      &pickup3,
				ActualDelivery:    &delivery3,
				OptimizationScore: 98,
				Cost:              decimal.NewFromInt(1950),
				Weight:            18000,
				Volume:            1500,
				Alerts:            []string{},
				Route:             "Dallas → Houston → New Orleans → Tampa → Miami",
				Mileage:           1320,
			},
			{
				ID:                "SH2024004",
				OrderNumber:       "ORD-4570",
				Customer:          "Northeast Distributors",
				CustomerContact:   "logistics@northeast.com",
				Origin:            "New York, NY 10001",
				Destination:       "Boston, MA 02101",
				Status:            ShipmentInTransit,
				Mode:              ModeLTL,
				Carrier:           "Northeast Freight",
				CarrierContact:    "+1-555-0789",
				Driver:            "Jennifer Wilson",
				EstimatedDelivery: time.Date(2024, time.July, 7, 18, 0, 0, 0, time.UTC),
				ActualPickup:      &pickup4,
				OptimizationScore: 91,
				Cost:              decimal.NewFromInt(650),
				Weight:            5200,
				Volume:            420,
				Alerts:            []string{"Traffic delay - I-95 construction"},
				Route:             "NYC → Hartford → Boston",
				Mileage:           215,
			},
		},
		Pagination: pagination.Meta{Page: 1, Limit: 20, Total: 4, Pages: 1},
	}
}

// DemoContracts returns the offline contract dataset.
func DemoContracts() *ContractList {
	return &ContractList{
		Contracts: []Contract{
			{
				ID:               "contract-001",
				CarrierName:      "FastFreight LLC",
				ContractType:     "Dedicated",
				Lanes:            []string{"TX-CA", "TX-FL", "TX-NY"},
				StartDate:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:          time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
				TotalValue:       decimal.NewFromInt(850000),
				Status:           "ACTIVE",
				PerformanceScore: 94.2,
				UtilizationRate:  87,
				CostPerMile:      decimal.NewFromFloat(2.85),
			},
			{
				ID:               "contract-002",
				CarrierName:      "RoadRunner Express",
				ContractType:     "Spot Market",
				Lanes:            []string{"TX-AZ", "TX-NV"},
				StartDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				EndDate:          time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
				TotalValue:       decimal.NewFromInt(420000),
				Status:           "ACTIVE",
				PerformanceScore: 91.5,
				UtilizationRate:  92,
				CostPerMile:      decimal.NewFromFloat(2.65),
			},
			{
				ID:               "contract-003",
				CarrierName:      "Premier Logistics",
				ContractType:     "Volume Commitment",
				Lanes:            []string{"TX-GA", "TX-SC", "TX-NC"},
				StartDate:        time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
				EndDate:          time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
				TotalValue:       decimal.NewFromInt(1200000),
				Status:           "ACTIVE",
				PerformanceScore: 96.3,
				UtilizationRate:  89,
				CostPerMile:      decimal.NewFromFloat(3.15),
			},
		},
		Pagination: pagination.Meta{Page: 1, Limit: 20, Total: 3, Pages: 1},
	}
}

// DemoRFQs returns the offline request-for-quote dataset.
func DemoRFQs() *RFQList {
	return &RFQList{
		RFQs: []RFQ{
			{
				ID:                 "rfq-001",
				Title:              "West Coast Expansion - LTL Services",
				Lanes:              []string{"TX-CA", "TX-OR", "TX-WA"},
				EstimatedVolume:    500,
				EstimatedValue:     decimal.NewFromInt(650000),
				Status:             "OPEN",
				SubmissionDeadline: time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC),
				Responses:          12,
				CreatedAt:          time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:                 "rfq-002",
				Title:              "Temperature Controlled Services",
				Lanes:              []string{"TX-FL", "TX-GA"},
				EstimatedVolume:    200,
				EstimatedValue:     decimal.NewFromInt(380000),
				Status:             "EVALUATION",
				SubmissionDeadline: time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
				Responses:          8,
				CreatedAt:          time.Date(2024, time.June, 23, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:                 "rfq-003",
				Title:              "Peak Season Capacity",
				Lanes:              []string{"TX-NY", "TX-NJ", "TX-PA"},
				EstimatedVolume:    800,
				EstimatedValue:     decimal.NewFromInt(920000),
				Status:             "AWARDED",
				SubmissionDeadline: time.Date(2024, time.June, 27, 0, 0, 0, 0, time.UTC),
				Responses:          15,
				AwardedTo:          "Premier Logistics",
				CreatedAt:          time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC),
			},
		},
		Pagination: pagination.Meta{Page: 1, Limit: 20, Total: 3, Pages: 1},
	}
}

// DemoProcurementSummary returns the offline spend and savings figures.
func DemoProcurementSummary() *ProcurementSummary {
	return &ProcurementSummary{
		TotalSpend:           decimal.NewFromInt(2450000),
		CostSavings:          decimal.NewFromInt(185000),
		SavingsPercentage:    7.5,
		ActiveContracts:      24,
		PendingRFQs:          8,
		CarrierNetwork:       156,
		AverageRateReduction: 12.3,
	}
}

// DemoPerformanceReport returns the offline performance report.
func DemoPerformanceReport() *PerformanceReport {
	return &PerformanceReport{
		Timeframe: "30d",
		Points: []PerformancePoint{
			{Period: "Jan", OnTimeRate: 94.2, Revenue: decimal.NewFromInt(980000), Costs: decimal.NewFromInt(750000), Margin: decimal.NewFromInt(230000)},
			{Period: "Feb", OnTimeRate: 94.2, Revenue: decimal.NewFromInt(1120000), Costs: decimal.NewFromInt(860000), Margin: decimal.NewFromInt(260000)},
			{Period: "Mar", OnTimeRate: 94.2, Revenue: decimal.NewFromInt(1250000), Costs: decimal.NewFromInt(950000), Margin: decimal.NewFromInt(300000)},
		},
	}
}

// DemoDashboardSnapshot returns the offline headline metrics.
func DemoDashboardSnapshot() *DashboardSnapshot {
	return &DashboardSnapshot{
		ActiveShipments:   247,
		InTransit:         86,
		OnTimeRate:        94.2,
		CostSavings:       decimal.NewFromInt(48200),
		OptimizationScore: 91.8,
		GeneratedAt:       time.Now().UTC(),
	}
}
