package tms

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haulfront/haulfront-backend/pkg/pagination"
)

// ShipmentStatus is the closed set of shipment lifecycle states.
type ShipmentStatus string

const (
	ShipmentPlanned   ShipmentStatus = "planned"
	ShipmentBooked    ShipmentStatus = "booked"
	ShipmentInTransit ShipmentStatus = "in-transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentDelayed   ShipmentStatus = "delayed"
	ShipmentException ShipmentStatus = "exception"
)

// TransportMode enumerates consolidation/carriage modes.
type TransportMode string

const (
	ModeLTL        TransportMode = "LTL"
	ModeFTL        TransportMode = "FTL"
	ModeRail       TransportMode = "Rail"
	ModeOcean      TransportMode = "Ocean"
	ModeAir        TransportMode = "Air"
	ModeIntermodal TransportMode = "Intermodal"
)

// LocationType tags the role a location plays on a route.
type LocationType string

const (
	LocationOrigin      LocationType = "origin"
	LocationDestination LocationType = "destination"
	LocationHub         LocationType = "hub"
	LocationWarehouse   LocationType = "warehouse"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Zip         string       `json:"zip"`
	Country     string       `json:"country"`
	Coordinates Coordinates  `json:"coordinates"`
	Type        LocationType `json:"type"`
}

type Insurance struct {
	Provider     string          `json:"provider"`
	PolicyNumber string          `json:"policyNumber"`
	Coverage     decimal.Decimal `json:"coverage"`
	ExpiryDate   time.Time       `json:"expiryDate"`
}

type Carrier struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	PerformanceScore  float64    `json:"performanceScore"`
	OnTimePerformance float64    `json:"onTimePerformance"`
	AcceptanceRate    float64    `json:"acceptanceRate"`
	CostRating        float64    `json:"costRating"`
	QualityRating     float64    `json:"qualityRating"`
	ReliabilityScore  float64    `json:"aiReliabilityScore"`
	TotalShipments    int        `json:"totalShipments"`
	ServiceLanes      []string   `json:"serviceLanes"`
	Certifications    []string   `json:"certifications"`
	Insurance         *Insurance `json:"insuranceInfo,omitempty"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type CarrierList struct {
	Carriers   []Carrier       `json:"carriers"`
	Pagination pagination.Meta `json:"pagination"`
}

type TrackingPoint struct {
	ID             string    `json:"id"`
	ShipmentID     string    `json:"shipmentId"`
	Location       Location  `json:"location"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	Temperature    *float64  `json:"temperature,omitempty"`
	Humidity       *float64  `json:"humidity,omitempty"`
	PredictedDelay *float64  `json:"predictedDelayHours,omitempty"`
}

type Shipment struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	Customer          string          `json:"customer"`
	CustomerContact   string          `json:"customerContact,omitempty"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	Status            ShipmentStatus  `json:"status"`
	Mode              TransportMode   `json:"mode"`
	Carrier           string          `json:"carrier,omitempty"`
	CarrierContact    string          `json:"carrierContact,omitempty"`
	Driver            string          `json:"driver,omitempty"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	ActualPickup      *time.Time      `json:"actualPickup,omitempty"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
	OptimizationScore float64         `json:"optimizationScore"`
	Cost              decimal.Decimal `json:"cost"`
	Weight            float64         `json:"weight"`
	Volume            float64         `json:"volume"`
	Temperature       *float64        `json:"temperature,omitempty"`
	Alerts            []string        `json:"alerts"`
	Route             string          `json:"route,omitempty"`
	Mileage           int             `json:"mileage,omitempty"`
}

type ShipmentList struct {
	Shipments  []Shipment      `json:"shipments"`
	Pagination pagination.Meta `json:"pagination"`
}

type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Customer    string          `json:"customer"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Status      string          `json:"status"`
	Mode        TransportMode   `json:"mode"`
	Weight      float64         `json:"weight"`
	Volume      float64         `json:"volume"`
	Cost        decimal.Decimal `json:"cost"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type OrderList struct {
	Orders     []Order         `json:"orders"`
	Pagination pagination.Meta `json:"pagination"`
}

type PlanCreator struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type LoadPlan struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Status            string          `json:"status"`
	Orders            []string        `json:"orders"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	TotalSavings      decimal.Decimal `json:"totalSavings"`
	OptimizationScore float64         `json:"optimizationScore"`
	CreatedAt         time.Time       `json:"createdAt"`
	Creator           PlanCreator     `json:"creator"`
}

type LoadPlanList struct {
	LoadPlans  []LoadPlan      `json:"loadPlans"`
	Pagination pagination.Meta `json:"pagination"`
}

type Contract struct {
	ID               string          `json:"id"`
	CarrierName      string          `json:"carrierName"`
	ContractType     string          `json:"contractType"`
	Lanes            []string        `json:"lanes"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	Status           string          `json:"status"`
	PerformanceScore float64         `json:"performanceScore"`
	UtilizationRate  float64         `json:"utilizationRate"`
	CostPerMile      decimal.Decimal `json:"costPerMile"`
}

type ContractList struct {
	Contracts  []Contract      `json:"contracts"`
	Pagination pagination.Meta `json:"pagination"`
}

type RFQ struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Lanes              []string        `json:"lanes"`
	EstimatedVolume    int             `json:"estimatedVolume"`
	EstimatedValue     decimal.Decimal `json:"estimatedValue"`
	Status             string          `json:"status"`
	SubmissionDeadline time.Time       `json:"submissionDeadline"`
	Responses          int             `json:"responses"`
	AwardedTo          string          `json:"awardedTo,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

type RFQList struct {
	RFQs       []RFQ           `json:"rfqs"`
	Pagination pagination.Meta `json:"pagination"`
}

type ProcurementSummary struct {
	TotalSpend           decimal.Decimal `json:"totalSpend"`
	CostSavings          decimal.Decimal `json:"costSavings"`
	SavingsPercentage    float64         `json:"savingsPercentage"`
	ActiveContracts      int             `json:"activeContracts"`
	PendingRFQs          int             `json:"pendingRFQs"`
	CarrierNetwork       int             `json:"carrierNetwork"`
	AverageRateReduction float64         `json:"averageRateReduction"`
}

type CarrierRecommendation struct {
	CarrierID     string          `json:"carrierId"`
	Name          string          `json:"name"`
	Score         float64         `json:"score"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
}

type CarrierAnalytics struct {
	Timeframe       string  `json:"timeframe"`
	AverageScore    float64 `json:"averageScore"`
	OnTimeRate      float64 `json:"onTimeRate"`
	TotalShipments  int     `json:"totalShipments"`
	ActiveCarriers  int     `json:"activeCarriers"`
	AcceptedTenders int     `json:"acceptedTenders"`
}

type ComplianceSummary struct {
	CompliantCarriers     int `json:"compliantCarriers"`
	ExpiringInsurance     int `json:"expiringInsurance"`
	ExpiredCertifications int `json:"expiredCertifications"`
}

type PerformancePoint struct {
	Period     string          `json:"period"`
	OnTimeRate float64         `json:"onTimeRate"`
	Revenue    decimal.Decimal `json:"revenue"`
	Costs      decimal.Decimal `json:"costs"`
	Margin     decimal.Decimal `json:"margin"`
}

type CarrierPerformance struct {
	CarrierID string             `json:"carrierId"`
	Points    []PerformancePoint `json:"points"`
}

type DashboardSnapshot struct {
	ActiveShipments   int             `json:"activeShipments"`
	InTransit         int             `json:"inTransit"`
	OnTimeRate        float64         `json:"onTimeRate"`
	CostSavings       decimal.Decimal `json:"costSavings"`
	OptimizationScore float64         `json:"optimizationScore"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

type PerformanceReport struct {
	Timeframe string             `json:"timeframe"`
	Metric    string             `json:"metric,omitempty"`
	Points    []PerformancePoint `json:"points"`
}

type OptimizationResult struct {
	PlanID            string          `json:"planId"`
	OptimizationScore float64         `json:"optimizationScore"`
	TotalSavings      decimal.Decimal `json:"totalSavings"`
	Consolidated      int             `json:"consolidatedOrders"`
}

type RouteOptimization struct {
	ShipmentID        string     `json:"shipmentId"`
	Waypoints         []Location `json:"waypoints"`
	EstimatedDuration float64    `json:"estimatedDurationHours"`
	EstimatedDistance float64    `json:"estimatedDistanceMiles"`
	OptimizationScore float64    `json:"optimizationScore"`
}

type CapacityPlan struct {
	TimeHorizonDays int     `json:"timeHorizonDays"`
	UtilizationRate float64 `json:"utilizationRate"`
	ProjectedDemand float64 `json:"projectedDemand"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// CarrierListParams filters the carrier list endpoint. Pointer fields are
// serialized only when set, matching the upstream's sparse query contract.
type CarrierListParams struct {
	Page                int
	Limit               int
	IsActive            *bool
	MinPerformanceScore float64
}

func (p CarrierListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*p.IsActive))
	}
	if p.MinPerformanceScore > 0 {
		q.Set("minPerformanceScore", formatScore(p.MinPerformanceScore))
	}
	return q
}

// ListParams filters the order/shipment/load-plan list endpoints.
type ListParams struct {
	Status string
	Page   int
	Limit  int
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// AnalyticsParams filters carrier analytics queries.
type AnalyticsParams struct {
	CarrierID string
	Timeframe string
}

func (p AnalyticsParams) values() url.Values {
	q := url.Values{}
	if p.CarrierID != "" {
		q.Set("carrierId", p.CarrierID)
	}
	if p.Timeframe != "" {
		q.Set("timeframe", p.Timeframe)
	}
	return q
}

// PerformanceParams filters the analytics performance endpoint.
type PerformanceParams struct {
	Timeframe string
	Metric    string
}

func (p PerformanceParams) values() url.Values {
	q := url.Values{}
	if p.Timeframe != "" {
		q.Set("timeframe", p.Timeframe)
	}
	if p.Metric != "" {
		q.Set("metric", p.Metric)
	}
	return q
}

// CapacityParams filters the planning capacity endpoint.
type CapacityParams struct {
	TimeHorizon        int
	IncludeSeasonality *bool
	ConfidenceLevel    float64
}

func (p CapacityParams) values() url.Values {
	q := url.Values{}
	if p.TimeHorizon > 0 {
		q.Set("timeHorizon", strconv.Itoa(p.TimeHorizon))
	}
	if p.IncludeSeasonality != nil {
		q.Set("includeSeasonality", strconv.FormatBool(*p.IncludeSeasonality))
	}
	if p.ConfidenceLevel > 0 {
		q.Set("confidenceLevel", formatScore(p.ConfidenceLevel))
	}
	return q
}

// formatScore renders numbers the way the upstream expects: integral values
// without a trailing ".0".
func formatScore(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CarrierCreate is the payload for creating or onboarding a carrier.
type CarrierCreate struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	City           string   `json:"city" validate:"required"`
	State          string   `json:"state" validate:"required,len=2"`
	ServiceLanes   []string `json:"serviceLanes" validate:"min=1,dive,required"`
	Certifications []string `json:"certifications,omitempty"`
}

// CarrierUpdate carries the mutable carrier fields.
type CarrierUpdate struct {
	Email          string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string   `json:"phone,omitempty"`
	ServiceLanes   []string `json:"serviceLanes,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

// ShipmentRequirements describes a tender for carrier recommendations.
type ShipmentRequirements struct {
	Lane        string        `json:"lane" validate:"required"`
	Mode        TransportMode `json:"mode" validate:"required"`
	Weight      float64       `json:"weight" validate:"gt=0"`
	PickupDate  time.Time     `json:"pickupDate" validate:"required"`
	Temperature *float64      `json:"temperature,omitempty"`
}

// OptimizeRequest asks planning to consolidate the given orders.
type OptimizeRequest struct {
	OrderIDs   []string `json:"orderIds" validate:"min=1,dive,required"`
	Objective  string   `json:"objective,omitempty"`
	MaxStops   int      `json:"maxStops,omitempty"`
	Timeframe  string   `json:"timeframe,omitempty"`
	AllowSplit bool     `json:"allowSplit,omitempty"`
}

// RouteOptimizeRequest asks planning for an optimized route.
type RouteOptimizeRequest struct {
	ShipmentID string   `json:"shipmentId" validate:"required"`
	Via        []string `json:"via,omitempty"`
	Avoid      []string `json:"avoid,omitempty"`
}

// OrderCreate is the payload for creating an order.
type OrderCreate struct {
	Customer    string          `json:"customer" validate:"required"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	Mode        TransportMode   `json:"mode" validate:"required"`
	Weight      float64         `json:"weight" validate:"gt=0"`
	Volume      float64         `json:"volume" validate:"gt=0"`
	Cost        decimal.Decimal `json:"cost"`
}

// ShipmentCreate is the payload for creating a shipment.
type ShipmentCreate struct {
	OrderNumber string          `json:"orderNumber" validate:"required"`
	Customer    string          `json:"customer" validate:"required"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	Mode        TransportMode   `json:"mode" validate:"required"`
	Weight      float64         `json:"weight" validate:"gt=0"`
	Volume      float64         `json:"volume" validate:"gt=0"`
	Cost        decimal.Decimal `json:"cost"`
	Carrier     string          `json:"carrier,omitempty"`
}

// ShipmentUpdate carries the mutable shipment fields.
type ShipmentUpdate struct {
	Status  ShipmentStatus `json:"status,omitempty"`
	Carrier string         `json:"carrier,omitempty"`
	Driver  string         `json:"driver,omitempty"`
}
