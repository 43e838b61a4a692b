package dashboard

import (
	"context"

	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/views"
)

const shipmentsPage = "shipments"

// ShipmentTab selects a lifecycle partition of the shipment list.
// The literal "all" (or anything unrecognized) disables the partition.
type ShipmentTab string

const (
	ShipmentTabAll       ShipmentTab = "all"
	ShipmentTabPlanned   ShipmentTab = "planned"
	ShipmentTabInTransit ShipmentTab = "in-transit"
	ShipmentTabDelivered ShipmentTab = "delivered"
	ShipmentTabDelayed   ShipmentTab = "delayed"
)

// ShipmentsPage is the rendered shipment tracking page.
type ShipmentsPage struct {
	Shipments []tms.Shipment `json:"shipments"`
	Counts    ShipmentCounts `json:"counts"`
	Source    views.Source   `json:"source"`
}

// ShipmentCounts summarizes the full (unfiltered) list for the tab badges.
type ShipmentCounts struct {
	All       int `json:"all"`
	Planned   int `json:"planned"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
	Delayed   int `json:"delayed"`
}

type shipmentLoader interface {
	ListShipments(ctx context.Context, params tms.ListParams) (*tms.ShipmentList, error)
}

// ShipmentsService loads the shipment tracking page.
type ShipmentsService struct {
	loader shipmentLoader
	hooks  views.FallbackHooks
}

// NewShipmentsService builds the shipments page service.
func NewShipmentsService(loader shipmentLoader, hooks views.FallbackHooks) *ShipmentsService {
	return &ShipmentsService{loader: loader, hooks: hooks}
}

// Load returns the shipments page for the given query and tab. The text
// filter searches shipment number, customer, carrier, origin, and
// destination; the tab partition is ANDed with it. Counts always reflect
// the full list so badges stay stable while filtering.
func (s *ShipmentsService) Load(ctx context.Context, query string, tab ShipmentTab) ShipmentsPage {
	list, source := views.LoadWithFallback(ctx, shipmentsPage,
		func(ctx context.Context) (*tms.ShipmentList, error) {
			return s.loader.ListShipments(ctx, tms.ListParams{})
		},
		tms.DemoShipments,
		s.hooks,
	)

	visible := views.Filter(list.Shipments, func(sh tms.Shipment) bool {
		if !inShipmentTab(sh, tab) {
			return false
		}
		return views.MatchesQuery(query, sh.ID, sh.OrderNumber, sh.Customer, sh.Carrier, sh.Origin, sh.Destination)
	})

	return ShipmentsPage{
		Shipments: visible,
		Counts:    countShipments(list.Shipments),
		Source:    source,
	}
}

func inShipmentTab(sh tms.Shipment, tab ShipmentTab) bool {
	switch tab {
	case ShipmentTabPlanned:
		return sh.Status == tms.ShipmentPlanned
	case ShipmentTabInTransit:
		return sh.Status == tms.ShipmentInTransit
	case ShipmentTabDelivered:
		return sh.Status == tms.ShipmentDelivered
	case ShipmentTabDelayed:
		return sh.Status == tms.ShipmentDelayed || sh.Status == tms.ShipmentException
	default:
		return true
	}
}

func countShipments(shipments []tms.Shipment) ShipmentCounts {
	counts := ShipmentCounts{All: len(shipments)}
	for _, sh := range shipments {
		switch sh.Status {
		case tms.ShipmentPlanned:
			counts.Planned++
		case tms.ShipmentInTransit:
			counts.InTransit++
		case tms.ShipmentDelivered:
			counts.Delivered++
		case tms.ShipmentDelayed, tms.ShipmentException:
			counts.Delayed++
		}
	}
	return counts
}
