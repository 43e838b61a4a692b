package controllers

import (
	"net/http"

	"github.com/haulfront/haulfront-backend/api/responses"
	"github.com/haulfront/haulfront-backend/api/validators"
	"github.com/haulfront/haulfront-backend/internal/turvo"
	"github.com/haulfront/haulfront-backend/pkg/logger"
)

type turvoTestConnectionRequest struct {
	APIToken string `json:"apiToken" validate:"required"`
}

type turvoCreateShipmentRequest struct {
	ShipmentID    string            `json:"shipmentId" validate:"required"`
	TurvoAPIToken string            `json:"turvoApiToken" validate:"required"`
	CarrierInfo   turvo.CarrierInfo `json:"carrierInfo"`
}

// TurvoTestConnection verifies a user-supplied Turvo API token.
func TurvoTestConnection(client *turvo.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req turvoTestConnectionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := client.TestConnection(r.Context(), req.APIToken); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "connected"})
	}
}

// TurvoCreateShipment exports a shipment to Turvo and returns the platform
// identifier.
func TurvoCreateShipment(client *turvo.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req turvoCreateShipmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := client.CreateShipment(r.Context(), req.TurvoAPIToken, turvo.ShipmentExport{
			ShipmentID: req.ShipmentID,
			Carrier:    req.CarrierInfo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"turvoShipment": created})
	}
}
