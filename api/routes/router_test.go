package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulfront/haulfront-backend/internal/alerts"
	"github.com/haulfront/haulfront-backend/internal/dashboard"
	"github.com/haulfront/haulfront-backend/internal/settings"
	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/turvo"
	"github.com/haulfront/haulfront-backend/internal/views"
	"github.com/haulfront/haulfront-backend/pkg/config"
	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/types"
)

const demoToken = "demo-token-for-testing"

type stubLoader struct{}

func (stubLoader) GetDashboardSnapshot(context.Context) (*tms.DashboardSnapshot, error) {
	return tms.DemoDashboardSnapshot(), nil
}

func (stubLoader) ListCarriers(context.Context, tms.CarrierListParams) (*tms.CarrierList, error) {
	return tms.DemoCarriers(), nil
}

func (stubLoader) GetCarrierAnalytics(context.Context, tms.AnalyticsParams) (*tms.CarrierAnalytics, error) {
	return &tms.CarrierAnalytics{ActiveCarriers: 3}, nil
}

func (stubLoader) GetCarrierCompliance(context.Context) (*tms.ComplianceSummary, error) {
	return &tms.ComplianceSummary{CompliantCarriers: 3}, nil
}

func (stubLoader) ListShipments(context.Context, tms.ListParams) (*tms.ShipmentList, error) {
	return tms.DemoShipments(), nil
}

func (stubLoader) ListLoadPlans(context.Context, tms.ListParams) (*tms.LoadPlanList, error) {
	return tms.DemoLoadPlans(), nil
}

func (stubLoader) ListContracts(context.Context, tms.ListParams) (*tms.ContractList, error) {
	return tms.DemoContracts(), nil
}

func (stubLoader) ListRFQs(context.Context, tms.ListParams) (*tms.RFQList, error) {
	return tms.DemoRFQs(), nil
}

func (stubLoader) GetProcurementSummary(context.Context) (*tms.ProcurementSummary, error) {
	return tms.DemoProcurementSummary(), nil
}

func (stubLoader) GetPerformanceReport(context.Context, tms.PerformanceParams) (*tms.PerformanceReport, error) {
	return tms.DemoPerformanceReport(), nil
}

type stubKV struct {
	data map[string]string
}

func (s *stubKV) Get(_ context.Context, key string) (string, error) {
	value, ok := s.data[key]
	if !ok {
		return "", io.EOF
	}
	return value, nil
}

func (s *stubKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	s.data[key] = value.(string)
	return nil
}

func (s *stubKV) SettingsKey(userID string) string {
	return "hf:settings:" + userID
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", Port: "0"},
		Auth: config.AuthConfig{DemoToken: demoToken},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	loader := stubLoader{}
	hooks := views.FallbackHooks{}

	return NewRouter(
		cfg,
		logg,
		nil,
		dashboard.NewOverviewService(loader, hooks),
		dashboard.NewCarriersService(loader, hooks),
		dashboard.NewShipmentsService(loader, hooks),
		dashboard.NewPlanningService(loader, hooks),
		dashboard.NewProcurementService(loader, hooks),
		dashboard.NewAnalyticsService(loader, hooks),
		alerts.NewService(alerts.DemoAlerts(time.Now())),
		settings.NewStore(&stubKV{data: map[string]string{}}),
		turvo.NewClient(config.TurvoConfig{BaseURL: "http://localhost:1"}),
		nil,
	)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authed {
		req.Header.Set("Authorization", "Bearer "+demoToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpointsOpen(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health/live", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-HaulFront-Env"))

	rec = doRequest(t, router, http.MethodGet, "/health/ready", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/dashboard/overview",
		"/api/v1/carriers",
		"/api/v1/shipments",
		"/api/v1/planning/load-plans",
		"/api/v1/procurement",
		"/api/v1/analytics/performance",
		"/api/v1/alerts/",
		"/api/v1/settings/",
	} {
		rec := doRequest(t, router, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestOverviewEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/overview", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dashboard.OverviewPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, views.SourceLive, envelope.Data.Source)
	assert.Len(t, envelope.Data.RecentActivity, 4)
}

func TestCarriersEndpointWithQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/carriers?q=atlanta", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dashboard.CarriersPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Carriers, 1)
	assert.Equal(t, "Premier Logistics", envelope.Data.Carriers[0].Name)
	assert.Equal(t, 94, envelope.Data.AverageScore)
}

func TestProcurementEndpointWithQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/procurement?q=dedicated", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dashboard.ProcurementPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Contracts, 1)
	assert.Equal(t, "FastFreight LLC", envelope.Data.Contracts[0].CarrierName)
	assert.Equal(t, 3, envelope.Data.ActiveContracts)
	require.NotNil(t, envelope.Data.Summary)
	assert.Equal(t, 156, envelope.Data.Summary.CarrierNetwork)
}

func TestAnalyticsPerformanceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/analytics/performance", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dashboard.AnalyticsPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Report.Points, 3)
	assert.Equal(t, views.SourceLive, envelope.Data.Source)
}

func TestAlertsResolveFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/alerts/alert-001/resolve", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	// terminal state rejects the second transition
	rec = doRequest(t, router, http.MethodPost, "/api/v1/alerts/alert-001/dismiss", "", true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "STATE_CONFLICT", envelope.Error.Code)
}

func TestAlertsUnknownID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/alerts/alert-999/resolve", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/settings/", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data settings.Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "John", envelope.Data.Profile.FirstName)

	doc := envelope.Data
	doc.Profile.FirstName = "Jane"
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	rec = doRequest(t, router, http.MethodPut, "/api/v1/settings/", string(body), true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/settings/", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Jane", envelope.Data.Profile.FirstName)
}

func TestTurvoTestConnectionRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/turvo/test-connection", `{"apiToken":""}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
