// Package settings stores per-user dashboard preferences as a single JSON
// document in Redis. A missing document resolves to the defaults; saving
// always writes the full document.
package settings

// Profile identifies the signed-in user.
type Profile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Timezone   string `json:"timezone"`
	Language   string `json:"language"`
}

// Company holds the tenant's business details.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	TaxID   string `json:"taxId"`
}

// Notifications toggles the outbound channels and alert classes.
type Notifications struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	WeeklyReports      bool `json:"weeklyReports"`
	ExceptionAlerts    bool `json:"exceptionAlerts"`
	PerformanceAlerts  bool `json:"performanceAlerts"`
	CostAlerts         bool `json:"costAlerts"`
	ComplianceAlerts   bool `json:"complianceAlerts"`
	AIInsights         bool `json:"aiInsights"`
	MarketingEmails    bool `json:"marketingEmails"`
}

// AI controls the automation features.
type AI struct {
	AutoOptimization     bool `json:"autoOptimization"`
	PredictiveAnalytics  bool `json:"predictiveAnalytics"`
	SmartRecommendations bool `json:"smartRecommendations"`
	AnomalyDetection     bool `json:"anomalyDetection"`
	AutoRouting          bool `json:"autoRouting"`
	AutoCarrierSelection bool `json:"autoCarrierSelection"`
	LearningMode         bool `json:"learningMode"`
	ConfidenceThreshold  int  `json:"confidenceThreshold" validate:"min=0,max=100"`
}

// Security holds account hardening options.
type Security struct {
	TwoFactorAuth  bool `json:"twoFactorAuth"`
	SessionTimeout int  `json:"sessionTimeout" validate:"min=1"`
	PasswordExpiry int  `json:"passwordExpiry" validate:"min=0"`
	IPWhitelist    bool `json:"ipWhitelist"`
	AuditLogging   bool `json:"auditLogging"`
	DataEncryption bool `json:"dataEncryption"`
	SSOEnabled     bool `json:"ssoEnabled"`
}

// Integrations toggles external data feeds.
type Integrations struct {
	CarrierAPIs    bool `json:"carrierAPIs"`
	ERPIntegration bool `json:"erpIntegration"`
	WeatherAPI     bool `json:"weatherAPI"`
	TrafficAPI     bool `json:"trafficAPI"`
	GPSTracking    bool `json:"gpsTracking"`
	CustomsAPI     bool `json:"customsAPI"`
	BankingAPI     bool `json:"bankingAPI"`
}

// Preferences holds display and refresh behavior.
type Preferences struct {
	Theme           string `json:"theme"`
	Currency        string `json:"currency"`
	Units           string `json:"units"`
	DateFormat      string `json:"dateFormat"`
	TimeFormat      string `json:"timeFormat"`
	DefaultView     string `json:"defaultView"`
	AutoRefresh     bool   `json:"autoRefresh"`
	RefreshInterval int    `json:"refreshInterval" validate:"min=5"`
}

// Document is the full per-user settings record.
type Document struct {
	Profile       Profile       `json:"profile"`
	Company       Company       `json:"company"`
	Notifications Notifications `json:"notifications"`
	AI            AI            `json:"ai"`
	Security      Security      `json:"security"`
	Integrations  Integrations  `json:"integrations"`
	Preferences   Preferences   `json:"preferences"`
}

// Defaults returns the document served before a user has saved anything.
func Defaults() Document {
	return Document{
		Profile: Profile{
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@company.com",
			Phone:      "+1-555-0123",
			Title:      "Transportation Manager",
			Department: "Logistics",
			Location:   "Dallas, TX",
			Timezone:   "America/Chicago",
			Language:   "English",
		},
		Company: Company{
			Name:    "Acme Logistics Corp",
			Address: "123 Business Ave",
			City:    "Dallas",
			State:   "TX",
			ZipCode: "75201",
			Country: "United States",
			Phone:   "+1-555-0100",
			Website: "www.acmelogistics.com",
			TaxID:   "12-3456789",
		},
		Notifications: Notifications{
			EmailNotifications: true,
			PushNotifications:  true,
			WeeklyReports:      true,
			ExceptionAlerts:    true,
			PerformanceAlerts:  true,
			CostAlerts:         true,
			ComplianceAlerts:   true,
			AIInsights:         true,
		},
		AI: AI{
			AutoOptimization:     true,
			PredictiveAnalytics:  true,
			SmartRecommendations: true,
			AnomalyDetection:     true,
			AutoCarrierSelection: true,
			LearningMode:         true,
			ConfidenceThreshold:  85,
		},
		Security: Security{
			TwoFactorAuth:  true,
			SessionTimeout: 30,
			PasswordExpiry: 90,
			AuditLogging:   true,
			DataEncryption: true,
		},
		Integrations: Integrations{
			CarrierAPIs:    true,
			ERPIntegration: true,
			WeatherAPI:     true,
			TrafficAPI:     true,
			GPSTracking:    true,
			BankingAPI:     true,
		},
		Preferences: Preferences{
			Theme:           "light",
			Currency:        "USD",
			Units:           "imperial",
			DateFormat:      "MM/DD/YYYY",
			TimeFormat:      "12h",
			DefaultView:     "dashboard",
			AutoRefresh:     true,
			RefreshInterval: 30,
		},
	}
}
