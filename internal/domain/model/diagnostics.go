package model

// Diagnostic status words.
const (
	DiagnosticWorking = "Working"
	DiagnosticFound   = "Found"
	DiagnosticMissing = "Missing"
	DiagnosticFailed  = "Failed"
)

// TestOrderSummary identifies the order a diagnostic run fetched.
type TestOrderSummary struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Customer string `json:"customer"`
}

// SetupReport describes each step of the order processing chain.
type SetupReport struct {
	Authentication string            `json:"authentication"`
	Shop           string            `json:"shop"`
	Token          string            `json:"token"`
	ShopifyAPI     string            `json:"shopifyApi,omitempty"`
	TestOrder      *TestOrderSummary `json:"testOrder,omitempty"`
	ShopifyError   string            `json:"shopifyError,omitempty"`
}

// DiagnosticsReport is the result of a setup self check.
type DiagnosticsReport struct {
	Success         bool        `json:"success"`
	Message         string      `json:"message,omitempty"`
	Error           string      `json:"error,omitempty"`
	Setup           SetupReport `json:"setup"`
	NextSteps       []string    `json:"nextSteps,omitempty"`
	Troubleshooting []string    `json:"troubleshooting,omitempty"`
}
