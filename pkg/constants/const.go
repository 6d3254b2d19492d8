package constants

const (
	// APIPrefix is the route prefix shared by every API endpoint.
	APIPrefix = "/api"

	// HealthzPath is probed by the deployment.
	HealthzPath = "/v1/healthz"
)
