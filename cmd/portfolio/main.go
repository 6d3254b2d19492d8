package main

import (
	"k8s.io/klog/v2"

	"github.com/ezedin-dev/portfolio-backend/cmd/portfolio/helper"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/pkg/cronjob"
)

// @title						Portfolio API
// @version						1.0.0
// @description					Backend for the portfolio website: public content endpoints and an authenticated admin dashboard.
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description					Call /api/auth/login, then send 'Bearer ${TOKEN}' to access protected endpoints.
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	// Initialize register config and dependencies
	registerConfig, err := configInit.InitializeRegisterConfig()
	if err != nil {
		klog.Fatalf("Failed to register config: %s\n", err)
	}

	// Start retention job if enabled
	retention := cronjob.NewCronJobManager(query.DB())
	if err := retention.Start(backendConfig); err != nil {
		klog.Fatalf("Failed to start retention job: %s", err)
	}
	defer retention.Stop()

	// Start HTTP server
	serverRunner := helper.NewServerRunner(backendConfig)
	serverRunner.StartServer(registerConfig)
}
