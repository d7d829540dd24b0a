// @title ReservaHub API
// @version 1.0
// @description Multi-tenant appointment booking platform.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"reservahub/config"
	"reservahub/di"
	"reservahub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
