package main

import (
	_ "time/tzdata"
	"tourcrm/config"
	"tourcrm/di"
	"tourcrm/shared/logger"
	"tourcrm/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	timezone.Init(cfg)

	http := di.InitializeService()
	http.Serve()
}
