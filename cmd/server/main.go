package main

import (
	"github.com/corplink/corplink/internal/server"
	"github.com/corplink/corplink/internal/util"
	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.New(console.Params{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
