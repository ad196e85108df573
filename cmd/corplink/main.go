package main

import (
	"context"
	"os"

	"github.com/corplink/corplink/internal/cli"
	"github.com/corplink/corplink/internal/util"
	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/logger/console"
	"github.com/corplink/corplink/pkg/store/sqlite"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.New(console.Params{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	dbFile := util.GetEnvString("DB_FILE", "graph_data.db")
	st, err := sqlite.Open(dbFile)
	if err != nil {
		logger.Fatal("Failed to open store", "file", dbFile, "err", err)
	}
	defer st.Close()

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to determine working directory", "err", err)
	}

	shell := cli.New(cli.Params{
		Store:     st,
		In:        os.Stdin,
		Out:       os.Stdout,
		Dir:       dir,
		ChartFile: util.GetEnvString("CHART_FILE", "chart.html"),
	})
	if err := shell.Run(context.Background()); err != nil {
		logger.Fatal("Session failed", "err", err)
	}
}
