package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"othello-engine/config"
	"othello-engine/server"
)

func main() {
	addrFlag := flag.String("addr", "", "listen address (overrides config)")
	configFlag := flag.String("config", "", "path to config file")
	debugFlag := flag.Bool("debug", false, "verbose development logging")
	flag.Parse()

	cfg, err := config.Setup(*configFlag)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	srv := server.New(logger)
	logger.Infow("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func newLogger(debug bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
