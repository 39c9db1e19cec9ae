package main

import (
	"flag"

	"github.com/ckoockiy/api-rest-dbz/global"
	"github.com/ckoockiy/api-rest-dbz/initialize"
	"github.com/ckoockiy/api-rest-dbz/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Config file path")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build failed")
	}

	global.Logger.Info().
		Str("host", app.Cfg.Server.Host).
		Int("port", app.Cfg.Server.Port).
		Str("uploads", app.Cfg.Storage.UploadDir).
		Msg("http server listening")

	if err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
