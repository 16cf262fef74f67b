package main

import (
	"flag"

	"github.com/rs/zerolog"

	"github.com/arebrov/GoatGroupBot/logging"
	"github.com/arebrov/GoatGroupBot/nats"
	"github.com/arebrov/GoatGroupBot/rest"
	"github.com/arebrov/GoatGroupBot/util"
)

var mainLogger = logging.GetZeroLogger("main::main", nil)

func main() {
	var logLevel = flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	matchManager, err := nats.NewMatchManager(util.GameServerEnvironment.GetNatsURL())
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Cannot initialize the nats match manager")
	}

	rest.RunRestServer(matchManager, util.GameServerEnvironment.GetRestPort())
}
