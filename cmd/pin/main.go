package main

import (
	"os"

	"github.com/dixieflatline76/pin/config"
	"github.com/dixieflatline76/pin/ui"
	"github.com/dixieflatline76/pin/util/log"
)

func main() {
	log.Debugf("%s %s starting", config.AppName, config.AppVersion)

	if err := ui.Run(os.Args[1:]); err != nil {
		log.Debugf("Exiting: %v", err)
		os.Exit(1)
	}
}
