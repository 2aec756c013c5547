package main

import (
	"github.com/sirupsen/logrus"

	"github.com/webext-tools/png-saver/config"
	"github.com/webext-tools/png-saver/internal/appServer"
)

func main() {
	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config: %v", err)
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config: %v", err)
	}

	appServer.NewServer(cfg)
}
