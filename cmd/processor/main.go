package main

import (
	"time"

	"github.com/webext-tools/png-saver/config"
	"github.com/webext-tools/png-saver/internal/pkg/processor"
)

func main() {
	fetchTimeout, err := time.ParseDuration(config.GetEnv("FETCH_TIMEOUT", "30s"))
	if err != nil {
		fetchTimeout = 30 * time.Second
	}

	processor.StartConvertConsumer(
		[]string{config.GetEnv("KAFKA_BROKERS", "localhost:9094")},
		config.GetEnv("KAFKA_TOPIC", "image-convert"),
		config.GetEnv("KAFKA_GROUP_ID", "png-saver-service"),
		config.GetEnv("DOWNLOADS_DIR", "./downloads"),
		fetchTimeout,
	)
}
