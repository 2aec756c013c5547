package processor

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/webext-tools/png-saver/internal/database"
	"github.com/webext-tools/png-saver/internal/entity"
	"github.com/webext-tools/png-saver/internal/pkg/converter"
	"github.com/webext-tools/png-saver/internal/pkg/fetcher"
	"github.com/webext-tools/png-saver/internal/pkg/menu"
	"github.com/webext-tools/png-saver/internal/pkg/notifier"
	"github.com/webext-tools/png-saver/internal/pkg/storage"
	"github.com/webext-tools/png-saver/internal/service"
)

// StartConvertConsumer reads queued click events and runs the same
// conversion pipeline the HTTP service runs synchronously.
func StartConvertConsumer(brokers []string, topic, groupID, downloadsDir string, fetchTimeout time.Duration) {

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer reader.Close()

	fileStorage := storage.NewFileStorage(downloadsDir)
	convertService := service.NewConvertService(
		menu.NewRegistry(),
		fetcher.New(fetchTimeout),
		converter.New(),
		database.NewDownloadRepository(fileStorage),
		notifier.NewLogNotifier(),
		nil,
		&service.ConvertServiceConfig{},
	)

	log.Println("Convert consumer started...")
	log.Printf("Connected to Kafka brokers: %s", brokers)

	for {
		ctx := context.Background()
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from topic %s [partition %d, offset %d]: %s\n",
			msg.Topic, msg.Partition, msg.Offset, string(msg.Value))

		var event entity.ClickEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("Failed to parse click event: %v\n", err)
			continue
		}

		// Events were already guard-checked before they were queued;
		// the consumer goes straight to the pipeline.
		go func(e entity.ClickEvent) {
			if _, err := convertService.Convert(e); err != nil {
				log.Printf("Conversion failed for %s: %v\n", e.SrcURL, err)
			} else {
				log.Printf("Successfully converted image: %s", e.SrcURL)
			}
		}(event)
	}
}
