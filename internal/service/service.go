package service

import (
	"github.com/webext-tools/png-saver/internal/database"
	"github.com/webext-tools/png-saver/internal/entity"
	"github.com/webext-tools/png-saver/internal/pkg/converter"
	"github.com/webext-tools/png-saver/internal/pkg/fetcher"
	"github.com/webext-tools/png-saver/internal/pkg/kafka"
	"github.com/webext-tools/png-saver/internal/pkg/menu"
	"github.com/webext-tools/png-saver/internal/pkg/notifier"
)

// ConvertService runs the click-to-download pipeline. HandleClick applies
// the event guard first; a non-qualifying event returns (nil, nil) and has
// no side effects. Convert is the pipeline itself, used directly by the
// queue consumer.
type ConvertService interface {
	HandleClick(event entity.ClickEvent) (*entity.ConversionResult, error)
	Convert(event entity.ClickEvent) (*entity.ConversionResult, error)
}

type ConvertServiceConfig struct {
	Mode  string
	Topic string
}

type convertService struct {
	menu      *menu.Registry
	fetcher   fetcher.Fetcher
	converter converter.Converter
	downloads database.DownloadRepository
	notifier  notifier.Notifier
	producer  kafka.Producer
	config    *ConvertServiceConfig
}

func NewConvertService(
	menuRegistry *menu.Registry,
	imageFetcher fetcher.Fetcher,
	imageConverter converter.Converter,
	downloads database.DownloadRepository,
	failureNotifier notifier.Notifier,
	producer kafka.Producer,
	config *ConvertServiceConfig,
) ConvertService {
	return &convertService{
		menu:      menuRegistry,
		fetcher:   imageFetcher,
		converter: imageConverter,
		downloads: downloads,
		notifier:  failureNotifier,
		producer:  producer,
		config:    config,
	}
}
