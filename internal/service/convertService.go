package service

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/webext-tools/png-saver/internal/entity"
	"github.com/webext-tools/png-saver/internal/pkg/dataurl"
	"github.com/webext-tools/png-saver/internal/pkg/filename"
)

const ModeQueue = "queue"

func (s *convertService) HandleClick(event entity.ClickEvent) (*entity.ConversionResult, error) {
	// Guard clause: only the registered entry with a source URL qualifies.
	// Anything else is a silent no-op, not an error.
	if !s.menu.Matches(event.MenuItemID) || event.SrcURL == "" {
		return nil, nil
	}

	if s.config.Mode == ModeQueue && s.producer != nil {
		if err := s.producer.SendMessage(s.config.Topic, event); err != nil {
			s.notifier.NotifyFailure(event.SrcURL, err)
			return nil, err
		}
		return &entity.ConversionResult{
			Status:    "queued",
			SourceURL: event.SrcURL,
		}, nil
	}

	return s.Convert(event)
}

// Convert is one pipeline instance: fetch, decode, flatten, encode,
// transport-encode, hand off. Stages run strictly in order; the first
// failure short-circuits the rest and produces exactly one notification.
func (s *convertService) Convert(event entity.ClickEvent) (*entity.ConversionResult, error) {
	invocationID := uuid.New().String()
	log := logrus.WithFields(logrus.Fields{
		"invocation_id": invocationID,
		"src_url":       event.SrcURL,
	})

	raw, contentType, err := s.fetcher.Fetch(event.SrcURL)
	if err != nil {
		return nil, s.fail(event, err)
	}
	log.WithField("content_type", contentType).Debug("image fetched")

	pngData, err := s.converter.ToPNG(raw)
	if err != nil {
		return nil, s.fail(event, err)
	}

	payload, err := dataurl.Encode(pngData)
	if err != nil {
		return nil, s.fail(event, err)
	}

	name := filename.Generate()
	request := &entity.DownloadRequest{
		Data:     payload,
		Filename: name,
		SaveAs:   true,
	}

	// The pipeline is complete once the handoff is issued; the download
	// subsystem's own outcome is not awaited.
	go func() {
		if _, err := s.downloads.Save(request); err != nil {
			log.Errorf("download subsystem rejected %s: %v", name, err)
		}
	}()

	log.WithField("filename", name).Info("conversion complete")

	return &entity.ConversionResult{
		InvocationID: invocationID,
		Status:       "completed",
		Filename:     name,
		SourceURL:    event.SrcURL,
	}, nil
}

func (s *convertService) fail(event entity.ClickEvent, err error) error {
	s.notifier.NotifyFailure(event.SrcURL, err)
	return err
}
