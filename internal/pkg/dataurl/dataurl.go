// Package dataurl carries the PNG payload across the execution-context
// boundary between the converting side and the download subsystem, which
// share no in-memory binary object references.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/webext-tools/png-saver/internal/entity"
)

const pngPrefix = "data:image/png;base64,"

func Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", entity.ErrTransport)
	}
	return pngPrefix + base64.StdEncoding.EncodeToString(data), nil
}

func Decode(payload string) ([]byte, error) {
	if !strings.HasPrefix(payload, pngPrefix) {
		return nil, fmt.Errorf("%w: missing data url prefix", entity.ErrTransport)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, pngPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrTransport, err)
	}
	return data, nil
}
