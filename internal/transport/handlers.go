package transport

import (
	"github.com/webext-tools/png-saver/internal/service"
)

type ClickHandler struct {
	service service.ConvertService
}

func NewClickHandler(service service.ConvertService) *ClickHandler {
	return &ClickHandler{service: service}
}
