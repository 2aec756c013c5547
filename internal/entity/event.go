package entity

// ClickEvent is what the host UI shell delivers when a context-menu entry
// is clicked. MenuItemID has to match the registered entry and SrcURL has
// to be present before a conversion is started.
type ClickEvent struct {
	MenuItemID string `json:"menu_item_id"`
	SrcURL     string `json:"src_url"`
}

// DownloadRequest is the handoff to the download subsystem. Data carries
// the transport-encoded PNG because the converting side and the download
// side share no binary object references.
type DownloadRequest struct {
	Data     string `json:"data"`
	Filename string `json:"filename"`
	SaveAs   bool   `json:"save_as"`
}

type ConversionResult struct {
	InvocationID string `json:"invocation_id"`
	Status       string `json:"status"`
	Filename     string `json:"filename,omitempty"`
	SourceURL    string `json:"source_url"`
}
