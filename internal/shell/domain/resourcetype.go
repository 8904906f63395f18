package domain

import (
	"fmt"
	"strings"
)

// ResourceType classifies a prospective network fetch for filter matching.
type ResourceType uint8

const (
	ResourceOther ResourceType = iota
	ResourceScript
	ResourceImage
	ResourceStylesheet
	ResourceFont
	ResourceMedia
	ResourceXHR
	ResourceSubdocument
	ResourceWebSocket
)

// String returns the canonical filter-option spelling of the resource type.
func (r ResourceType) String() string {
	switch r {
	case ResourceScript:
		return "script"
	case ResourceImage:
		return "image"
	case ResourceStylesheet:
		return "stylesheet"
	case ResourceFont:
		return "font"
	case ResourceMedia:
		return "media"
	case ResourceXHR:
		return "xmlhttprequest"
	case ResourceSubdocument:
		return "subdocument"
	case ResourceWebSocket:
		return "websocket"
	case ResourceOther:
		return "other"
	default:
		return fmt.Sprintf("ResourceType(%d)", uint8(r))
	}
}

// ParseResourceType maps a resource-type string (including common aliases)
// to a ResourceType. Unknown strings map to ResourceOther rather than failing.
func ParseResourceType(s string) ResourceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "script":
		return ResourceScript
	case "image", "img":
		return ResourceImage
	case "stylesheet", "css":
		return ResourceStylesheet
	case "font":
		return ResourceFont
	case "media", "video", "audio":
		return ResourceMedia
	case "xmlhttprequest", "xhr", "fetch":
		return ResourceXHR
	case "subdocument", "iframe":
		return ResourceSubdocument
	case "websocket", "ws":
		return ResourceWebSocket
	default:
		return ResourceOther
	}
}

// EstimatedSize returns the heuristic byte cost of one resource of this type.
// The values are fixed per-type estimates used for the bytes-saved statistic,
// not measured quantities.
func (r ResourceType) EstimatedSize() uint64 {
	switch r {
	case ResourceScript:
		return 50_000
	case ResourceImage:
		return 30_000
	case ResourceStylesheet:
		return 20_000
	case ResourceFont:
		return 40_000
	case ResourceMedia:
		return 500_000
	case ResourceXHR:
		return 10_000
	default:
		return 15_000
	}
}
