package domain

import "testing"

func TestParseResourceType(t *testing.T) {
	tests := []struct {
		in   string
		want ResourceType
	}{
		{"script", ResourceScript},
		{"image", ResourceImage},
		{"img", ResourceImage},
		{"stylesheet", ResourceStylesheet},
		{"css", ResourceStylesheet},
		{"font", ResourceFont},
		{"media", ResourceMedia},
		{"video", ResourceMedia},
		{"audio", ResourceMedia},
		{"xmlhttprequest", ResourceXHR},
		{"xhr", ResourceXHR},
		{"fetch", ResourceXHR},
		{"subdocument", ResourceSubdocument},
		{"iframe", ResourceSubdocument},
		{"websocket", ResourceWebSocket},
		{"ws", ResourceWebSocket},
		{"  Script ", ResourceScript},
		{"IMAGE", ResourceImage},
		{"banner", ResourceOther},
		{"", ResourceOther},
	}

	for _, tt := range tests {
		if got := ParseResourceType(tt.in); got != tt.want {
			t.Errorf("ParseResourceType(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestResourceType_EstimatedSize(t *testing.T) {
	tests := []struct {
		rt   ResourceType
		want uint64
	}{
		{ResourceScript, 50_000},
		{ResourceImage, 30_000},
		{ResourceStylesheet, 20_000},
		{ResourceFont, 40_000},
		{ResourceMedia, 500_000},
		{ResourceXHR, 10_000},
		{ResourceSubdocument, 15_000},
		{ResourceWebSocket, 15_000},
		{ResourceOther, 15_000},
	}

	for _, tt := range tests {
		if got := tt.rt.EstimatedSize(); got != tt.want {
			t.Errorf("%s.EstimatedSize() = %d; want %d", tt.rt, got, tt.want)
		}
	}
}

func TestResourceType_String_RoundTrip(t *testing.T) {
	types := []ResourceType{
		ResourceOther, ResourceScript, ResourceImage, ResourceStylesheet,
		ResourceFont, ResourceMedia, ResourceXHR, ResourceSubdocument,
		ResourceWebSocket,
	}
	for _, rt := range types {
		if got := ParseResourceType(rt.String()); got != rt {
			t.Errorf("ParseResourceType(%q) = %v; want %v", rt.String(), got, rt)
		}
	}
}
