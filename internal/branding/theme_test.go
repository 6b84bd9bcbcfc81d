package branding

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultThemeMarshalsNullLinkTargets(t *testing.T) {
	theme := DefaultTheme()
	theme.PortalColor = "#1A2B3C"

	payload, err := json.Marshal(theme)
	if err != nil {
		t.Fatalf("marshal theme: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal theme: %v", err)
	}

	if decoded["portalName"] != "vCloud Director" {
		t.Errorf("portalName = %v", decoded["portalName"])
	}
	if decoded["portalColor"] != "#1A2B3C" {
		t.Errorf("portalColor = %v", decoded["portalColor"])
	}

	selected, ok := decoded["selectedTheme"].(map[string]any)
	if !ok {
		t.Fatalf("selectedTheme missing: %s", payload)
	}
	if selected["themeType"] != "BUILT_IN" || selected["name"] != "Default" {
		t.Errorf("selectedTheme = %v", selected)
	}

	links, ok := decoded["customLinks"].([]any)
	if !ok || len(links) != 3 {
		t.Fatalf("customLinks = %v", decoded["customLinks"])
	}
	wantNames := []string{"help", "about", "vmrc"}
	for i, raw := range links {
		link := raw.(map[string]any)
		if link["name"] != wantNames[i] {
			t.Errorf("link %d name = %v, want %s", i, link["name"], wantNames[i])
		}
		if link["menuItemType"] != "override" {
			t.Errorf("link %d menuItemType = %v", i, link["menuItemType"])
		}
		if url, present := link["url"]; !present || url != nil {
			t.Errorf("link %d url = %v, want explicit null", i, url)
		}
	}

	// The url key must be serialized, not omitted.
	if !strings.Contains(string(payload), `"url":null`) {
		t.Errorf("payload lacks null url keys: %s", payload)
	}
}
