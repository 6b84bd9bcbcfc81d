// Where: internal/branding/theme.go
// What: Portal theme descriptor model and defaults.
// Why: Model the Cloud Director branding payload as typed data.
package branding

// DefaultPortalName is the portal name Cloud Director ships with.
const DefaultPortalName = "vCloud Director"

// Theme describes the portal branding payload sent to
// PUT /cloudapi/branding.
type Theme struct {
	PortalName    string        `json:"portalName"`
	PortalColor   string        `json:"portalColor"`
	SelectedTheme SelectedTheme `json:"selectedTheme"`
	CustomLinks   []CustomLink  `json:"customLinks"`
}

// SelectedTheme names the UI theme the portal renders with.
type SelectedTheme struct {
	ThemeType string `json:"themeType"`
	Name      string `json:"name"`
}

// CustomLink overrides one of the portal's navigation menu entries.
// A nil URL clears the entry's target.
type CustomLink struct {
	Name         string  `json:"name"`
	MenuItemType string  `json:"menuItemType"`
	URL          *string `json:"url"`
}

// DefaultTheme returns the stock descriptor: default built-in theme and the
// help/about/vmrc menu entries overridden with empty targets.
func DefaultTheme() Theme {
	return Theme{
		PortalName:    DefaultPortalName,
		SelectedTheme: SelectedTheme{ThemeType: "BUILT_IN", Name: "Default"},
		CustomLinks: []CustomLink{
			{Name: "help", MenuItemType: "override"},
			{Name: "about", MenuItemType: "override"},
			{Name: "vmrc", MenuItemType: "override"},
		},
	}
}
