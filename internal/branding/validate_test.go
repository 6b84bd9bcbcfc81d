package branding

import "testing"

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare hex gets prefix", input: "1A2B3C", want: "#1A2B3C"},
		{name: "prefixed hex unchanged", input: "#1A2B3C", want: "#1A2B3C"},
		{name: "surrounding space trimmed", input: "  1A2B3C ", want: "#1A2B3C"},
		{name: "too short", input: "FFF", wantErr: true},
		{name: "too long", input: "#1A2B3C4D", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		// Length is the contract; character set is left to the API.
		{name: "seven chars non-hex accepted", input: "zzzzzz", want: "#zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeColor(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeColor(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizeColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateLogoPath(t *testing.T) {
	valid := []string{
		"logo.png",
		"logo.PNG",
		"logo.jpeg",
		"logo.jpg",
		"/opt/branding/Logo.JpG",
	}
	for _, path := range valid {
		if err := ValidateLogoPath(path); err != nil {
			t.Errorf("ValidateLogoPath(%q) = %v, want nil", path, err)
		}
	}

	invalid := []string{
		"logo.gif",
		"logo.svg",
		"logo",
		"logo.png.txt",
		"",
	}
	for _, path := range invalid {
		if err := ValidateLogoPath(path); err == nil {
			t.Errorf("ValidateLogoPath(%q) = nil, want error", path)
		}
	}
}

func TestLogoContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "logo.png", want: "image/png"},
		{path: "logo.PNG", want: "image/png"},
		{path: "logo.jpeg", want: "image/jpeg"},
		{path: "logo.jpg", want: "image/jpeg"},
	}
	for _, tt := range tests {
		if got := LogoContentType(tt.path); got != tt.want {
			t.Errorf("LogoContentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
