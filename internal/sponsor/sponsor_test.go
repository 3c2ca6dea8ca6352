package sponsor_test

import (
	"errors"
	"testing"

	"github.com/alorle/nexum-portal/internal/sponsor"
)

func TestNewSponsor(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		spName    string
		link      string
		wantError error
	}{
		{name: "valid", id: "1", spName: "Pewex", link: "https://www.pewex-supermercati.it/"},
		{name: "missing id", id: " ", spName: "Pewex", link: "https://x", wantError: sponsor.ErrEmptyID},
		{name: "missing name", id: "1", spName: "", link: "https://x", wantError: sponsor.ErrEmptyName},
		{name: "missing link", id: "1", spName: "Pewex", link: "\t", wantError: sponsor.ErrEmptyLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sponsor.NewSponsor(tt.id, tt.spName, " /sponsors/PEWEX.svg ", tt.link, "from-green-600/30 to-emerald-600/30")
			if !errors.Is(err, tt.wantError) {
				t.Fatalf("NewSponsor() error = %v, want %v", err, tt.wantError)
			}
			if tt.wantError != nil {
				return
			}
			if s.Logo() != "/sponsors/PEWEX.svg" {
				t.Errorf("Logo() = %q, want trimmed path", s.Logo())
			}
			if s.Name() != tt.spName || s.Link() != tt.link {
				t.Errorf("unexpected sponsor %+v", s)
			}
		})
	}
}
