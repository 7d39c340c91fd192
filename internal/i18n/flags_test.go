package i18n

import (
	"reflect"
	"testing"
)

func TestCountryForTag(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"es-ES", "ES"},
		{"es-mx", "MX"},
		{"en", "US"},
		{"ja", "JP"},
		{"fi", "FI"},
	}
	for _, tc := range cases {
		if got := CountryForTag(tc.tag); got != tc.want {
			t.Errorf("CountryForTag(%q) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestTagForCountry_PrefersExplicitRegion(t *testing.T) {
	available := []string{"en", "es-ES", "es-MX"}

	if got := TagForCountry("MX", available); got != "es-MX" {
		t.Errorf("explicit region: got %q", got)
	}
	if got := TagForCountry("ES", available); got != "es-ES" {
		t.Errorf("explicit region: got %q", got)
	}
}

func TestTagForCountry_FallsBackToConventionalLanguage(t *testing.T) {
	available := []string{"en", "es", "fr"}

	if got := TagForCountry("MX", available); got != "es" {
		t.Errorf("MX resolves to spanish: got %q", got)
	}
	if got := TagForCountry("GB", available); got != "en" {
		t.Errorf("GB resolves to english: got %q", got)
	}
}

func TestTagForCountry_UnmappableTokenFallsBackToFirst(t *testing.T) {
	available := []string{"de", "fr"}

	if got := TagForCountry("ZZ", available); got != "de" {
		t.Errorf("expected first available tag, got %q", got)
	}
	if got := TagForCountry("ZZ", nil); got != "" {
		t.Errorf("empty available yields empty tag, got %q", got)
	}
}

func TestTagForCountry_RoundTripsThroughFlag(t *testing.T) {
	available := []string{"en", "es-ES", "fr", "ja"}
	for _, tag := range available {
		country := CountryForTag(tag)
		if got := TagForCountry(country, available); got != tag {
			t.Errorf("round trip %q -> %q -> %q", tag, country, got)
		}
	}
}

func TestCountries_DedupsPreservingOrder(t *testing.T) {
	got := Countries([]string{"es-ES", "ca-ES", "fr", "en"})
	want := []string{"ES", "FR", "US"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMatchDisplayLocale(t *testing.T) {
	available := []string{"en", "es", "fr"}

	cases := []struct {
		name      string
		requested string
		want      string
	}{
		{"exact member", "es", "es"},
		{"case-insensitive member", "ES", "es"},
		{"region narrows to base", "es-MX", "es"},
		{"unavailable language falls to first", "ja", "en"},
		{"garbage falls to first", "!!", "en"},
		{"empty falls to first", "", "en"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchDisplayLocale(tc.requested, available); got != tc.want {
				t.Errorf("MatchDisplayLocale(%q) = %q, want %q", tc.requested, got, tc.want)
			}
		})
	}
}
