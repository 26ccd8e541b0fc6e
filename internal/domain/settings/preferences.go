// Package settings models the user preference panel as an explicit
// configuration object with a closed set of recognized options.
package settings

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

func (f FontSize) IsValid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	default:
		return false
	}
}

type RoomPreference string

const (
	RoomAny        RoomPreference = "any"
	RoomHighFloor  RoomPreference = "high_floor"
	RoomNearElev   RoomPreference = "near_elevator"
	RoomQuietZone  RoomPreference = "quiet_zone"
	RoomAccessible RoomPreference = "accessible"
)

func (r RoomPreference) IsValid() bool {
	switch r {
	case RoomAny, RoomHighFloor, RoomNearElev, RoomQuietZone, RoomAccessible:
		return true
	default:
		return false
	}
}

type Preferences struct {
	DarkMode           bool           `json:"darkMode"`
	FontSize           FontSize       `json:"fontSize"`
	Animations         bool           `json:"animations"`
	PushNotifications  bool           `json:"pushNotifications"`
	ReservationAlerts  bool           `json:"reservationAlerts"`
	SpecialOffers      bool           `json:"specialOffers"`
	EmailNotifications bool           `json:"emailNotifications"`
	BiometricLogin     bool           `json:"biometricLogin"`
	TwoFactorAuth      bool           `json:"twoFactorAuth"`
	PreferredLanguage  string         `json:"preferredLanguage"`
	DefaultCurrency    string         `json:"defaultCurrency"`
	RoomPreferences    RoomPreference `json:"roomPreferences"`
}

func Defaults() Preferences {
	return Preferences{
		FontSize:           FontMedium,
		Animations:         true,
		PushNotifications:  true,
		ReservationAlerts:  true,
		EmailNotifications: true,
		PreferredLanguage:  "pt",
		DefaultCurrency:    "BRL",
		RoomPreferences:    RoomAny,
	}
}

var recognizedLanguages = map[string]struct{}{
	"pt": {}, "en": {}, "es": {},
}

var recognizedCurrencies = map[string]struct{}{
	"BRL": {}, "USD": {}, "EUR": {},
}

// Normalize replaces unrecognized enum values with their defaults.
// Boolean toggles pass through untouched; an unknown option can only
// come from a stale or hand-edited blob and falling back beats failing
// the whole settings load.
func (p Preferences) Normalize() Preferences {
	defaults := Defaults()
	if !p.FontSize.IsValid() {
		p.FontSize = defaults.FontSize
	}
	if !p.RoomPreferences.IsValid() {
		p.RoomPreferences = defaults.RoomPreferences
	}
	if _, ok := recognizedLanguages[p.PreferredLanguage]; !ok {
		p.PreferredLanguage = defaults.PreferredLanguage
	}
	if _, ok := recognizedCurrencies[p.DefaultCurrency]; !ok {
		p.DefaultCurrency = defaults.DefaultCurrency
	}
	return p
}
