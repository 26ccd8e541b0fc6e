package request

import (
	"seapass-bff/internal/domain/settings"
)

type UpdateSettingsRequest struct {
	DarkMode           bool   `json:"darkMode"`
	FontSize           string `json:"fontSize"`
	Animations         bool   `json:"animations"`
	PushNotifications  bool   `json:"pushNotifications"`
	ReservationAlerts  bool   `json:"reservationAlerts"`
	SpecialOffers      bool   `json:"specialOffers"`
	EmailNotifications bool   `json:"emailNotifications"`
	BiometricLogin     bool   `json:"biometricLogin"`
	TwoFactorAuth      bool   `json:"twoFactorAuth"`
	PreferredLanguage  string `json:"preferredLanguage"`
	DefaultCurrency    string `json:"defaultCurrency"`
	RoomPreferences    string `json:"roomPreferences"`
}

func (r UpdateSettingsRequest) ToDomain() settings.Preferences {
	return settings.Preferences{
		DarkMode:           r.DarkMode,
		FontSize:           settings.FontSize(r.FontSize),
		Animations:         r.Animations,
		PushNotifications:  r.PushNotifications,
		ReservationAlerts:  r.ReservationAlerts,
		SpecialOffers:      r.SpecialOffers,
		EmailNotifications: r.EmailNotifications,
		BiometricLogin:     r.BiometricLogin,
		TwoFactorAuth:      r.TwoFactorAuth,
		PreferredLanguage:  r.PreferredLanguage,
		DefaultCurrency:    r.DefaultCurrency,
		RoomPreferences:    settings.RoomPreference(r.RoomPreferences),
	}
}
