package models

// Weather is the reduced forecast returned to clients.
type Weather struct {
	Description string  `json:"description"` // Human-readable condition
	Temp        float64 `json:"temp"`        // Temperature in Celsius
	WillRain    bool    `json:"willRain"`    // Rain, drizzle or heavy clouds expected
}
