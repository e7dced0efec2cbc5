package utils

import (
	"log"
	"time"
)

// GetMarketTimeLocation returns the US market time zone.
func GetMarketTimeLocation() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// TimeNowMarket returns the current time in the US market time zone.
func TimeNowMarket() time.Time {
	return time.Now().In(GetMarketTimeLocation())
}

// PrettyDate formats a time for operator-facing messages.
func PrettyDate(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}
