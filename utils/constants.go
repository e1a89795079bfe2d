// File: utils/constants.go
package utils

import "time"

// HoldKeyPrefix is the prefix used for Redis car hold keys.
const HoldKeyPrefix = "hold:"

// AlertKeyPrefix is the prefix used for Redis renter alert feed keys.
const AlertKeyPrefix = "alerts:"

// AlertFeedTTL is the time-to-live for a renter's alert feed.
const AlertFeedTTL = 24 * time.Hour

// AlertFeedMax caps how many alerts are kept per renter.
const AlertFeedMax = 50
