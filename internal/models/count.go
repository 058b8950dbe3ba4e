package models

import "time"

// CountResult is the outcome of one purchase-count computation. Immutable
// once stored in the cache; cached hits return it verbatim, original
// LastUpdated included.
type CountResult struct {
	Count       int       `json:"count"`
	ProductID   string    `json:"productId"`
	Period      Period    `json:"period"`
	LastUpdated time.Time `json:"lastUpdated"`
	IsMock      bool      `json:"isMock,omitempty"`
}
