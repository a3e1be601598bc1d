package adsproduct

import (
	"errors"
	"time"
)

// AdsProduct marks a catalog product as sponsored. Documents are keyed by
// the productId they promote.
type AdsProduct struct {
	ProductID    string        `json:"productId"`
	SponsorTypes []SponsorType `json:"sponsorTypes"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt,omitempty"`
}

// SponsorType is one placement slot plus its priority within the slot.
type SponsorType struct {
	Type          string `json:"type"`
	PriorityLevel string `json:"priorityLevel"`
}

// Placement slots.
const (
	SearchAds   = "searchAds"
	HomeAds     = "homeAds"
	CategoryAds = "categoryAds"
)

// Priority levels.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

var sponsorTypeSet = map[string]struct{}{
	SearchAds:   {},
	HomeAds:     {},
	CategoryAds: {},
}

var priorityLevelSet = map[string]struct{}{
	PriorityHigh:   {},
	PriorityMedium: {},
	PriorityLow:    {},
}

var (
	ErrInvalidSponsorType   = errors.New("adsproduct: invalid sponsor type")
	ErrInvalidPriorityLevel = errors.New("adsproduct: invalid priority level")
	ErrNoSponsorTypes       = errors.New("adsproduct: at least one sponsor type is required")
)

// Validate checks enum membership against the value sets, not truthiness:
// an unknown placement or priority is rejected even when non-empty.
func (a AdsProduct) Validate() error {
	if len(a.SponsorTypes) == 0 {
		return ErrNoSponsorTypes
	}
	for _, st := range a.SponsorTypes {
		if _, ok := sponsorTypeSet[st.Type]; !ok {
			return ErrInvalidSponsorType
		}
		if _, ok := priorityLevelSet[st.PriorityLevel]; !ok {
			return ErrInvalidPriorityLevel
		}
	}
	return nil
}
