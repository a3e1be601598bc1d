package adsproduct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsKnownEnumValues(t *testing.T) {
	a := AdsProduct{
		ProductID: "PRDX",
		SponsorTypes: []SponsorType{
			{Type: SearchAds, PriorityLevel: PriorityHigh},
			{Type: HomeAds, PriorityLevel: PriorityMedium},
			{Type: CategoryAds, PriorityLevel: PriorityLow},
		},
	}
	assert.NoError(t, a.Validate())
}

func TestValidateRejectsByMembershipNotTruthiness(t *testing.T) {
	// non-empty but unknown values are still rejected
	a := AdsProduct{
		ProductID:    "PRDX",
		SponsorTypes: []SponsorType{{Type: "bannerAds", PriorityLevel: PriorityHigh}},
	}
	assert.ErrorIs(t, a.Validate(), ErrInvalidSponsorType)

	a.SponsorTypes = []SponsorType{{Type: SearchAds, PriorityLevel: "urgent"}}
	assert.ErrorIs(t, a.Validate(), ErrInvalidPriorityLevel)
}

func TestValidateRequiresAtLeastOneSlot(t *testing.T) {
	a := AdsProduct{ProductID: "PRDX"}
	assert.ErrorIs(t, a.Validate(), ErrNoSponsorTypes)
}
