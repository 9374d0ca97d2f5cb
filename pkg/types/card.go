package types

import "time"

// Card rarity tiers observed in fetched set lists. Only the four lowest
// tiers qualify for generated reverse-holo variants; higher tiers
// (ultra, secret, and promo printings) never do.
// Implements: prd003-set-placement R2.
const (
	RarityCommon   = "Common"
	RarityUncommon = "Uncommon"
	RarityRare     = "Rare"
	RarityRareHolo = "Rare Holo"
)

// Card is one record from a fetched set list. The layout core never
// fetches cards itself; a CardProvider supplies them (prd006-collaborators R1).
type Card struct {
	ID             string // provider-assigned card ID, e.g. "swsh1-25"
	Name           string
	Rarity         string
	SetID          string
	SequenceNumber int // position within the set's official ordering
}

// CardEntry is a card placed (or planned) at a binder position.
// Variant entries are generated, not fetched: IsVariant is set and
// OriginalID points back to the source card.
// Implements: prd001-binder-core R3.
type CardEntry struct {
	Key        string    // unique key within the binder; variants carry a suffix
	CardID     string    // underlying card reference
	Name       string
	Rarity     string
	SetID      string
	IsVariant  bool
	OriginalID string // set only on generated variants
	InsertedAt time.Time
}
