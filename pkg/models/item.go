package models

// ItemType is the closed set of item categories.
type ItemType string

// Item type values.
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeSpawnPoint ItemType = "spawn_point"
	ItemTypeMisc       ItemType = "misc"
)

// ItemStats carries the per-type stat contribution. Damage applies to weapons,
// Defense to armor, Healing to consumables.
type ItemStats struct {
	Damage  int `json:"damage,omitempty"`
	Defense int `json:"defense,omitempty"`
	Healing int `json:"healing,omitempty"`
}

// Item is an object in the world. Exactly one of RoomID/CharacterID is set;
// IsEquipped requires CharacterID.
type Item struct {
	ID          string
	Name        string
	Description string
	Type        ItemType
	Stats       ItemStats
	RoomID      string
	CharacterID string
	IsEquipped  bool
}

// Takeable reports whether the item can be picked up. Spawn points are fixed
// world features.
func (i *Item) Takeable() bool {
	return i.Type != ItemTypeSpawnPoint
}

// Equippable reports whether the item occupies an equipment slot.
func (i *Item) Equippable() bool {
	return i.Type == ItemTypeWeapon || i.Type == ItemTypeArmor
}
