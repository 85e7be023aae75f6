package entities

// ItemKind is the variant of an item
type ItemKind int

// Item kinds
const (
	ItemKey ItemKind = iota
	ItemWeapon
	ItemArmor
	ItemPotion
)

// String returns the name of the item kind
func (k ItemKind) String() string {
	switch k {
	case ItemKey:
		return "Key"
	case ItemWeapon:
		return "Weapon"
	case ItemArmor:
		return "Armor"
	case ItemPotion:
		return "Potion"
	default:
		return "Unknown"
	}
}

// Item is a collectible owned by exactly one room
type Item struct {
	ID   int
	Kind ItemKind

	// DoorID is the door a key opens. It is a placeholder: keys are universal
	// and this is always 0. Only meaningful when Kind is ItemKey.
	DoorID int

	Description string
}

// NewItem creates a non-key item
func NewItem(id int, kind ItemKind, description string) Item {
	return Item{ID: id, Kind: kind, Description: description}
}

// NewKey creates a key for the given door
func NewKey(id, doorID int, description string) Item {
	return Item{ID: id, Kind: ItemKey, DoorID: doorID, Description: description}
}

// IsKey reports whether the item is a key
func (i Item) IsKey() bool {
	return i.Kind == ItemKey
}
