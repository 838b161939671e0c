package gamedata

// ItemKind classifies inventory entries.
type ItemKind string

const (
	KindPotion ItemKind = "potion"
	KindSpell  ItemKind = "spell"
	KindWeapon ItemKind = "weapon"
	KindArmor  ItemKind = "armor"
)

// Effect describes what a consumable or spell does when used in battle.
type Effect string

const (
	EffectNone  Effect = ""
	EffectHeal  Effect = "heal"  // Restores health
	EffectMagic Effect = "magic" // Restores magic points
	EffectArea  Effect = "area"  // Damages every live enemy
)

// Names of the items the battle menus know how to use.
const (
	HealingPotion = "Healing Potion"
	EtherPotion   = "Ether Potion"
	Cure          = "Cure"
	FireBlast     = "Fire Blast"
)

// ItemDef defines an item or spell loaded from JSON.
type ItemDef struct {
	Name        string   `json:"name"`
	Kind        ItemKind `json:"kind"`
	Effect      Effect   `json:"effect,omitempty"`
	Power       int      `json:"power"`
	MagicPoints int      `json:"magicPoints"` // Casting cost for spells
	Description string   `json:"description"`
}

// Usable returns true if the item can be chosen from a battle menu.
func (d *ItemDef) Usable() bool {
	return d.Kind == KindPotion || d.Kind == KindSpell
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item and spell definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
