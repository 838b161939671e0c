package entity

import (
	"sort"

	"github.com/samdwyer/crownquest/internal/gamedata"
)

// UnarmedPower is the weapon power used when nothing is equipped.
const UnarmedPower = 3

// Item is one stack in the inventory.
type Item struct {
	Name        string            `json:"name"`
	Kind        gamedata.ItemKind `json:"kind"`
	Effect      gamedata.Effect   `json:"effect,omitempty"`
	Power       int               `json:"power"`
	MagicPoints int               `json:"magicPoints"`
	Quantity    int               `json:"quantity"`
}

// Inventory maps item and spell names to their stacks. It belongs to the save
// and outlives any battle.
type Inventory struct {
	Items          map[string]*Item `json:"items"`
	EquippedWeapon string           `json:"equippedWeapon"`
	EquippedArmor  []string         `json:"equippedArmor"`
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{Items: make(map[string]*Item)}
}

// Add puts qty of the item described by def into the inventory.
func (inv *Inventory) Add(def gamedata.ItemDef, qty int) {
	if qty <= 0 {
		return
	}
	if inv.Items == nil {
		inv.Items = make(map[string]*Item)
	}
	if item, ok := inv.Items[def.Name]; ok {
		item.Quantity += qty
		return
	}
	inv.Items[def.Name] = &Item{
		Name:        def.Name,
		Kind:        def.Kind,
		Effect:      def.Effect,
		Power:       def.Power,
		MagicPoints: def.MagicPoints,
		Quantity:    qty,
	}
}

// Get returns the stack for name.
func (inv *Inventory) Get(name string) (*Item, bool) {
	item, ok := inv.Items[name]
	return item, ok
}

// Quantity returns how many of name are held (0 if absent).
func (inv *Inventory) Quantity(name string) int {
	if item, ok := inv.Items[name]; ok {
		return item.Quantity
	}
	return 0
}

// Consume uses one of name. The entry is removed when its quantity reaches
// zero. Returns false if nothing was held.
func (inv *Inventory) Consume(name string) bool {
	item, ok := inv.Items[name]
	if !ok || item.Quantity <= 0 {
		return false
	}
	item.Quantity--
	if item.Quantity == 0 {
		delete(inv.Items, name)
	}
	return true
}

// WeaponPower returns the power of the equipped weapon.
func (inv *Inventory) WeaponPower() int {
	if item, ok := inv.Items[inv.EquippedWeapon]; ok {
		return item.Power
	}
	return UnarmedPower
}

// ArmorPower returns the summed power of all equipped armor that is still held.
func (inv *Inventory) ArmorPower() int {
	total := 0
	for _, name := range inv.EquippedArmor {
		if item, ok := inv.Items[name]; ok {
			total += item.Power
		}
	}
	return total
}

// menuOrder fixes where the well-known consumables appear in battle menus.
var menuOrder = map[string]int{
	gamedata.HealingPotion: 0,
	gamedata.EtherPotion:   1,
	gamedata.FireBlast:     2,
	gamedata.Cure:          3,
}

// OfKind returns the held stacks of the given kind in menu order: the
// well-known items first, then the rest alphabetically.
func (inv *Inventory) OfKind(kind gamedata.ItemKind) []*Item {
	var items []*Item
	for _, item := range inv.Items {
		if item.Kind == kind && item.Quantity > 0 {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		oi, iKnown := menuOrder[items[i].Name]
		oj, jKnown := menuOrder[items[j].Name]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown != jKnown:
			return iKnown
		default:
			return items[i].Name < items[j].Name
		}
	})
	return items
}
