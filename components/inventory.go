package components

import (
	"log"

	"github.com/yohamta/donburi"
)

// InventoryData is an insertion-ordered list of item identifiers.
// Duplicates are allowed.
type InventoryData struct {
	Items []string
}

// Add appends item. It always succeeds.
func (inv *InventoryData) Add(item string) bool {
	inv.Items = append(inv.Items, item)
	log.Printf("Added item: %s", item)
	return true
}

// Remove deletes the first occurrence of item and reports whether one was found.
func (inv *InventoryData) Remove(item string) bool {
	for i, it := range inv.Items {
		if it == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			log.Printf("Removed item: %s", item)
			return true
		}
	}
	log.Printf("Item %s not found in inventory.", item)
	return false
}

// Count returns how many copies of item are held.
func (inv *InventoryData) Count(item string) int {
	n := 0
	for _, it := range inv.Items {
		if it == item {
			n++
		}
	}
	return n
}

func (inv *InventoryData) Len() int {
	return len(inv.Items)
}

var Inventory = donburi.NewComponentType[InventoryData]()
