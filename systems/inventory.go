package systems

import (
	"log"

	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInventory runs the demo inventory actions on key presses:
// open adds the demo item, drop removes one.
func UpdateInventory(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	open := GetAction(input, cfg.ActionOpenInventory).JustPressed
	drop := GetAction(input, cfg.ActionDropItem).JustPressed
	if !open && !drop {
		return
	}

	components.Inventory.Each(ecs.World, func(e *donburi.Entry) {
		inv := components.Inventory.Get(e)
		if open {
			openInventory(inv)
		}
		if drop {
			inv.Remove(cfg.Inventory.DemoItem)
		}
	})
}

func openInventory(inv *components.InventoryData) {
	log.Println("Opening inventory...")
	inv.Add(cfg.Inventory.DemoItem)
}
