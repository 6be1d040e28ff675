package game

import (
	"github.com/elliotbonneville/silt/pkg/models"
)

// recomputeStats derives effective attack and defense from base values plus
// equipped gear. Called after every equip/unequip and on character load so
// persisted stats can never drift from the equipment that justifies them.
func recomputeStats(c *models.Character, inventory []*models.Item) {
	attack := models.BaseAttack
	defense := models.BaseDefense
	for _, item := range inventory {
		if !item.IsEquipped {
			continue
		}
		switch item.Type {
		case models.ItemTypeWeapon:
			attack += item.Stats.Damage
		case models.ItemTypeArmor:
			defense += item.Stats.Defense
		}
	}
	c.Attack = attack
	c.Defense = defense
}
