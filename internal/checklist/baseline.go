package checklist

import "github.com/chatcont39-glitch/educheck/internal/models"

// baseline is the fixed expected inventory of the equipment cart. It is never
// mutated; working lists are always clones of it.
var baseline = []models.InventoryItem{
	{ID: "1", Name: "Case Completo (35 unid)", Category: models.CategoryComputers, ExpectedQuantity: 35, CurrentQuantity: 35, IsComplete: true},
	{ID: "2", Name: "Projetor", Category: models.CategoryPeripherals, ExpectedQuantity: 1, CurrentQuantity: 1, IsComplete: true},
	{ID: "3", Name: "Notebook", Category: models.CategoryPeripherals, ExpectedQuantity: 1, CurrentQuantity: 1, IsComplete: true},
	{ID: "4", Name: "Extensão", Category: models.CategoryPeripherals, ExpectedQuantity: 1, CurrentQuantity: 1, IsComplete: true},
	{ID: "5", Name: "Cabo HDMI", Category: models.CategoryCables, ExpectedQuantity: 1, CurrentQuantity: 1, IsComplete: true},
	{ID: "6", Name: "Adaptador HDMI", Category: models.CategoryCables, ExpectedQuantity: 1, CurrentQuantity: 1, IsComplete: true},
	{ID: "7", Name: "Cabo de Força", Category: models.CategoryCables, ExpectedQuantity: 1, CurrentQuantity: 1, IsComplete: true},
}

// Baseline returns a fresh copy of the expected inventory list, used to seed
// the form at initialization and after every successful submission.
func Baseline() []models.InventoryItem {
	items := make([]models.InventoryItem, len(baseline))
	copy(items, baseline)
	return items
}
