package model

// InventoryItem is a consumable kept in stock.
type InventoryItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

func (i InventoryItem) RecordID() int { return i.ID }
