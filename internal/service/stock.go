package service

import (
	"context"
	"fmt"

	"clinicrecords/internal/model"
	"clinicrecords/internal/repository"
)

// StockService adjusts equipment availability and inventory quantities.
type StockService interface {
	// AdjustEquipment adds delta to the available count; a negative delta checks units out.
	AdjustEquipment(ctx context.Context, id, delta int) (*model.Equipment, error)

	// AdjustInventory adds delta to the item quantity; a negative delta consumes stock.
	AdjustInventory(ctx context.Context, id, delta int) (*model.InventoryItem, error)
}

type stockService struct {
	equipment repository.EquipmentRepository
	inventory repository.InventoryRepository
}

func NewStockService(equipment repository.EquipmentRepository, inventory repository.InventoryRepository) StockService {
	return &stockService{equipment: equipment, inventory: inventory}
}

func (s *stockService) AdjustEquipment(ctx context.Context, id, delta int) (*model.Equipment, error) {
	e, err := s.equipment.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.AvailableCount+delta < 0 {
		return nil, fmt.Errorf("equipment %d has %d available: %w", id, e.AvailableCount, ErrInsufficientStock)
	}
	e.AvailableCount += delta
	if err := s.equipment.Update(ctx, *e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *stockService) AdjustInventory(ctx context.Context, id, delta int) (*model.InventoryItem, error) {
	it, err := s.inventory.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.Quantity+delta < 0 {
		return nil, fmt.Errorf("inventory item %d has %d in stock: %w", id, it.Quantity, ErrInsufficientStock)
	}
	it.Quantity += delta
	if err := s.inventory.Update(ctx, *it); err != nil {
		return nil, err
	}
	return it, nil
}
