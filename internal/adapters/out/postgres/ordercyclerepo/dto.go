// Package ordercyclerepo provides data transfer objects and mapping functions
// for order cycle persistence. Cycles are always read together with their
// coordinator enterprise, which the visibility policy needs.
package ordercyclerepo

import (
	"time"

	"marketplace/internal/adapters/out/postgres/enterpriserepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ordercycle"

	"github.com/google/uuid"
)

// OrderCycleDTO represents the database structure for persisting order cycle
// aggregates. The coordinator association is populated on reads only; writes
// store the foreign key and never touch the enterprises table.
type OrderCycleDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	CoordinatorID uuid.UUID                       `gorm:"type:uuid;index"`
	Coordinator   *enterpriserepo.EnterpriseDTO   `gorm:"foreignKey:CoordinatorID"`
	OpensAt       time.Time
	ClosesAt      time.Time
	Status        string `gorm:"index"`
}

// TableName specifies the database table name for order cycle entities.
func (OrderCycleDTO) TableName() string {
	return "order_cycles"
}

// FromDomain converts an order cycle domain aggregate to its database
// representation. Exported because the order mapping embeds it.
func FromDomain(aggregate *ordercycle.OrderCycle) OrderCycleDTO {
	return OrderCycleDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		CoordinatorID: aggregate.Coordinator().ID().Bytes(),
		OpensAt:       aggregate.OpensAt(),
		ClosesAt:      aggregate.ClosesAt(),
		Status:        aggregate.Status().String(),
	}
}

// ToDomain converts a database DTO to an order cycle domain aggregate.
// The coordinator association must be populated.
func ToDomain(dto OrderCycleDTO) (*ordercycle.OrderCycle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coordinator, err := enterpriserepo.ToDomain(*dto.Coordinator)
	if err != nil {
		return nil, err
	}

	return ordercycle.RestoreOrderCycle(id, dto.Name, coordinator,
		dto.OpensAt, dto.ClosesAt, ordercycle.Status(dto.Status))
}
