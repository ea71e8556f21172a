// Package enterpriserepo provides data transfer objects and mapping functions
// for enterprise persistence. It implements the repository pattern for the
// enterprise domain aggregate, converting between domain entities and their
// database representation.
package enterpriserepo

import (
	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EnterpriseDTO represents the database structure for persisting enterprise
// aggregates. The owner column is indexed because every authorized request
// resolves the caller's owned enterprises.
type EnterpriseDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	IsSupplier    bool
	IsDistributor bool
	IsCoordinator bool
}

// TableName specifies the database table name for enterprise entities.
func (EnterpriseDTO) TableName() string {
	return "enterprises"
}

// FromDomain converts an enterprise domain aggregate to its database
// representation. Exported because order and cycle mappings embed it.
func FromDomain(aggregate *enterprise.Enterprise) EnterpriseDTO {
	roles := aggregate.Roles()
	return EnterpriseDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		IsSupplier:    roles.Supplier,
		IsDistributor: roles.Distributor,
		IsCoordinator: roles.Coordinator,
	}
}

// ToDomain converts a database DTO to an enterprise domain aggregate.
func ToDomain(dto EnterpriseDTO) (*enterprise.Enterprise, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return enterprise.NewEnterprise(id, dto.Name, ownerID, enterprise.Roles{
		Supplier:    dto.IsSupplier,
		Distributor: dto.IsDistributor,
		Coordinator: dto.IsCoordinator,
	})
}
