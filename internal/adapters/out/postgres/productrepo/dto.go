package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name             string          `gorm:"not null"`
	Price            decimal.Decimal `gorm:"type:numeric(18,6);not null;check:chk_products_price,price > 0"`
	AllowFloatValues bool            `gorm:"not null;default:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:               aggregate.ID().Bytes(),
		OwnerID:          aggregate.Owner().Bytes(),
		Name:             aggregate.Name(),
		Price:            aggregate.Price().Decimal(),
		AllowFloatValues: aggregate.AllowFloatValues(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewAmount("price", dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, owner, dto.Name, price, dto.AllowFloatValues)
}
