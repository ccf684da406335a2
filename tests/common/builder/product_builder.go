//go:build unit || e2e

package builder

import (
	"dive-booking-gateway/internal/domain/booking"
)

type ProductBuilder struct {
	product booking.Product
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		product: booking.Product{
			ID:           4242,
			Name:         "Two Tank Reef Dive",
			Price:        "",
			RegularPrice: "",
		},
	}
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.product.Price = price
	return b
}

func (b *ProductBuilder) WithRegularPrice(price string) *ProductBuilder {
	b.product.RegularPrice = price
	return b
}

func (b *ProductBuilder) WithMeta(key string, value any) *ProductBuilder {
	b.product.MetaData = append(b.product.MetaData, booking.ProductMeta{Key: key, Value: value})
	return b
}

func (b *ProductBuilder) Build() *booking.Product {
	p := b.product
	p.MetaData = append([]booking.ProductMeta(nil), b.product.MetaData...)
	return &p
}
