package sim

import "fmt"

// Product describes a stock item handled in the warehouse.
// Products are loaded once at startup and never change during a run.
type Product struct {
	// Code uniquely identifies the product.
	Code string
	// MaxLocationQuantity is the maximum number of pieces a single
	// location may hold for this product.
	MaxLocationQuantity int
	// FastMover flags high-turnover products in the input data.
	// Informational only; no core algorithm reads it.
	FastMover bool
}

func (p *Product) String() string {
	return fmt.Sprintf("Product %s (max %d/location)", p.Code, p.MaxLocationQuantity)
}
