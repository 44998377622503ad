package sim

// Shared builders for the sim package tests.

func testProduct(code string, maxQty int) *Product {
	return &Product{Code: code, MaxLocationQuantity: maxQty}
}

func testLocation(code string) *Location {
	return &Location{Code: code}
}

func stockedLocation(code string, p *Product, qty int) *Location {
	return &Location{Code: code, AssignedProduct: p, QuantityOnHand: qty}
}

func testLine(orderID, productCode string, qty int) *OrderLine {
	return &OrderLine{OrderID: orderID, ProductCode: productCode, Quantity: qty}
}

func testOrder(id string, lines ...*OrderLine) *Order {
	return &Order{ID: id, Lines: lines}
}
