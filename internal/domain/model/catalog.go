package model

// Product is a finished good in the manufacturing catalogue.
//
// @Description Product maintained by the manufacturing service
// @Example {"id": 1, "code": "P-001", "name": "Office chair", "value": 149.9}
type Product struct {
	// ID is assigned by the manufacturing service
	ID ID `json:"id,omitempty" swaggertype:"integer" example:"1"`
	// Code is the unique short product code
	Code string `json:"code" example:"P-001"`
	// Name is the display name
	Name string `json:"name" example:"Office chair"`
	// Value is the unit value of one product
	Value float64 `json:"value" example:"149.9"`
}

// RawMaterial is an input material kept in stock.
//
// @Description Raw material with its current stock level
// @Example {"id": 3, "code": "M-STEEL", "name": "Steel tube", "stockQuantity": 120.5}
type RawMaterial struct {
	ID            ID      `json:"id,omitempty" swaggertype:"integer" example:"3"`
	Code          string  `json:"code" example:"M-STEEL"`
	Name          string  `json:"name" example:"Steel tube"`
	StockQuantity float64 `json:"stockQuantity" example:"120.5"`
}
