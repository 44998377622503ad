// Package trace provides per-tick decision-trace recording for replay
// analysis. This package has no dependencies on sim/ -- it stores pure data
// types.
package trace

// DecisionRecord captures one tick's replenishment decision, either an
// accepted action or an idle tick.
type DecisionRecord struct {
	Tick         int    `json:"tick"`
	Idle         bool   `json:"idle"`
	ActionID     int    `json:"action_id,omitempty"`
	ProductCode  string `json:"product_code,omitempty"`
	LocationCode string `json:"location_code,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
}

// PickRecord captures a single order picked from stock.
type PickRecord struct {
	Tick    int    `json:"tick"`
	OrderID string `json:"order_id"`
	Lines   int    `json:"lines"`
	Units   int    `json:"units"`
}
