package types

// Record is one input row of a processing batch: an opaque identifier and
// the JSON text of a candidate numeric table.
type Record struct {
	ID   string `json:"id"`
	JSON string `json:"json"`
}

// Result is the outcome of processing one Record. JSON holds the compact
// re-encoded rotated table, or "[]" whenever IsValid is false. Invalid
// records never carry their original payload through to the output.
type Result struct {
	ID      string `json:"id"`
	JSON    string `json:"json"`
	IsValid bool   `json:"is_valid"`
}
