package dto

// StateResponse is the full entity tree.
type StateResponse struct {
	Staff   []StaffResponse   `json:"staff"`
	Vehicle []VehicleResponse `json:"vehicle"`
	Field   []FieldResponse   `json:"field"`
}
