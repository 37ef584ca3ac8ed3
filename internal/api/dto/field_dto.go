package dto

// LocationDTO is a latitude/longitude pair.
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FieldRequest payload. Images are base64 data URLs.
type FieldRequest struct {
	FieldName   string      `json:"field_name"`
	Location    LocationDTO `json:"location"`
	FieldSize   float64     `json:"field_size"`
	FieldImage1 string      `json:"field_image_1"`
	FieldImage2 string      `json:"field_image_2"`
	StaffIDs    []string    `json:"staff_ids"`
}

// FieldResponse representation.
type FieldResponse struct {
	FieldCode   string             `json:"field_code"`
	FieldName   string             `json:"field_name"`
	Location    LocationDTO        `json:"location"`
	FieldSize   float64            `json:"field_size"`
	FieldImage1 string             `json:"field_image_1,omitempty"`
	FieldImage2 string             `json:"field_image_2,omitempty"`
	Staffs      []StaffRefResponse `json:"staffs"`
}

// FieldMarkerResponse places a field on the map.
type FieldMarkerResponse struct {
	FieldCode string      `json:"field_code"`
	FieldName string      `json:"field_name"`
	Location  LocationDTO `json:"location"`
	FieldSize float64     `json:"field_size"`
}
