package domain

// MaxFieldImages bounds the number of images attached to a field.
const MaxFieldImages = 2

// Location is a latitude/longitude pair in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the coordinates are in range.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Field models a cultivated field. Staffs holds copies of the allocated
// staff records taken at assignment time.
type Field struct {
	FieldCode string
	FieldName string
	Location  Location
	// FieldSize is measured in hectares.
	FieldSize   float64
	FieldImage1 string
	FieldImage2 string
	Staffs      []Staff
}

// Images returns the non-empty image payloads in slot order.
func (f Field) Images() []string {
	images := make([]string, 0, MaxFieldImages)
	for _, img := range []string{f.FieldImage1, f.FieldImage2} {
		if img != "" {
			images = append(images, img)
		}
	}
	return images
}

// StaffIDs lists the identifiers of the allocated staff.
func (f Field) StaffIDs() []string {
	ids := make([]string, 0, len(f.Staffs))
	for _, s := range f.Staffs {
		ids = append(ids, s.StaffID)
	}
	return ids
}
