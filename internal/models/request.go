package models

import "wantly_backend/internal/geo"

// Request is a want-ad. A request is either geolocated (location and radius
// both set) or global (both absent); the DTO layer enforces the pairing and
// the matcher treats a half-set pair as a data-integrity fault.
type Request struct {
	BaseModel
	UserID    string   `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Content   string   `gorm:"not null" json:"content"`
	Budget    int      `gorm:"not null" json:"budget"`
	Currency  Currency `gorm:"type:varchar(3);not null;default:USD" json:"currency"`
	Longitude *float64 `json:"longitude,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Radius    *int     `json:"radius,omitempty"` // meters

	Offers []Offer `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"offers,omitempty"`
}

// IsGlobal reports whether the request has no geofence.
func (r *Request) IsGlobal() bool {
	return r.Longitude == nil && r.Latitude == nil
}

// Location returns the request's point when it is geolocated.
func (r *Request) Location() (geo.Point, bool) {
	if r.Longitude == nil || r.Latitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Longitude: *r.Longitude, Latitude: *r.Latitude}, true
}
