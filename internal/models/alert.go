package models

import "wantly_backend/internal/geo"

// Alert is a saved search. Content is matched as a case-insensitive
// substring of new request content; budget is compared against the
// converted request budget using BudgetComparisonMode. Location and radius
// follow the same both-or-neither pairing as Request.
type Alert struct {
	BaseModel
	UserID               string         `gorm:"type:uuid;not null;index" json:"user_id"`
	User                 *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Content              string         `gorm:"not null" json:"content"`
	Budget               int            `gorm:"not null" json:"budget"`
	BudgetComparisonMode ComparisonMode `gorm:"type:varchar(32);not null;default:EQUALS" json:"budget_comparison_mode"`
	Currency             Currency       `gorm:"type:varchar(3);not null;default:USD" json:"currency"`
	Longitude            *float64       `json:"longitude,omitempty"`
	Latitude             *float64       `json:"latitude,omitempty"`
	Radius               *int           `json:"radius,omitempty"` // meters
}

// IsGlobal reports whether the alert has no geofence.
func (a *Alert) IsGlobal() bool {
	return a.Longitude == nil && a.Latitude == nil
}

// Location returns the alert's point when it is geolocated.
func (a *Alert) Location() (geo.Point, bool) {
	if a.Longitude == nil || a.Latitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Longitude: *a.Longitude, Latitude: *a.Latitude}, true
}
