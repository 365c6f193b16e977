// Package algorithms holds the pure matching math, kept free of HTTP and
// database concerns so it can be tested against fixtures.
package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"wantly_backend/internal/currency"
	"wantly_backend/internal/geo"
	"wantly_backend/internal/models"
)

// ErrInvalidGeofence reports a record with only one of location/radius set.
// The schema keeps the pair together, so hitting this means corrupted data;
// the affected candidate is excluded and surfaced, never the whole batch.
var ErrInvalidGeofence = errors.New("invalid geofence: location and radius must be set together")

// Outcome is the explicit per-candidate result of a batch evaluation.
// Exactly one of Matched/Err is meaningful: a failed candidate is excluded
// from the match set without aborting the remaining candidates.
type Outcome struct {
	Alert   *models.Alert
	Matched bool
	Err     error
}

// EvaluateAlert decides whether one alert matches one request. Predicates
// run in a fixed order and short-circuit on the first failure:
//
//  1. a global request never satisfies a geolocated alert
//  2. when both carry a geofence, the two circles must intersect
//     (inclusive boundary, geodesic distance)
//  3. the alert keyword must occur case-insensitively in the request content
//  4. the request budget, converted into the alert currency, must satisfy
//     the alert's comparison mode
//
// An alert without a location is spatially unconstrained, so a geolocated
// request passes predicate 2 against it unconditionally.
func EvaluateAlert(request *models.Request, alert *models.Alert, rates *currency.Snapshot) (bool, error) {
	requestLoc, requestGeolocated, err := geofence(request.Longitude, request.Latitude, request.Radius)
	if err != nil {
		return false, fmt.Errorf("request %s: %w", request.ID, err)
	}
	alertLoc, alertGeolocated, err := geofence(alert.Longitude, alert.Latitude, alert.Radius)
	if err != nil {
		return false, fmt.Errorf("alert %s: %w", alert.ID, err)
	}

	if !requestGeolocated && alertGeolocated {
		return false, nil
	}

	if requestGeolocated && alertGeolocated {
		if !geo.CirclesIntersect(requestLoc, float64(*request.Radius), alertLoc, float64(*alert.Radius)) {
			return false, nil
		}
	}

	if !strings.Contains(strings.ToLower(request.Content), strings.ToLower(alert.Content)) {
		return false, nil
	}

	converted, err := rates.Convert(float64(request.Budget), string(request.Currency), string(alert.Currency))
	if err != nil {
		return false, err
	}

	return compareBudget(converted, float64(alert.Budget), alert.BudgetComparisonMode), nil
}

// MatchAlerts evaluates a request against a candidate batch. Candidates are
// independent, so one candidate failing (unknown currency, broken geofence)
// only excludes that candidate; the rest of the batch still gets evaluated.
func MatchAlerts(request *models.Request, alerts []models.Alert, rates *currency.Snapshot) []Outcome {
	outcomes := make([]Outcome, 0, len(alerts))
	for i := range alerts {
		alert := &alerts[i]
		matched, err := EvaluateAlert(request, alert, rates)
		outcomes = append(outcomes, Outcome{Alert: alert, Matched: matched, Err: err})
	}
	return outcomes
}

// Matches filters a batch result down to the matched alerts.
func Matches(outcomes []Outcome) []*models.Alert {
	var matched []*models.Alert
	for _, o := range outcomes {
		if o.Err == nil && o.Matched {
			matched = append(matched, o.Alert)
		}
	}
	return matched
}

func compareBudget(converted, threshold float64, mode models.ComparisonMode) bool {
	switch mode {
	case models.ComparisonEquals:
		return converted == threshold
	case models.ComparisonLessThan:
		return converted < threshold
	case models.ComparisonLessThanOrEqual:
		return converted <= threshold
	case models.ComparisonGreaterThan:
		return converted > threshold
	case models.ComparisonGreaterThanOrEqual:
		return converted >= threshold
	default:
		return false
	}
}

func geofence(longitude, latitude *float64, radius *int) (geo.Point, bool, error) {
	hasPoint := longitude != nil && latitude != nil
	hasRadius := radius != nil

	switch {
	case !hasPoint && !hasRadius && longitude == nil && latitude == nil:
		return geo.Point{}, false, nil
	case hasPoint && hasRadius:
		return geo.Point{Longitude: *longitude, Latitude: *latitude}, true, nil
	default:
		return geo.Point{}, false, ErrInvalidGeofence
	}
}
