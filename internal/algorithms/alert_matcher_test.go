package algorithms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wantly_backend/internal/currency"
	"wantly_backend/internal/models"
)

func ratesFixture() *currency.Snapshot {
	return currency.NewSnapshot([]currency.Rate{
		{Currency: "USD", Rate: 1.08},
		{Currency: "PLN", Rate: 4.32},
	}, time.Now())
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func globalRequest(content string, budget int, code models.Currency) *models.Request {
	return &models.Request{
		BaseModel: models.BaseModel{ID: "req-1"},
		Content:   content,
		Budget:    budget,
		Currency:  code,
	}
}

func alertFixture(content string, budget int, code models.Currency, mode models.ComparisonMode) models.Alert {
	return models.Alert{
		BaseModel:            models.BaseModel{ID: "alert-1"},
		UserID:               "user-1",
		Content:              content,
		Budget:               budget,
		Currency:             code,
		BudgetComparisonMode: mode,
	}
}

func TestEvaluateAlert_ComparisonModes(t *testing.T) {
	rates := ratesFixture()

	// Same currency on both sides so the converted budget equals the
	// request budget and the table reads directly.
	tests := []struct {
		mode    models.ComparisonMode
		budget  int
		matches bool
	}{
		{models.ComparisonEquals, 100, true},
		{models.ComparisonEquals, 99, false},
		{models.ComparisonEquals, 101, false},
		{models.ComparisonLessThan, 99, false},
		{models.ComparisonLessThan, 100, false},
		{models.ComparisonLessThan, 101, true},
		{models.ComparisonLessThanOrEqual, 99, false},
		{models.ComparisonLessThanOrEqual, 100, true},
		{models.ComparisonLessThanOrEqual, 101, true},
		{models.ComparisonGreaterThan, 99, true},
		{models.ComparisonGreaterThan, 100, false},
		{models.ComparisonGreaterThan, 101, false},
		{models.ComparisonGreaterThanOrEqual, 99, true},
		{models.ComparisonGreaterThanOrEqual, 100, true},
		{models.ComparisonGreaterThanOrEqual, 101, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			request := globalRequest("looking for a used bike", 100, models.CurrencyUSD)
			alert := alertFixture("bike", tt.budget, models.CurrencyUSD, tt.mode)

			matched, err := EvaluateAlert(request, &alert, rates)
			require.NoError(t, err)
			assert.Equal(t, tt.matches, matched, "request budget 100 vs alert budget %d under %s", tt.budget, tt.mode)
		})
	}
}

func TestEvaluateAlert_LessThanOrEqualBoundary(t *testing.T) {
	rates := currency.NewSnapshot([]currency.Rate{{Currency: "USD", Rate: 100}}, time.Now())

	// 10000 USD at rate 100 converts to exactly 100 EUR.
	request := globalRequest("gaming laptop wanted", 10000, models.CurrencyUSD)
	alert := alertFixture("laptop", 100, models.CurrencyEUR, models.ComparisonLessThanOrEqual)

	matched, err := EvaluateAlert(request, &alert, rates)
	require.NoError(t, err)
	assert.True(t, matched)

	// 10001 USD converts to 100.01 EUR, just over the threshold.
	request.Budget = 10001
	matched, err = EvaluateAlert(request, &alert, rates)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestEvaluateAlert_KeywordCaseInsensitive(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("I want a bike urgently", 100, models.CurrencyUSD)
	alert := alertFixture("Bike", 100, models.CurrencyUSD, models.ComparisonEquals)

	matched, err := EvaluateAlert(request, &alert, rates)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestEvaluateAlert_KeywordNotContained(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("I want a scooter", 100, models.CurrencyUSD)
	alert := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)

	matched, err := EvaluateAlert(request, &alert, rates)
	require.NoError(t, err)
	assert.False(t, matched)
}

// Keywords are plain substrings. SQL LIKE metacharacters carry no meaning
// here, and the candidate pre-filter must agree (see keywordOverlapSQL in
// the repositories package).
func TestEvaluateAlert_KeywordMetacharactersAreLiteral(t *testing.T) {
	rates := ratesFixture()

	tests := []struct {
		name    string
		content string
		keyword string
		matches bool
	}{
		{"backslash is literal", `selling a\b cables`, `a\b`, true},
		{"percent is literal", "discount 100% off", "100%", true},
		{"underscore is literal", "model X_9 for sale", "X_9", true},
		{"percent does not wildcard", "50 percent off", "50%", false},
		{"underscore does not wildcard", "model Xa9 for sale", "X_9", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := globalRequest(tt.content, 100, models.CurrencyUSD)
			alert := alertFixture(tt.keyword, 100, models.CurrencyUSD, models.ComparisonEquals)

			matched, err := EvaluateAlert(request, &alert, rates)
			require.NoError(t, err)
			assert.Equal(t, tt.matches, matched)
		})
	}
}

func TestEvaluateAlert_GlobalRequestNeverMatchesGeofencedAlert(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("bike", 100, models.CurrencyUSD)

	alert := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)
	alert.Longitude = f64(-122.4)
	alert.Latitude = f64(37.8)
	alert.Radius = i(5000)

	matched, err := EvaluateAlert(request, &alert, rates)
	require.NoError(t, err)
	assert.False(t, matched, "a global request cannot satisfy a geofenced alert even with keyword and budget matching")
}

func TestEvaluateAlert_GeolocatedRequestMatchesGlobalAlert(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("bike", 100, models.CurrencyUSD)
	request.Longitude = f64(-122.4)
	request.Latitude = f64(37.8)
	request.Radius = i(5000)

	// Alert without a location is spatially unconstrained.
	alert := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)

	matched, err := EvaluateAlert(request, &alert, rates)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestEvaluateAlert_GeofenceIntersection(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("bike", 100, models.CurrencyUSD)
	request.Longitude = f64(13.40)
	request.Latitude = f64(52.52)
	request.Radius = i(3000)

	near := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)
	near.Longitude = f64(13.41)
	near.Latitude = f64(52.53)
	near.Radius = i(3000)

	matched, err := EvaluateAlert(request, &near, rates)
	require.NoError(t, err)
	assert.True(t, matched, "overlapping circles a couple of km apart must match")

	// Roughly 111 km of latitude away; 3 km + 5 km radii cannot bridge it.
	far := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)
	far.Longitude = f64(13.40)
	far.Latitude = f64(53.52)
	far.Radius = i(5000)

	matched, err = EvaluateAlert(request, &far, rates)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestEvaluateAlert_UnknownCurrency(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("bike", 100, models.CurrencyCHF)
	alert := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)

	_, err := EvaluateAlert(request, &alert, rates)
	require.Error(t, err)

	var notFound *currency.CurrencyNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEvaluateAlert_InvalidGeofence(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("bike", 100, models.CurrencyUSD)

	alert := alertFixture("bike", 100, models.CurrencyUSD, models.ComparisonEquals)
	alert.Longitude = f64(-122.4)
	alert.Latitude = f64(37.8)
	// Radius missing: half-set geofence is a data-integrity fault.

	_, err := EvaluateAlert(request, &alert, rates)
	assert.ErrorIs(t, err, ErrInvalidGeofence)
}

func TestMatchAlerts_BatchIsolation(t *testing.T) {
	rates := ratesFixture()

	request := globalRequest("bike for commuting", 100, models.CurrencyUSD)

	ok1 := alertFixture("bike", 200, models.CurrencyUSD, models.ComparisonLessThan)
	broken := alertFixture("bike", 100, models.CurrencyCHF, models.ComparisonEquals) // no CHF rate
	ok2 := alertFixture("commuting", 50, models.CurrencyUSD, models.ComparisonGreaterThan)

	outcomes := MatchAlerts(request, []models.Alert{ok1, broken, ok2}, rates)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Matched)
	assert.NoError(t, outcomes[0].Err)

	assert.False(t, outcomes[1].Matched)
	assert.Error(t, outcomes[1].Err)

	assert.True(t, outcomes[2].Matched, "candidates after a failed one must still be evaluated")
	assert.NoError(t, outcomes[2].Err)

	matched := Matches(outcomes)
	require.Len(t, matched, 2)
	assert.Equal(t, "bike", matched[0].Content)
	assert.Equal(t, "commuting", matched[1].Content)
}

func TestMatchAlerts_EndToEndScenario(t *testing.T) {
	rates := currency.NewSnapshot([]currency.Rate{{Currency: "USD", Rate: 1.08}}, time.Now())

	request := &models.Request{
		BaseModel: models.BaseModel{ID: "req-iphone"},
		Content:   "iPhone 14",
		Budget:    500,
		Currency:  models.CurrencyUSD,
		Longitude: f64(-122.4),
		Latitude:  f64(37.8),
		Radius:    i(10000),
	}

	alert := models.Alert{
		BaseModel:            models.BaseModel{ID: "alert-u7"},
		UserID:               "U7",
		Content:              "iphone",
		Budget:               450,
		Currency:             models.CurrencyEUR,
		BudgetComparisonMode: models.ComparisonGreaterThanOrEqual,
		Longitude:            f64(-122.41),
		Latitude:             f64(37.79),
		Radius:               i(8000),
	}

	outcomes := MatchAlerts(request, []models.Alert{alert}, rates)
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)

	// 500 USD / 1.08 ≈ 462.96 EUR >= 450 EUR, circles ~1.4 km apart.
	assert.True(t, outcomes[0].Matched)
	assert.Equal(t, "U7", outcomes[0].Alert.UserID)
}
