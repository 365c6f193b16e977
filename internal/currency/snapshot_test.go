package currency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return NewSnapshot([]Rate{
		{Currency: "USD", Rate: 1.08},
		{Currency: "PLN", Rate: 4.32},
		{Currency: "JPY", Rate: 161.5},
	}, time.Now())
}

func TestConvert_ReferenceIdentity(t *testing.T) {
	s := testSnapshot()

	got, err := s.Convert(250, "EUR", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 250.0, got)
}

func TestConvert_FromReference(t *testing.T) {
	s := testSnapshot()

	got, err := s.Convert(100, "EUR", "USD")
	require.NoError(t, err)
	assert.Equal(t, 100*1.08, got)
}

func TestConvert_ToReference(t *testing.T) {
	s := testSnapshot()

	got, err := s.Convert(108, "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-9)
}

func TestConvert_CrossCurrency(t *testing.T) {
	s := testSnapshot()

	// USD -> PLN goes through EUR: 108 USD = 100 EUR = 432 PLN.
	got, err := s.Convert(108, "USD", "PLN")
	require.NoError(t, err)
	assert.InDelta(t, 432, got, 1e-9)
}

func TestConvert_RoundTrip(t *testing.T) {
	s := testSnapshot()

	pairs := [][2]string{
		{"USD", "PLN"},
		{"PLN", "JPY"},
		{"EUR", "USD"},
		{"JPY", "EUR"},
	}

	for _, pair := range pairs {
		there, err := s.Convert(123.45, pair[0], pair[1])
		require.NoError(t, err)
		back, err := s.Convert(there, pair[1], pair[0])
		require.NoError(t, err)
		assert.InDelta(t, 123.45, back, 1e-9, "%s -> %s -> %s", pair[0], pair[1], pair[0])
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	s := testSnapshot()

	_, err := s.Convert(10, "ZZZ", "USD")
	require.Error(t, err)

	var notFound *CurrencyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ZZZ", notFound.Code)

	_, err = s.Convert(10, "USD", "ZZZ")
	require.Error(t, err)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ZZZ", notFound.Code)
}

func TestConvert_NoRounding(t *testing.T) {
	s := testSnapshot()

	got, err := s.Convert(500, "USD", "EUR")
	require.NoError(t, err)
	// Full precision: 500/1.08, not a rounded 462.96.
	assert.InDelta(t, 462.962962962963, got, 1e-9)
}
