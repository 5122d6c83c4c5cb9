package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount Amount
		want   string
	}{
		{"numeric value", Num(123.45), "123.45"},
		{"zero is a value", Num(0), "0"},
		{"negative value", Num(-2.5), "-2.5"},
		{"unavailable", Unavailable(), `"N/A"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var a Amount
	require.NoError(t, json.Unmarshal([]byte("99.9"), &a))
	v, ok := a.Float64()
	assert.True(t, ok)
	assert.Equal(t, 99.9, v)

	require.NoError(t, json.Unmarshal([]byte(`"N/A"`), &a))
	assert.True(t, a.IsUnavailable())

	assert.Error(t, json.Unmarshal([]byte(`"oops"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
}

func TestAmount_RoundTripInsidePricePoint(t *testing.T) {
	t.Parallel()

	// Cached snapshots must deserialize to the exact same point,
	// sentinel included.
	original := PricePoint{
		Symbol:        "AAPL",
		Price:         Num(178.23),
		MarketCap:     Unavailable(),
		ChangePercent: Num(-0.42),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored PricePoint
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
	assert.True(t, restored.MarketCap.IsUnavailable())
}

func TestPricePoint_HasPrice(t *testing.T) {
	t.Parallel()

	assert.True(t, PricePoint{Price: Num(1)}.HasPrice())
	assert.False(t, PricePoint{Price: Unavailable()}.HasPrice())
}
