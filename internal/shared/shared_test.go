package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"postalCode":        "Postal code",
		"performanceRating": "Performance rating",
		"email":             "Email",
		"taxId":             "Tax id",
		"":                  "",
	}
	for in, want := range cases {
		require.Equal(t, want, Humanize(in), in)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1,234.50"},
		{"2.345", "$2.35"},
		{"1000000", "$1,000,000.00"},
		{"-12", "-$12.00"},
		{"-0.004", "$0.00"},
		{"-1234.567", "-$1,234.57"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatCurrency(decimal.RequireFromString(tc.amount)), tc.amount)
	}
}

func TestSearchTermMatchAny(t *testing.T) {
	require.True(t, NewSearchTerm("").MatchAny())
	require.True(t, NewSearchTerm("").MatchAny(""))

	term := NewSearchTerm("SENSOR")
	require.True(t, term.MatchAny("", "Temperature Sensor"))
	require.False(t, term.MatchAny(""))
	require.False(t, term.MatchAny())
	require.False(t, term.MatchAny("Steel bolts", Deref(nil)))

	require.True(t, NewSearchTerm("straße").MatchAny("STRASSE 12"))
}

func TestMatchCategory(t *testing.T) {
	require.True(t, MatchCategory(FilterAll, "AVAILABLE"))
	require.True(t, MatchCategory("", "AVAILABLE"))
	require.True(t, MatchCategory("AVAILABLE", "AVAILABLE"))
	require.False(t, MatchCategory("available", "AVAILABLE"))
	require.False(t, MatchCategory("RESERVED", "AVAILABLE"))
	require.False(t, MatchCategory("UNKNOWN", ""))

	require.True(t, IsAll(""))
	require.True(t, IsAll(FilterAll))
	require.False(t, IsAll("RESERVED"))
}

func TestFieldErrors(t *testing.T) {
	require.NoError(t, FieldErrors{}.Err())

	err := FieldErrors{"quantity": "Quantity must be positive", "location": "Location is required"}.Err()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "validation failed: location: Location is required; quantity: Quantity must be positive", err.Error())
	require.Equal(t, []string{"location", "quantity"}, FieldErrorsOf(err).Fields())
}
