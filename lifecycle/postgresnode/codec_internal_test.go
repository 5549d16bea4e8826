package postgresnode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Codec_RoundTrip(t *testing.T) {
	berlin := time.FixedZone("CET", 60*60)
	nanos := time.Date(2025, 3, 1, 12, 30, 15, 123456789, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected any
	}{
		{name: "timestamp", value: nanos, expected: nanos},
		{name: "timestamp pointer", value: &nanos, expected: nanos},
		{name: "timestamp in other zone is normalized to UTC", value: nanos.In(berlin), expected: nanos},
		{name: "nil timestamp pointer", value: (*time.Time)(nil), expected: nil},
		{name: "nil", value: nil, expected: nil},
		{name: "string", value: "Home", expected: "Home"},
		{name: "number", value: 7, expected: float64(7)},
		{name: "bool", value: true, expected: true},
		{name: "map", value: map[string]any{"a": "b"}, expected: map[string]any{"a": "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := encodeValue(tt.value)
			require.NoError(t, err)

			decoded, err := decodeValue(encoded)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func Test_Codec_TimestampEnvelope(t *testing.T) {
	encoded, err := encodeValue(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"timestamp","value":"2025-01-10T08:00:00Z"}`, string(encoded))
}

func Test_Codec_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{`},
		{name: "unknown kind", raw: `{"kind":"blob","value":"x"}`},
		{name: "timestamp not a string", raw: `{"kind":"timestamp","value":12}`},
		{name: "timestamp not parseable", raw: `{"kind":"timestamp","value":"yesterday"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeValue([]byte(tt.raw))

			assert.ErrorIs(t, err, ErrDecodingValueFailed)
		})
	}
}
