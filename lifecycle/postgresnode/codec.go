package postgresnode

import (
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	kindTimestamp = "timestamp"
	kindJSON      = "json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type envelopeOut struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

type envelopeIn struct {
	Kind  string              `json:"kind"`
	Value jsoniter.RawMessage `json:"value"`
}

// encodeValue wraps value into the jsonb envelope stored in the property_value column.
func encodeValue(value any) ([]byte, error) {
	out := envelopeOut{Kind: kindJSON, Value: value}

	switch v := value.(type) {
	case time.Time:
		out = envelopeOut{Kind: kindTimestamp, Value: v.UTC().Format(time.RFC3339Nano)}
	case *time.Time:
		if v != nil {
			out = envelopeOut{Kind: kindTimestamp, Value: v.UTC().Format(time.RFC3339Nano)}
		}
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Join(ErrEncodingValueFailed, err)
	}

	return encoded, nil
}

// decodeValue unwraps a jsonb envelope read from the property_value column.
func decodeValue(raw []byte) (any, error) {
	var in envelopeIn

	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, errors.Join(ErrDecodingValueFailed, err)
	}

	switch in.Kind {
	case kindTimestamp:
		var text string
		if err := json.Unmarshal(in.Value, &text); err != nil {
			return nil, errors.Join(ErrDecodingValueFailed, err)
		}

		t, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return nil, errors.Join(ErrDecodingValueFailed, err)
		}

		return t.UTC(), nil

	case kindJSON:
		var value any
		if err := json.Unmarshal(in.Value, &value); err != nil {
			return nil, errors.Join(ErrDecodingValueFailed, err)
		}

		return value, nil

	default:
		return nil, fmt.Errorf("%w: unknown value kind %q", ErrDecodingValueFailed, in.Kind)
	}
}
