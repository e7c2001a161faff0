package serde

import (
	"testing"

	"github.com/cwbudde/go-evalx/internal/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
	}{
		{"string", &value.String{Value: "hello"}},
		{"int", &value.Int{Value: 42}},
		{"float", &value.Float{Value: 3.5}},
		{"boolean", &value.Boolean{Value: true}},
		{"empty", value.EmptyValue},
		{"tuple", &value.Tuple{Values: []value.Value{&value.Int{Value: 1}, &value.String{Value: "x"}, &value.Boolean{Value: false}}}},
		{"nested tuple", &value.Tuple{Values: []value.Value{&value.Tuple{Values: []value.Value{&value.Int{Value: 1}}}, &value.Int{Value: 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeValue(tt.v)
			if err != nil {
				t.Fatalf("EncodeValue: %v", err)
			}
			decoded, err := DecodeValue(encoded)
			if err != nil {
				t.Fatalf("DecodeValue: %v", err)
			}
			if !value.Equal(tt.v, decoded) {
				t.Errorf("round trip mismatch: %v -> %s -> %v", tt.v, encoded, decoded)
			}
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	if _, err := DecodeValue(`{"type":"Bogus","value":null}`); err == nil {
		t.Errorf("expected an error for an unrecognized type tag")
	}
}
