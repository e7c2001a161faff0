// Package serde is the JSON wire form for value.Value, built with
// github.com/tidwall/gjson and github.com/tidwall/sjson's path-based
// get/set instead of encoding/json struct tags — the original crate's
// src/feature_serde/mod.rs gates a serde::Serialize/Deserialize impl on
// Value behind a feature flag; since Go has no conditional-compilation
// equivalent, this package is simply always present rather than tag-gated
// (see DESIGN.md).
package serde

import (
	"fmt"

	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// EncodeValue renders v as a JSON object {"type": "...", "value": ...}.
// Tuple's "value" is a JSON array of recursively encoded elements; Empty's
// "value" is JSON null.
func EncodeValue(v value.Value) (string, error) {
	json := "{}"
	var err error
	switch tv := v.(type) {
	case *value.String:
		json, err = sjson.Set(json, "type", "String")
		if err != nil {
			return "", err
		}
		return sjson.Set(json, "value", tv.Value)

	case *value.Int:
		json, err = sjson.Set(json, "type", "Int")
		if err != nil {
			return "", err
		}
		return sjson.Set(json, "value", tv.Value)

	case *value.Float:
		json, err = sjson.Set(json, "type", "Float")
		if err != nil {
			return "", err
		}
		return sjson.Set(json, "value", tv.Value)

	case *value.Boolean:
		json, err = sjson.Set(json, "type", "Boolean")
		if err != nil {
			return "", err
		}
		return sjson.Set(json, "value", tv.Value)

	case *value.Tuple:
		json, err = sjson.Set(json, "type", "Tuple")
		if err != nil {
			return "", err
		}
		json, err = sjson.SetRaw(json, "value", "[]")
		if err != nil {
			return "", err
		}
		for i, elem := range tv.Values {
			encoded, err := EncodeValue(elem)
			if err != nil {
				return "", err
			}
			json, err = sjson.SetRaw(json, fmt.Sprintf("value.%d", i), encoded)
			if err != nil {
				return "", err
			}
		}
		return json, nil

	case value.Empty:
		json, err = sjson.Set(json, "type", "Empty")
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(json, "value", "null")

	default:
		return "", evalerr.NewCustomMessage("serde: unsupported value kind")
	}
}

// DecodeValue parses json (as produced by EncodeValue) back into a
// value.Value.
func DecodeValue(json string) (value.Value, error) {
	result := gjson.Parse(json)
	typ := result.Get("type").String()
	val := result.Get("value")

	switch typ {
	case "String":
		return &value.String{Value: val.String()}, nil
	case "Int":
		return &value.Int{Value: val.Int()}, nil
	case "Float":
		return &value.Float{Value: val.Float()}, nil
	case "Boolean":
		return &value.Boolean{Value: val.Bool()}, nil
	case "Empty":
		return value.EmptyValue, nil
	case "Tuple":
		elems := val.Array()
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			v, err := DecodeValue(e.Raw)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &value.Tuple{Values: out}, nil
	default:
		return nil, evalerr.NewCustomMessage(fmt.Sprintf("serde: unknown value type %q", typ))
	}
}
