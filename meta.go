package dln

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Metadata is free-form image information carried next to the pixels.
// The codec never interprets it; a MetadataCodec turns it into bytes.
type Metadata map[string]any

// MetadataCodec serializes metadata into the opaque metadata section.
type MetadataCodec interface {
	MarshalMetadata(m Metadata) ([]byte, error)
	UnmarshalMetadata(data []byte) (Metadata, error)
}

var (
	cborEncMode = mustCBOREncMode()
	cborDecMode = mustCBORDecMode()
)

func mustCBOREncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustCBORDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any{}),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// CBORCodec stores metadata as a deterministic CBOR map. It is the default.
//
// Strings, bools, nil, float64, int, []byte, []any and map[string]any
// decode to exactly what was encoded. Other values come back in those
// shapes: every integer type as int, float32 as float64, typed slices
// as []any and nested maps (including Metadata) as map[string]any.
type CBORCodec struct{}

// MarshalMetadata encodes m; nil metadata encodes as an empty map.
func (CBORCodec) MarshalMetadata(m Metadata) ([]byte, error) {
	if m == nil {
		m = Metadata{}
	}
	return cborEncMode.Marshal(m)
}

// UnmarshalMetadata decodes a CBOR map; null decodes as empty metadata.
func (CBORCodec) UnmarshalMetadata(data []byte) (Metadata, error) {
	var m Metadata
	if err := cborDecMode.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return Metadata{}, nil
	}

	for k, v := range m {
		m[k] = normalizeCBOR(v)
	}
	return m, nil
}

// normalizeCBOR narrows decoded int64 values to int where they fit.
func normalizeCBOR(v any) any {
	switch t := v.(type) {
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			return int(t)
		}
	case []any:
		for i := range t {
			t[i] = normalizeCBOR(t[i])
		}
	case map[string]any:
		for k := range t {
			t[k] = normalizeCBOR(t[k])
		}
	}
	return v
}

// JSONCodec stores metadata as a JSON object. Numbers decode as json.Number
// and byte slices as base64 strings, so only string-valued metadata
// survives unchanged.
type JSONCodec struct{}

// MarshalMetadata encodes m; nil metadata encodes as an empty object.
func (JSONCodec) MarshalMetadata(m Metadata) ([]byte, error) {
	if m == nil {
		m = Metadata{}
	}
	return json.Marshal(m)
}

// UnmarshalMetadata decodes a JSON object; null decodes as empty metadata.
func (JSONCodec) UnmarshalMetadata(data []byte) (Metadata, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m Metadata
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		m = Metadata{}
	}

	return m, nil
}
