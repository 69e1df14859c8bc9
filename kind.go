package verdict

import (
	"encoding/json"
	"math/big"
	"reflect"
)

// Kind is the closed set of fundamental runtime categories a decoded input
// value can belong to. It deliberately mirrors what JSON/YAML decoding and
// in-process interop actually produce: there is no array kind here because
// sequences are handled by the dedicated array combinator.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindObject Kind = "object"
	KindFunc   Kind = "func"
	KindNil    Kind = "nil"
	KindBigInt Kind = "bigint"

	// KindUnknown is returned by KindOf for values outside the closed set
	// (slices, channels, arbitrary structs). It is not a valid expectation
	// for primitive validators.
	KindUnknown Kind = "unknown"
)

// KindOf classifies a decoded input value into its runtime category.
// Numeric kinds cover the Go integer and float types plus json.Number so
// that values arriving from different decoders classify uniformly.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNil
	case string:
		return KindString
	case bool:
		return KindBool
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case json.Number:
		return KindNumber
	case *big.Int:
		return KindBigInt
	case map[string]any:
		return KindObject
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return KindFunc
	}
	return KindUnknown
}
