// Package source materializes input value graphs from serialized bytes so
// they can be handed to a validator. JSON decoding uses goccy/go-json with
// UseNumber, preserving numeric precision into json.Number; YAML decoding
// uses gopkg.in/yaml.v3.
package source

import (
	"bytes"
	"context"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	verdict "github.com/verdict-go/verdict"
)

// JSON decodes a JSON document into an untyped value graph. Numbers are
// preserved as json.Number.
func JSON(data []byte) (any, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader decodes a JSON document from r into an untyped value graph.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAML decodes a YAML document into an untyped value graph. String-keyed
// mappings decode to map[string]any; integers arrive as Go ints, which the
// numeric validators accept.
func YAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseJSON decodes data and runs the validator over the resulting value.
// Decode failures surface as the decoder's error; validation failures as
// the structured Fault.
func ParseJSON[T any](ctx context.Context, v verdict.Validator[T], data []byte) (T, error) {
	var zero T
	in, err := JSON(data)
	if err != nil {
		return zero, err
	}
	return verdict.Parse(ctx, v, in)
}

// ParseYAML decodes data as YAML and runs the validator over the result.
func ParseYAML[T any](ctx context.Context, v verdict.Validator[T], data []byte) (T, error) {
	var zero T
	in, err := YAML(data)
	if err != nil {
		return zero, err
	}
	return verdict.Parse(ctx, v, in)
}
