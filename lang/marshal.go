package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// MapSlice converts the document to an order-preserving sequence of
// key and value pairs suitable for YAML encoding.
func (d *Document) MapSlice() yaml.MapSlice {
	slice := make(yaml.MapSlice, 0, d.Len())

	for name, value := range d.All() {
		slice = append(slice, yaml.MapItem{Key: name, Value: value.Native()})
	}

	return slice
}

// MarshalYAML implements yaml.InterfaceMarshaler so that a document
// encodes as an ordered mapping.
func (d *Document) MarshalYAML() (any, error) {
	return d.MapSlice(), nil
}

// FormatYAML writes the document as a YAML mapping to the writer,
// preserving declaration order. A non-positive indent selects flow
// style.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, d.MapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// MarshalJSON implements json.Marshaler, preserving declaration order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true
	for name, value := range d.All() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		elem, err := json.Marshal(value.Native())
		if err != nil {
			return nil, err
		}

		buf.Write(elem)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// FormatJSON writes the document as JSON to the writer, preserving
// declaration order.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	if indent > 0 {
		var buf bytes.Buffer

		err = json.Indent(&buf, data, "", strings.Repeat(" ", indent))
		if err != nil {
			return err
		}

		data = buf.Bytes()
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
