package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const defaultJSONIndent = 2

// renderValue writes a response envelope in the requested format. Objects keep
// the key order the server sent.
func renderValue(w io.Writer, format string, value *xminds.Value) error {
	switch format {
	case constants.FormatJSON:
		data, err := json.MarshalIndent(value, "", fmt.Sprintf("%*s", defaultJSONIndent, ""))
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(defaultJSONIndent)

		err := encoder.Encode(yamlNode(value))
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		return renderTable(w, value)
	}
}

// yamlNode converts an envelope to a YAML node tree.
func yamlNode(value *xminds.Value) *yaml.Node {
	switch value.Kind() {
	case xminds.KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, key := range value.Keys() {
			field, _ := value.Field(key)
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				yamlNode(field),
			)
		}

		return node
	case xminds.KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		elems, _ := value.Array()
		for _, elem := range elems {
			node.Content = append(node.Content, yamlNode(elem))
		}

		return node
	case xminds.KindString:
		s, _ := value.Str()

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case xminds.KindNumber:
		n, _ := value.Number()

		return &yaml.Node{Kind: yaml.ScalarNode, Value: n.String()}
	case xminds.KindBool:
		b, _ := value.Bool()

		text := constants.BooleanFalse
		if b {
			text = constants.BooleanTrue
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: text}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// renderTable prints objects as property/value rows. An object holding a
// single array of objects, the usual shape of list responses, is printed as
// one row per element instead.
func renderTable(w io.Writer, value *xminds.Value) error {
	table := tablewriter.NewWriter(w)

	switch {
	case value.Kind() == xminds.KindArray:
		writeRows(table, value)
	case value.Kind() == xminds.KindObject && listField(value) != "":
		field, _ := value.Field(listField(value))
		writeRows(table, field)
	case value.Kind() == xminds.KindObject:
		table.Header("Property", "Value")

		for _, key := range value.Keys() {
			field, _ := value.Field(key)
			_ = table.Append(key, cell(field))
		}
	default:
		table.Header("Value")
		_ = table.Append(cell(value))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// listField returns the only array-of-objects field of v, if there is exactly
// one.
func listField(v *xminds.Value) string {
	found := ""

	for _, key := range v.Keys() {
		field, _ := v.Field(key)
		if field.Kind() != xminds.KindArray || field.Len() == 0 {
			continue
		}

		first, _ := field.Index(0)
		if first.Kind() != xminds.KindObject {
			continue
		}

		if found != "" {
			return ""
		}

		found = key
	}

	return found
}

// writeRows prints an array with one column per key seen in its objects.
func writeRows(table *tablewriter.Table, list *xminds.Value) {
	elems, _ := list.Array()

	var columns []string

	seen := make(map[string]bool)

	for _, elem := range elems {
		for _, key := range elem.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	if len(columns) == 0 {
		table.Header("Value")

		for _, elem := range elems {
			_ = table.Append(cell(elem))
		}

		return
	}

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table.Header(header...)

	for _, elem := range elems {
		row := make([]any, len(columns))

		for i, column := range columns {
			row[i] = ""

			if elem.Has(column) {
				field, _ := elem.Field(column)
				row[i] = cell(field)
			}
		}

		_ = table.Append(row...)
	}
}

// cell renders a scalar as text and anything nested as compact JSON.
func cell(v *xminds.Value) string {
	switch v.Kind() {
	case xminds.KindString:
		s, _ := v.Str()

		return s
	case xminds.KindNull:
		return ""
	default:
		data, _ := json.Marshal(v)

		return string(data)
	}
}
