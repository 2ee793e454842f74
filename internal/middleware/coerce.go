package middleware

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// schemaNode is the part of a body schema that drives scalar coercion.
type schemaNode struct {
	Type       interface{}            `json:"type"`
	Properties map[string]*schemaNode `json:"properties"`
	Items      *schemaNode            `json:"items"`
}

// loadSchemaNode parses the embedded schema name into its coercion tree
func loadSchemaNode(name string) (*schemaNode, error) {
	raw, err := readSchema(name)
	if err != nil {
		return nil, err
	}
	node := &schemaNode{}
	if err := json.Unmarshal(raw, node); err != nil {
		return nil, err
	}
	return node, nil
}

// kind returns the first non-null type the node allows.
func (n *schemaNode) kind() string {
	switch t := n.Type.(type) {
	case string:
		return t
	case []interface{}:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

func (n *schemaNode) nullable() bool {
	types, ok := n.Type.([]interface{})
	if !ok {
		return n.Type == "null"
	}
	for _, v := range types {
		if v == "null" {
			return true
		}
	}
	return false
}

// coerceBody converts scalar values of a JSON object body toward the types the
// schema declares. The original bytes come back untouched when nothing changed.
func (n *schemaNode) coerceBody(body []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if _, ok := root.(map[string]interface{}); !ok {
		return body, nil
	}

	coerced, changed := n.coerce(root)
	if !changed {
		return body, nil
	}
	return json.Marshal(coerced)
}

// coerce returns v converted toward the node's type and whether anything changed.
// Values that cannot be converted are returned as they are and left to the schema check.
func (n *schemaNode) coerce(v interface{}) (interface{}, bool) {
	if n == nil || v == nil {
		return v, false
	}

	switch n.kind() {
	case "string":
		switch x := v.(type) {
		case json.Number:
			return x.String(), true
		case bool:
			return strconv.FormatBool(x), true
		}

	case "number", "integer":
		num, changed := v, false
		if s, ok := v.(string); ok {
			if strings.TrimSpace(s) == "" && n.nullable() {
				return nil, true
			}
			parsed, ok := parseNumber(s)
			if !ok {
				return v, false
			}
			num, changed = parsed, true
		}
		if n.kind() == "integer" {
			if x, ok := num.(json.Number); ok {
				if whole, ok := wholeNumber(x); ok && whole != x {
					return whole, true
				}
			}
		}
		return num, changed

	case "boolean":
		if s, ok := v.(string); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
				return b, true
			}
		}

	case "array":
		items, ok := v.([]interface{})
		if !ok || n.Items == nil {
			return v, false
		}
		changed := false
		for i, item := range items {
			var c bool
			items[i], c = n.Items.coerce(item)
			changed = changed || c
		}
		return items, changed

	case "object":
		obj, ok := v.(map[string]interface{})
		if !ok {
			return v, false
		}
		changed := false
		for key, prop := range n.Properties {
			val, present := obj[key]
			if !present {
				continue
			}
			var c bool
			obj[key], c = prop.coerce(val)
			changed = changed || c
		}
		return obj, changed
	}

	return v, false
}

// parseNumber accepts a string holding a JSON number, such as "4" or " 2.5 "
func parseNumber(s string) (json.Number, bool) {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", false
	}
	if !json.Valid([]byte(s)) {
		return "", false
	}
	return json.Number(s), true
}

// wholeNumber rewrites an integral number such as 4.0 or 4e0 as 4.
func wholeNumber(n json.Number) (json.Number, bool) {
	if _, err := n.Int64(); err == nil {
		return n, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return n, false
	}
	return json.Number(strconv.FormatInt(int64(f), 10)), true
}
