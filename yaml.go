package strtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseRecords decodes a YAML sequence of mappings into records, keeping
// each mapping's key order. JSON arrays of objects are valid input. An empty
// document yields no records.
func ParseRecords(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecords, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	seq := doc.Content[0]
	if seq.Kind == yaml.ScalarNode && seq.Tag == "!!null" {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a sequence of mappings", ErrInvalidRecords, seq.Line)
	}
	records := make([]Record, 0, len(seq.Content))
	for _, item := range seq.Content {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeRecord turns a mapping into a record. Duplicate keys are rejected.
// Merge keys ("<<") are expanded in place; keys set on the mapping itself
// win over merged ones, and earlier merged mappings win over later ones.
func decodeRecord(node *yaml.Node) (Record, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidRecords, node.Line)
	}
	own := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if isMergeKey(key) {
			continue
		}
		if own[key.Value] {
			return nil, fmt.Errorf("%w: line %d: duplicate key %q", ErrInvalidRecords, key.Line, key.Value)
		}
		own[key.Value] = true
	}

	rec := make(Record, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(own))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if isMergeKey(key) {
			merged, err := decodeMerge(val)
			if err != nil {
				return nil, err
			}
			for _, f := range merged {
				if own[f.Name] || seen[f.Name] {
					continue
				}
				seen[f.Name] = true
				rec = append(rec, f)
			}
			continue
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: field %q: %s", ErrInvalidRecords, val.Line, key.Value, err)
		}
		seen[key.Value] = true
		rec = append(rec, Field{Name: key.Value, Value: v})
	}
	return rec, nil
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.Value == "<<" && (key.Tag == "" || key.Tag == "!!merge")
}

// decodeMerge reads the value of a merge key: a mapping or a sequence of
// mappings.
func decodeMerge(node *yaml.Node) (Record, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.SequenceNode {
		return decodeRecord(node)
	}
	var out Record
	for _, item := range node.Content {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, err
		}
		out = append(out, rec...)
	}
	return out, nil
}

// ParseOptions decodes rendering options from YAML. Unknown keys are
// rejected. Formatters cannot be expressed in YAML and are left nil.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %s", ErrInvalidOptions, err)
	}
	return opts, nil
}
