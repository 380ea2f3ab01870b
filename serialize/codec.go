package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/huntgraph/irengine/ir"
	"github.com/huntgraph/irengine/irgraph"
)

// Encode serializes g to the wire document described in package docs.
func Encode(g *irgraph.Graph) ([]byte, error) {
	if g == nil {
		return nil, irgraph.ErrNilGraph
	}
	rec := g.ToRecord()

	doc := documentDoc{
		Nodes: make([]map[string]any, 0, len(rec.Nodes)),
		Links: make([]linkDoc, 0, len(rec.Links)),
	}
	for _, n := range rec.Nodes {
		obj := make(map[string]any, len(n.Attrs)+2)
		for k, v := range n.Attrs {
			obj[k] = v
		}
		obj["id"] = n.ID.String()
		obj["kind"] = n.Kind.String()
		doc.Nodes = append(doc.Nodes, obj)
	}
	for _, l := range rec.Links {
		doc.Links = append(doc.Links, linkDoc{Source: l.Source.String(), Target: l.Target.String()})
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a wire document (optionally carrying "//" and "/* */"
// comments, stripped via [jsonc.ToJSON] before strict decoding) into a
// fresh [irgraph.Graph] via [irgraph.FromRecord].
//
// Fails with [ErrInvalidDocument] if data is not a well-formed document
// object, [ErrUnknownKind] if a node's "kind" tag is unrecognized, or
// [ErrInvalidNodeID] if an id does not parse as a canonical UUID; also
// propagates any error [irgraph.FromRecord] returns (e.g. a link
// referencing an id absent from the node list, or a node missing an
// attribute its kind requires).
func Decode(data []byte, opts ...irgraph.GraphOption) (*irgraph.Graph, error) {
	processed := jsonc.ToJSON(data)

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var doc documentDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	nodes := make([]ir.Record, 0, len(doc.Nodes))
	for _, obj := range doc.Nodes {
		normalizeNumbers(obj)

		idVal, _ := obj["id"].(string)
		id, err := ir.ParseNodeID(idVal)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNodeID, idVal)
		}
		kindVal, _ := obj["kind"].(string)
		kind, ok := ir.KindFromString(kindVal)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kindVal)
		}
		delete(obj, "id")
		delete(obj, "kind")

		nodes = append(nodes, ir.Record{ID: id, Kind: kind, Attrs: obj})
	}

	links := make([]irgraph.LinkRecord, 0, len(doc.Links))
	for _, l := range doc.Links {
		src, err := ir.ParseNodeID(l.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNodeID, l.Source)
		}
		dst, err := ir.ParseNodeID(l.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNodeID, l.Target)
		}
		links = append(links, irgraph.LinkRecord{Source: src, Target: dst})
	}

	return irgraph.FromRecord(irgraph.GraphRecord{Nodes: nodes, Links: links}, opts...)
}

// normalizeNumbers converts json.Number values decoded with UseNumber
// into int64 (when the literal has no decimal point) or float64,
// recursing into nested maps and slices. Instruction attributes like
// "count" and "version" must come back as the integer type
// [immutable.Value.Int] recognizes, not a json.Number.
func normalizeNumbers(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil && !containsDot(val.String()) {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		normalizeNumbers(val)
		return val
	case []any:
		for i, elem := range val {
			val[i] = normalizeValue(elem)
		}
		return val
	default:
		return v
	}
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
