package serialize

// linkDoc is the wire form of one [irgraph.LinkRecord].
type linkDoc struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// documentDoc is the wire form of a [irgraph.GraphRecord]: a flat node
// list (each object carrying "id", "kind", and the kind's own attributes
// inline) and a flat link list.
type documentDoc struct {
	Nodes []map[string]any `json:"nodes"`
	Links []linkDoc        `json:"links"`
}
