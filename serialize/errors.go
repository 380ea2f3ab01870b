package serialize

import "errors"

// ErrInvalidDocument indicates the top-level JSON value is not an object
// with "nodes" and "links" fields of the expected shape.
var ErrInvalidDocument = errors.New("serialize: invalid document")

// ErrUnknownKind indicates a node's "kind" tag is not one of the nine
// recognized instruction kinds.
var ErrUnknownKind = errors.New("serialize: unknown kind tag")

// ErrInvalidNodeID indicates a node or link carries an id that does not
// parse as a canonical UUID string.
var ErrInvalidNodeID = errors.New("serialize: invalid node id")
