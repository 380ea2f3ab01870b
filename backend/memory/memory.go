package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/huntgraph/irengine/backend"
	"github.com/huntgraph/irengine/ir"
)

// Dataset keys a static row set by (interface, datasource).
type Dataset map[DatasetKey][]map[string]any

// DatasetKey identifies one table within a Dataset.
type DatasetKey struct {
	Interface  string
	DataSource string
}

// Backend is a reference [backend.Backend] backed by an in-process
// [Dataset]. Row-level transforms interpret Filter predicates of the form
// "field==value" or "field!=value" (string-compared), Project as an
// ordered column allowlist, Limit as a row cap, and Sort by a single
// column.
type Backend struct {
	dataset Dataset
}

// New returns a Backend serving dataset.
func New(dataset Dataset) *Backend {
	return &Backend{dataset: dataset}
}

// EvaluateSource returns the rows registered for instr's
// (interface, datasource) pair, failing with [backend.ErrDataSourceError]
// if no such table is registered.
func (b *Backend) EvaluateSource(ctx context.Context, instr ir.Instruction) (backend.Artifact, error) {
	if instr.Kind() != ir.KindDataSource {
		return backend.Artifact{}, wrapInvalid(instr.ID())
	}
	iface, _ := instr.Interface()
	ds, _ := instr.DataSource()
	rows, ok := b.dataset[DatasetKey{Interface: iface, DataSource: ds}]
	if !ok {
		return backend.Artifact{}, wrapDataSourceErr(instr.ID(), fmt.Sprintf("no table registered for %s://%s", iface, ds))
	}
	return backend.NewArtifact(rows), nil
}

// EvaluateTransform applies instr to input.
func (b *Backend) EvaluateTransform(ctx context.Context, instr ir.Instruction, input backend.Artifact) (backend.Artifact, error) {
	rows := make([]map[string]any, 0, input.Len())
	for i := range input.Len() {
		row, ok := input.Row(i)
		if !ok {
			continue
		}
		rows = append(rows, row.Clone())
	}

	switch instr.Kind() {
	case ir.KindFilter:
		predicate, _ := instr.Predicate()
		filtered, err := applyFilter(instr.ID(), rows, predicate)
		if err != nil {
			return backend.Artifact{}, err
		}
		return backend.NewArtifact(filtered), nil
	case ir.KindProject:
		fields, _ := instr.Fields()
		return backend.NewArtifact(applyProject(rows, fields)), nil
	case ir.KindLimit:
		count, _ := instr.Count()
		if count < 0 {
			count = 0
		}
		if count < len(rows) {
			rows = rows[:count]
		}
		return backend.NewArtifact(rows), nil
	case ir.KindSort:
		by, _ := instr.By()
		descending, _ := instr.Descending()
		applySort(rows, by, descending)
		return backend.NewArtifact(rows), nil
	default:
		return backend.Artifact{}, wrapInvalid(instr.ID())
	}
}

func applyFilter(id ir.NodeID, rows []map[string]any, predicate string) ([]map[string]any, error) {
	field, value, negate, err := parsePredicate(predicate)
	if err != nil {
		return nil, wrapDataSourceErr(id, err.Error())
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		matches := fmt.Sprint(row[field]) == value
		if matches != negate {
			out = append(out, row)
		}
	}
	return out, nil
}

func parsePredicate(predicate string) (field, value string, negate bool, err error) {
	if field, value, ok := strings.Cut(predicate, "!="); ok {
		return strings.TrimSpace(field), strings.TrimSpace(value), true, nil
	}
	if field, value, ok := strings.Cut(predicate, "=="); ok {
		return strings.TrimSpace(field), strings.TrimSpace(value), false, nil
	}
	return "", "", false, fmt.Errorf("unrecognized predicate %q: want \"field==value\" or \"field!=value\"", predicate)
}

func applyProject(rows []map[string]any, fields []string) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		projected := make(map[string]any, len(fields))
		for _, f := range fields {
			if v, ok := row[f]; ok {
				projected[f] = v
			}
		}
		out = append(out, projected)
	}
	return out
}

func applySort(rows []map[string]any, by string, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		less := fmt.Sprint(rows[i][by]) < fmt.Sprint(rows[j][by])
		if descending {
			return !less
		}
		return less
	})
}

func wrapInvalid(id ir.NodeID) error {
	return ir.WrapNodeError("InvalidInstruction", backend.ErrInvalidInstruction, id)
}

func wrapDataSourceErr(id ir.NodeID, detail string) error {
	return ir.WrapNodeError("DataSourceError", fmt.Errorf("%w: %s", backend.ErrDataSourceError, detail), id)
}
