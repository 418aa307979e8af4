package plan

import (
	"fmt"
	"io"
	"sort"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/campusdata/insight/sql"
)

// ErrUnableSort is thrown when something happens on sorting
var ErrUnableSort = errors.NewKind("unable to sort")

// Sort is the sort node. Sorting is stable: rows that compare equal on
// every field keep the order they had in the child.
type Sort struct {
	UnaryNode
	SortFields []SortField
}

// SortOrder represents the order of the sort (ascending or descending).
type SortOrder byte

const (
	// Ascending order.
	Ascending SortOrder = 1
	// Descending order.
	Descending SortOrder = 2
)

func (s SortOrder) String() string {
	switch s {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return "invalid SortOrder"
	}
}

// SortField is a field by which the query will be sorted.
type SortField struct {
	// Column to order by.
	Column sql.Expression
	// Order type.
	Order SortOrder
}

// NewSort creates a new Sort node.
func NewSort(sortFields []SortField, child sql.Node) *Sort {
	return &Sort{
		UnaryNode:  UnaryNode{child},
		SortFields: sortFields,
	}
}

var _ sql.Expressioner = (*Sort)(nil)

// Resolved implements the Resolvable interface.
func (s *Sort) Resolved() bool {
	for _, f := range s.SortFields {
		if !f.Column.Resolved() {
			return false
		}
	}
	return s.Child.Resolved()
}

// RowIter implements the Node interface.
func (s *Sort) RowIter(ctx *sql.Context) (sql.RowIter, error) {
	span, ctx := ctx.Span("plan.Sort")
	i, err := s.UnaryNode.Child.RowIter(ctx)
	if err != nil {
		span.Finish()
		return nil, err
	}
	return sql.NewSpanIter(span, newSortIter(ctx, s, i)), nil
}

func (s *Sort) String() string {
	pr := sql.NewTreePrinter()
	var fields = make([]string, len(s.SortFields))
	for i, f := range s.SortFields {
		fields[i] = fmt.Sprintf("%s %s", f.Column, f.Order)
	}
	_ = pr.WriteNode("Sort(%s)", strings.Join(fields, ", "))
	_ = pr.WriteChildren(s.Child.String())
	return pr.String()
}

// Expressions implements the Expressioner interface.
func (s *Sort) Expressions() []sql.Expression {
	var exprs = make([]sql.Expression, len(s.SortFields))
	for i, f := range s.SortFields {
		exprs[i] = f.Column
	}
	return exprs
}

type sortIter struct {
	ctx        *sql.Context
	s          *Sort
	childIter  sql.RowIter
	sortedRows []sql.Row
	idx        int
}

func newSortIter(ctx *sql.Context, s *Sort, child sql.RowIter) *sortIter {
	return &sortIter{
		ctx:       ctx,
		s:         s,
		childIter: child,
		idx:       -1,
	}
}

func (i *sortIter) Next() (sql.Row, error) {
	if i.idx == -1 {
		rows, err := i.s.sortRows(i.ctx, i.childIter)
		if err != nil {
			return nil, err
		}
		i.sortedRows = rows
		i.idx = 0
	}

	if i.idx >= len(i.sortedRows) {
		return nil, io.EOF
	}
	row := i.sortedRows[i.idx]
	i.idx++
	return row, nil
}

func (i *sortIter) Close() error {
	i.sortedRows = nil
	return i.childIter.Close()
}

// keyedRow is a row along with the values of its sort fields.
type keyedRow struct {
	row  sql.Row
	keys []interface{}
}

// sortRows drains iter and returns its rows ordered by the sort fields.
// Sort keys are evaluated once per row.
func (s *Sort) sortRows(ctx *sql.Context, iter sql.RowIter) ([]sql.Row, error) {
	var keyed []keyedRow
	for {
		row, err := iter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		keys := make([]interface{}, len(s.SortFields))
		for j, f := range s.SortFields {
			keys[j], err = f.Column.Eval(ctx, row)
			if err != nil {
				return nil, ErrUnableSort.Wrap(err)
			}
		}
		keyed = append(keyed, keyedRow{row, keys})
	}

	var sortErr error
	sort.SliceStable(keyed, func(a, b int) bool {
		if sortErr != nil {
			return false
		}
		cmp, err := s.compare(keyed[a].keys, keyed[b].keys)
		if err != nil {
			sortErr = ErrUnableSort.Wrap(err)
			return false
		}
		return cmp < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}

	rows := make([]sql.Row, len(keyed))
	for j, k := range keyed {
		rows[j] = k.row
	}
	return rows, nil
}

// compare orders two sets of sort keys field by field. The first field
// that differs decides; a Descending field reverses its own comparison.
func (s *Sort) compare(a, b []interface{}) (int, error) {
	for j, f := range s.SortFields {
		cmp, err := compareValues(f.Column.Type(), a[j], b[j])
		if err != nil {
			return 0, err
		}

		if cmp == 0 {
			continue
		}
		if f.Order == Descending {
			return -cmp, nil
		}
		return cmp, nil
	}
	return 0, nil
}

// compareValues compares two values of the given type. Nil, the value of
// an empty aggregation, is smaller than any other value.
func compareValues(typ sql.Type, a, b interface{}) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}
	return typ.Compare(a, b)
}
