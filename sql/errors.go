package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrMalformedQuery is returned when a query document fails any
	// structural, key resolution or type check.
	ErrMalformedQuery = errors.NewKind("malformed query: %s")

	// ErrMalformedKey is returned when a key is not of the form
	// "<dataset>_<field>".
	ErrMalformedKey = errors.NewKind("malformed key %q")

	// ErrDatasetNotFound is returned when the dataset a query or an
	// operation refers to is not loaded.
	ErrDatasetNotFound = errors.NewKind("dataset not found: %s")

	// ErrResultTooLarge is returned when a query produces more rows than
	// allowed. No partial result is returned along with it.
	ErrResultTooLarge = errors.NewKind("result too large: more than %d rows")

	// ErrInvalidDatasetID is returned when a dataset id is empty, only
	// whitespace or contains the key separator.
	ErrInvalidDatasetID = errors.NewKind("invalid dataset id %q")

	// ErrDatasetAlreadyExists is returned when adding a dataset with an id
	// that is already loaded.
	ErrDatasetAlreadyExists = errors.NewKind("dataset %q already exists")

	// ErrInvalidDataset is returned when the content of a dataset cannot be
	// loaded or contains no valid rows.
	ErrInvalidDataset = errors.NewKind("invalid dataset %q: %s")

	// ErrInvalidKind is returned for an unknown dataset kind.
	ErrInvalidKind = errors.NewKind("invalid dataset kind %q")

	// ErrInvalidType is thrown when there is an unexpected type at some part of
	// the execution tree.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrUnresolvedExpression is returned when an expression is evaluated
	// before the analyzer bound it to a column.
	ErrUnresolvedExpression = errors.NewKind("expression %s has not been resolved")

	// ErrIndexOutOfBounds is returned when a field index is out of bounds.
	ErrIndexOutOfBounds = errors.NewKind("unable to find field with index %d in row of %d columns")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrNodeNotWritten is returned when the children are printed before the node.
	ErrNodeNotWritten = errors.NewKind("treeprinter: a child was written before the node")

	// ErrNodeAlreadyWritten is returned when the node has already been written.
	ErrNodeAlreadyWritten = errors.NewKind("treeprinter: node already written")

	// ErrChildrenAlreadyWritten is returned when the children have already been written.
	ErrChildrenAlreadyWritten = errors.NewKind("treeprinter: children already written")
)
