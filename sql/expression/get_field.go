package expression

import "github.com/campusdata/insight/sql"

// GetField is an expression to get the field of a row.
type GetField struct {
	fieldIndex int
	name       string
	fieldType  sql.Type
}

// NewGetField creates a GetField expression.
func NewGetField(index int, fieldType sql.Type, fieldName string) *GetField {
	return &GetField{
		fieldIndex: index,
		name:       fieldName,
		fieldType:  fieldType,
	}
}

// Index returns the index where the GetField will look for the value from a sql.Row.
func (p *GetField) Index() int { return p.fieldIndex }

// Children implements the Expression interface.
func (*GetField) Children() []sql.Expression {
	return nil
}

// Resolved implements the Expression interface.
func (p *GetField) Resolved() bool {
	return true
}

// Name implements the Nameable interface.
func (p *GetField) Name() string { return p.name }

// Type returns the type of the field.
func (p *GetField) Type() sql.Type {
	return p.fieldType
}

// Eval implements the Expression interface.
func (p *GetField) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if p.fieldIndex < 0 || p.fieldIndex >= len(row) {
		return nil, sql.ErrIndexOutOfBounds.New(p.fieldIndex, len(row))
	}
	return row[p.fieldIndex], nil
}

func (p *GetField) String() string {
	return p.name
}
