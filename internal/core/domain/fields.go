package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Field names as they appear in request bodies and store columns.
const (
	FieldType     = "type"
	FieldBrand    = "brand"
	FieldModel    = "model"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
)

var ErrCast = errors.New("cast failed")

// Value is a field slot in a create or update payload. Set reports whether the
// payload named the field at all; Val is nil when the payload sent null.
type Value[T any] struct {
	Set bool
	Val *T
}

// Fields is a partial Part: only the slots with Set overwrite stored values.
type Fields struct {
	Type     Value[string]
	Brand    Value[string]
	Model    Value[string]
	Quantity Value[float64]
	Price    Value[float64]
}

// ParseFields coerces a decoded JSON object into Fields. Unknown keys are
// ignored, including any attempt to supply an id.
func ParseFields(raw map[string]any) (Fields, error) {
	var (
		f   Fields
		err error
	)

	if f.Type, err = textValue(raw, FieldType); err != nil {
		return Fields{}, err
	}
	if f.Brand, err = textValue(raw, FieldBrand); err != nil {
		return Fields{}, err
	}
	if f.Model, err = textValue(raw, FieldModel); err != nil {
		return Fields{}, err
	}
	if f.Quantity, err = numberValue(raw, FieldQuantity); err != nil {
		return Fields{}, err
	}
	if f.Price, err = numberValue(raw, FieldPrice); err != nil {
		return Fields{}, err
	}

	return f, nil
}

// IsEmpty reports whether no slot is set.
func (f Fields) IsEmpty() bool {
	return !f.Type.Set && !f.Brand.Set && !f.Model.Set && !f.Quantity.Set && !f.Price.Set
}

// Apply overwrites the set slots of p.
func (f Fields) Apply(p *Part) {
	if f.Type.Set {
		p.Type = clonePtr(f.Type.Val)
	}
	if f.Brand.Set {
		p.Brand = clonePtr(f.Brand.Val)
	}
	if f.Model.Set {
		p.Model = clonePtr(f.Model.Val)
	}
	if f.Quantity.Set {
		p.Quantity = clonePtr(f.Quantity.Val)
	}
	if f.Price.Set {
		p.Price = clonePtr(f.Price.Val)
	}
}

// NewPart builds a fresh record with the given id from the set slots.
func NewPart(id string, f Fields) Part {
	p := Part{ID: id}
	f.Apply(&p)
	return p
}

// Columns maps each set field name to its value, or to nil for an explicit null.
func (f Fields) Columns() map[string]any {
	cols := make(map[string]any, 5)
	putColumn(cols, FieldType, f.Type)
	putColumn(cols, FieldBrand, f.Brand)
	putColumn(cols, FieldModel, f.Model)
	putColumn(cols, FieldQuantity, f.Quantity)
	putColumn(cols, FieldPrice, f.Price)
	return cols
}

func putColumn[T any](cols map[string]any, name string, v Value[T]) {
	if !v.Set {
		return
	}
	if v.Val == nil {
		cols[name] = nil
		return
	}
	cols[name] = *v.Val
}

func textValue(raw map[string]any, key string) (Value[string], error) {
	v, ok := raw[key]
	if !ok {
		return Value[string]{}, nil
	}
	if v == nil {
		return Value[string]{Set: true}, nil
	}

	switch v.(type) {
	case map[string]any, []any:
		return Value[string]{}, fmt.Errorf("%w: %s must be a string", ErrCast, key)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return Value[string]{}, fmt.Errorf("%w: %s: %v", ErrCast, key, err)
	}
	return Value[string]{Set: true, Val: &s}, nil
}

func numberValue(raw map[string]any, key string) (Value[float64], error) {
	v, ok := raw[key]
	if !ok {
		return Value[float64]{}, nil
	}
	if v == nil {
		return Value[float64]{Set: true}, nil
	}

	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return Value[float64]{Set: true}, nil
		}
	case json.Number:
		v = t.String()
	case map[string]any, []any:
		return Value[float64]{}, fmt.Errorf("%w: %s must be a number", ErrCast, key)
	}

	n, err := cast.ToFloat64E(v)
	if err != nil {
		return Value[float64]{}, fmt.Errorf("%w: %s: %v", ErrCast, key, err)
	}
	return Value[float64]{Set: true, Val: &n}, nil
}
