package domain

// Part is a single inventory record. Nil fields were never set or were
// cleared with an explicit null.
type Part struct {
	ID       string   `json:"_id"`
	Type     *string  `json:"type,omitempty"`
	Brand    *string  `json:"brand,omitempty"`
	Model    *string  `json:"model,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Clone returns a deep copy so stores never share pointers with callers.
func (p Part) Clone() Part {
	return Part{
		ID:       p.ID,
		Type:     clonePtr(p.Type),
		Brand:    clonePtr(p.Brand),
		Model:    clonePtr(p.Model),
		Quantity: clonePtr(p.Quantity),
		Price:    clonePtr(p.Price),
	}
}

// ToMap renders the part the way it is serialised to clients.
func (p Part) ToMap() map[string]any {
	m := map[string]any{"_id": p.ID}
	if p.Type != nil {
		m[FieldType] = *p.Type
	}
	if p.Brand != nil {
		m[FieldBrand] = *p.Brand
	}
	if p.Model != nil {
		m[FieldModel] = *p.Model
	}
	if p.Quantity != nil {
		m[FieldQuantity] = *p.Quantity
	}
	if p.Price != nil {
		m[FieldPrice] = *p.Price
	}
	return m
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
