package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/datatypes"
)

// ErrInvalidAttribute is returned when a fillable attribute cannot be
// converted to its column type
var ErrInvalidAttribute = errors.New("invalid attribute")

// TemplateFillable lists the attributes accepted by mass-assignment
var TemplateFillable = []string{"store_id", "name", "options"}

// ProductOptionTemplate is a reusable set of options owned by a store
type ProductOptionTemplate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StoreID   uint           `gorm:"not null;index" json:"store_id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Options   datatypes.JSON `json:"options"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	ProductOptions []ProductOption `gorm:"foreignKey:TemplateID" json:"product_options,omitempty"`
}

// TableName returns the table name for ProductOptionTemplate
func (ProductOptionTemplate) TableName() string {
	return "commerce_product_option_templates"
}

func (t *ProductOptionTemplate) GetStoreID() uint   { return t.StoreID }
func (t *ProductOptionTemplate) SetStoreID(id uint) { t.StoreID = id }

// NewProductOptionTemplate builds a template from untrusted attributes
func NewProductOptionTemplate(attrs map[string]any) (*ProductOptionTemplate, error) {
	t := &ProductOptionTemplate{}
	if err := t.Fill(attrs); err != nil {
		return nil, err
	}
	return t, nil
}

// Fill assigns the fillable attributes present in attrs. Keys outside
// TemplateFillable are ignored.
func (t *ProductOptionTemplate) Fill(attrs map[string]any) error {
	if v, ok := attrs["store_id"]; ok {
		id, err := toStoreID(v)
		if err != nil {
			return err
		}
		t.StoreID = id
	}
	if v, ok := attrs["name"]; ok {
		switch name := v.(type) {
		case string:
			t.Name = name
		case nil:
			t.Name = ""
		default:
			return fmt.Errorf("%w: name must be a string, got %T", ErrInvalidAttribute, v)
		}
	}
	if v, ok := attrs["options"]; ok {
		if err := t.SetOptions(v); err != nil {
			return err
		}
	}
	return nil
}

// SetOptions encodes v as JSON for the options column. Raw JSON values are
// stored as given once checked to be well formed.
func (t *ProductOptionTemplate) SetOptions(v any) error {
	var raw []byte
	switch o := v.(type) {
	case nil:
		t.Options = nil
		return nil
	case datatypes.JSON:
		raw = o
	case json.RawMessage:
		raw = o
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: options: %v", ErrInvalidAttribute, err)
		}
		t.Options = data
		return nil
	}

	if len(raw) == 0 {
		t.Options = nil
		return nil
	}
	if !json.Valid(raw) {
		return fmt.Errorf("%w: options is not valid JSON", ErrInvalidAttribute)
	}
	t.Options = append(datatypes.JSON(nil), raw...)
	return nil
}

// DecodeOptions decodes the stored options into dst
func (t *ProductOptionTemplate) DecodeOptions(dst any) error {
	if len(t.Options) == 0 {
		return nil
	}
	if err := json.Unmarshal(t.Options, dst); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}
	return nil
}

// OptionsValue decodes the stored options into maps, slices and scalars.
// Numbers come back as json.Number so integers survive unchanged.
func (t *ProductOptionTemplate) OptionsValue() (any, error) {
	if len(t.Options) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(t.Options))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return v, nil
}

func toStoreID(v any) (uint, error) {
	var n int64
	switch x := v.(type) {
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: store_id %d out of range", ErrInvalidAttribute, x)
		}
		return x, nil
	case uint8:
		return uint(x), nil
	case uint16:
		return uint(x), nil
	case uint32:
		return uint(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%w: store_id %d out of range", ErrInvalidAttribute, x)
		}
		return uint(x), nil
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%w: store_id must be a whole number, got %v", ErrInvalidAttribute, x)
		}
		// MaxInt64 itself rounds up to 2^63 as a float64.
		if x >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: store_id %v out of range", ErrInvalidAttribute, x)
		}
		n = int64(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: store_id: %v", ErrInvalidAttribute, err)
		}
		n = i
	default:
		return 0, fmt.Errorf("%w: store_id must be numeric, got %T", ErrInvalidAttribute, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: store_id must not be negative", ErrInvalidAttribute)
	}
	return uint(n), nil
}
