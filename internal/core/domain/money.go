package domain

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is an exact monetary amount (salaries, contract values).
// JSON carries it as a plain number; BSON as Decimal128.
type Money struct {
	d decimal.Decimal
}

func MustMoney(s string) Money {
	return Money{d: decimal.RequireFromString(s)}
}

func (m Money) String() string     { return m.d.String() }
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %s: expected a number", data)
	}
	m.d = d
	return nil
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.d.String())
	if err != nil {
		return 0, nil, fmt.Errorf("encode amount %s: %w", m.d, err)
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Decimal128:
		d, err := decimal.NewFromString(rv.Decimal128().String())
		if err != nil {
			return err
		}
		m.d = d
	case bsontype.Double:
		m.d = decimal.NewFromFloat(rv.Double())
	case bsontype.Int32:
		m.d = decimal.NewFromInt32(rv.Int32())
	case bsontype.Int64:
		m.d = decimal.NewFromInt(rv.Int64())
	case bsontype.String:
		d, err := decimal.NewFromString(rv.StringValue())
		if err != nil {
			return err
		}
		m.d = d
	case bsontype.Null:
		m.d = decimal.Zero
	default:
		return fmt.Errorf("cannot decode BSON %s into Money", t)
	}
	return nil
}
