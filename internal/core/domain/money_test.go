package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

func TestMoney_JSONIsANumber(t *testing.T) {
	b, err := json.Marshal(struct {
		Salario Money `json:"salario"`
	}{Salario: MustMoney("2150.75")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"salario": 2150.75}`, string(b))
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`1234.5`), &m))
	assert.True(t, m.Equal(MustMoney("1234.50")))

	require.NoError(t, json.Unmarshal([]byte(`"99.99"`), &m))
	assert.Equal(t, "99.99", m.String())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`true`), &m))
}

func TestMoney_ExactArithmetic(t *testing.T) {
	var a, b Money
	require.NoError(t, json.Unmarshal([]byte(`0.1`), &a))
	require.NoError(t, json.Unmarshal([]byte(`0.2`), &b))
	assert.Equal(t, "0.3", a.d.Add(b.d).String())
}

func TestMoney_BSON(t *testing.T) {
	type doc struct {
		Valor Money `bson:"valor"`
	}

	raw, err := bson.Marshal(doc{Valor: MustMoney("15000.50")})
	require.NoError(t, err)
	assert.Equal(t, bsontype.Decimal128, bson.Raw(raw).Lookup("valor").Type)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.True(t, out.Valor.Equal(MustMoney("15000.5")))
}

func TestMoney_BSONFromLegacyDouble(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"valor": 1800.25})
	require.NoError(t, err)

	var out struct {
		Valor Money `bson:"valor"`
	}
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, "1800.25", out.Valor.String())
}
