package query

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"
)

type celsius int16

func TestLiteralOf(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	tests := []struct {
		name string
		in   any
		kind LiteralKind
		lex  string
	}{
		{"string", "hi", KindString, "hi"},
		{"bool", true, KindBoolean, "true"},
		{"int", 42, KindInteger, "42"},
		{"int64", int64(-7), KindInteger, "-7"},
		{"uint32", uint32(50), KindUnsigned, "50"},
		{"uint64", uint64(50), KindUnsigned, "50"},
		{"float32", float32(0.5), KindFloat, "0.5"},
		{"float64", 2.25, KindFloat, "2.25"},
		{"time", ts, KindDateTime, "2024-03-01T11:00:00Z"},
		{"decimal", apd.New(12345, -2), KindDecimal, "123.45"},
		{"json integer", json.Number("12"), KindInteger, "12"},
		{"json float", json.Number("1.5"), KindFloat, "1.5"},
		{"named int", celsius(-3), KindInteger, "-3"},
		{"literal", Bool(false), KindBoolean, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			l, err := LiteralOf(tt.in)
			require.NoError(err)
			require.Equal(tt.kind, l.Kind())
			require.Equal(tt.lex, l.Lexical())
		})
	}
}

func TestLiteralOf_Unsupported(t *testing.T) {
	require := require.New(t)
	_, err := LiteralOf(struct{}{})
	require.ErrorIs(err, ErrInvalidLiteral)
	_, err = LiteralOf(nil)
	require.ErrorIs(err, ErrInvalidLiteral)
	_, err = LiteralOf(Literal{})
	require.ErrorIs(err, ErrInvalidLiteral)
}

func TestLiteral_SignednessIsPreserved(t *testing.T) {
	require := require.New(t)
	u, err := LiteralOf(uint32(50))
	require.NoError(err)
	i, err := LiteralOf(int64(50))
	require.NoError(err)
	require.NotEqual(u, i)
	require.Equal("50^^xsd:nonNegativeInteger", u.String())
	require.Equal("50^^xsd:integer", i.String())
}

func TestDecimal(t *testing.T) {
	t.Run("canonical text", func(t *testing.T) {
		require := require.New(t)
		d, err := Decimal("1.50E+2")
		require.NoError(err)
		require.Equal(KindDecimal, d.Kind())
		require.Equal("150", d.Lexical())
	})

	t.Run("rejects non-finite", func(t *testing.T) {
		require := require.New(t)
		_, err := Decimal("NaN")
		require.ErrorIs(err, ErrInvalidLiteral)
		_, err = Decimal("Infinity")
		require.ErrorIs(err, ErrInvalidLiteral)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Decimal("1.2.3")
		require.ErrorIs(t, err, ErrInvalidLiteral)
		require.Panics(t, func() { MustDecimal("nope") })
	})
}

func TestDatesAndTimes(t *testing.T) {
	require := require.New(t)

	d, err := ParseDate("2024-01-02")
	require.NoError(err)
	require.Equal(Date(2024, time.January, 2), d)
	require.Equal("2024-01-02^^xsd:date", d.String())

	_, err = ParseDate("02/01/2024")
	require.ErrorIs(err, ErrInvalidLiteral)

	dt, err := ParseDateTime("2024-01-02T03:04:05Z")
	require.NoError(err)
	require.Equal(KindDateTime, dt.Kind())
	require.Equal("2024-01-02T03:04:05Z", dt.Lexical())

	require.Equal("13:30:00", TimeOfDay(13, 30, 0, 0).Lexical())
	require.Equal(`"x"`, String("x").String())
	require.False(Literal{}.IsValid())
}
