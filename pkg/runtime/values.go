package runtime

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindNull
	KindVoid
)

// String returns the user-facing data type name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

//-----------------------------------------------------------------------------
// Numbers
//-----------------------------------------------------------------------------

// NumberValue is either integral (Int != nil) or floating.
type NumberValue struct {
	Int   *big.Int
	Float float64
}

func (NumberValue) Kind() Kind { return KindNumber }
func (NumberValue) isValue() {}

// NewNumber normalizes f: a value with no fractional part becomes integral.
func NewNumber(f float64) NumberValue {
	if math.IsInf(f, 0) || math.IsNaN(f) || math.Trunc(f) != f {
		return NumberValue{Float: f}
	}
	n, _ := new(big.Float).SetFloat64(f).Int(nil)
	return NumberValue{Int: n}
}

// NewInteger wraps n without copying.
func NewInteger(n *big.Int) NumberValue {
	return NumberValue{Int: n}
}

// IntegerFromInt64 is a convenience for small integral values.
func IntegerFromInt64(n int64) NumberValue {
	return NumberValue{Int: big.NewInt(n)}
}

// IsInteger reports whether the value is held exactly as an integer.
func (v NumberValue) IsInteger() bool {
	return v.Int != nil
}

// Float64 converts the value to the nearest float64.
func (v NumberValue) Float64() float64 {
	if v.Int == nil {
		return v.Float
	}
	f, _ := new(big.Float).SetInt(v.Int).Float64()
	return f
}

// IsZero reports whether the value equals zero.
func (v NumberValue) IsZero() bool {
	if v.Int != nil {
		return v.Int.Sign() == 0
	}
	return v.Float == 0
}

// Sign returns -1, 0 or +1. NaN reports 0.
func (v NumberValue) Sign() int {
	if v.Int != nil {
		return v.Int.Sign()
	}
	switch {
	case v.Float > 0:
		return 1
	case v.Float < 0:
		return -1
	default:
		return 0
	}
}

func (v NumberValue) String() string {
	if v.Int != nil {
		return v.Int.String()
	}
	return FormatFloat(v.Float)
}

// FormatFloat renders f in shortest round-trip form, switching to
// scientific notation when the decimal exponent is below -4 or at least 16.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if idx := strings.IndexByte(sci, 'e'); idx >= 0 {
		exp, _ = strconv.Atoi(sci[idx+1:])
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }
func (BoolValue) isValue() {}

func (v BoolValue) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }
func (NullValue) isValue() {}
func (NullValue) String() string { return "null" }

// VoidValue is produced by statements that yield nothing.
type VoidValue struct{}

func (VoidValue) Kind() Kind { return KindVoid }
func (VoidValue) isValue() {}
func (VoidValue) String() string { return "void" }

// TypeName returns the data type name used in error messages.
func TypeName(v Value) string {
	if v == nil {
		return "null"
	}
	return v.Kind().String()
}
