package interpreter

import (
	"math"
	"math/big"

	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/runtime"
)

// maxPowerBits bounds the size of exact integer powers. Exponentiation of
// big integers is unbounded in time and memory, so a single line such as
// 9 ^ 999999999 could otherwise stall the process.
const maxPowerBits = 1 << 20

func negateNumber(v runtime.NumberValue) runtime.NumberValue {
	if v.IsInteger() {
		return runtime.NewInteger(new(big.Int).Neg(v.Int))
	}
	return runtime.NewNumber(-v.Float)
}

func addNumbers(l, r runtime.NumberValue) runtime.NumberValue {
	if l.IsInteger() && r.IsInteger() {
		return runtime.NewInteger(new(big.Int).Add(l.Int, r.Int))
	}
	return runtime.NewNumber(l.Float64() + r.Float64())
}

func subtractNumbers(l, r runtime.NumberValue) runtime.NumberValue {
	if l.IsInteger() && r.IsInteger() {
		return runtime.NewInteger(new(big.Int).Sub(l.Int, r.Int))
	}
	return runtime.NewNumber(l.Float64() - r.Float64())
}

func multiplyNumbers(l, r runtime.NumberValue) runtime.NumberValue {
	if l.IsInteger() && r.IsInteger() {
		return runtime.NewInteger(new(big.Int).Mul(l.Int, r.Int))
	}
	return runtime.NewNumber(l.Float64() * r.Float64())
}

func divideNumbers(pos diagnostics.Position, l, r runtime.NumberValue) (runtime.Value, error) {
	if r.IsZero() {
		return nil, diagnostics.Math(pos, "Cannot divide %s by 0", l)
	}
	if l.IsInteger() && r.IsInteger() {
		quotient, _ := new(big.Rat).SetFrac(l.Int, r.Int).Float64()
		return runtime.NewNumber(quotient), nil
	}
	return runtime.NewNumber(l.Float64() / r.Float64()), nil
}

func powerNumbers(pos diagnostics.Position, base, exp runtime.NumberValue) (runtime.Value, error) {
	if base.IsZero() && exp.Sign() < 0 {
		return nil, diagnostics.Math(pos, "Cannot raise 0 to a negative power")
	}
	if base.Sign() < 0 && !exp.IsInteger() && !math.IsInf(exp.Float, 0) {
		return nil, diagnostics.Math(pos, "Cannot raise %s to a fractional power", base)
	}
	if base.IsInteger() && exp.IsInteger() && exp.Sign() >= 0 {
		return integerPower(pos, base, exp)
	}
	return runtime.NewNumber(math.Pow(base.Float64(), exp.Float64())), nil
}

func integerPower(pos diagnostics.Position, base, exp runtime.NumberValue) (runtime.Value, error) {
	if base.Int.CmpAbs(big.NewInt(1)) <= 0 {
		// 0, 1 and -1 stay bounded for any exponent.
		if base.Int.Sign() < 0 && exp.Int.Bit(0) == 0 {
			return runtime.IntegerFromInt64(1), nil
		}
		if exp.Int.Sign() == 0 {
			return runtime.IntegerFromInt64(1), nil
		}
		return runtime.NewInteger(new(big.Int).Set(base.Int)), nil
	}
	// |base| >= 2^(bitlen-1), so the result has at least exp*(bitlen-1) bits.
	if exp.Int.Cmp(big.NewInt(maxPowerBits)) > 0 || exp.Int.Int64()*int64(base.Int.BitLen()-1) > maxPowerBits {
		return nil, diagnostics.Math(pos, "Result of %s ^ %s is too large", base, exp)
	}
	return runtime.NewInteger(new(big.Int).Exp(base.Int, exp.Int, nil)), nil
}
