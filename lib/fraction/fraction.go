package fraction

import (
	"math"
	"math/big"
)

// Fraction is an exact rational number. Scaling math stays in rational
// form end to end so repeated multiplies never accumulate float error;
// conversion to float64 is only for sign/integrality checks.
//
// The zero value is 0/1.
type Fraction struct {
	rat *big.Rat
}

func New(num, den int64) (Fraction, bool) {
	if den == 0 {
		return Fraction{}, false
	}
	return Fraction{rat: big.NewRat(num, den)}, true
}

func FromFloat(v float64) (Fraction, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fraction{}, false
	}
	return Fraction{rat: new(big.Rat).SetFloat64(v)}, true
}

// Parse accepts integers ("2"), decimals ("1.5") and bare fractions
// ("3/4"). Mixed numbers are the quantity parser's job, not ours.
func Parse(s string) (Fraction, bool) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, false
	}
	return Fraction{rat: rat}, true
}

func (f Fraction) value() *big.Rat {
	if f.rat == nil {
		return new(big.Rat)
	}
	return f.rat
}

func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{rat: new(big.Rat).Mul(f.value(), g.value())}
}

func (f Fraction) Float64() float64 {
	v, _ := f.value().Float64()
	return v
}

func (f Fraction) IsInt() bool {
	return f.value().IsInt()
}

func (f Fraction) Positive() bool {
	return f.value().Sign() > 0
}

// Simplify returns the smallest-denominator fraction within tolerance
// of f, found by walking the convergents of f's continued fraction.
// Simplify(0.05) turns 0.666... into 2/3 rather than keeping an exact
// but unreadable denominator.
func (f Fraction) Simplify(tolerance float64) Fraction {
	target := f.Float64()
	neg := target < 0
	v := math.Abs(target)

	// convergent h/k, with the two previous convergents behind it
	ph, pk := int64(1), int64(0)
	pph, ppk := int64(0), int64(1)

	x := v
	for i := 0; i < 32; i++ {
		a := int64(math.Floor(x))
		h := a*ph + pph
		k := a*pk + ppk
		if k != 0 && math.Abs(float64(h)/float64(k)-v) < tolerance {
			if neg {
				h = -h
			}
			out, ok := New(h, k)
			if !ok {
				return f
			}
			return out
		}
		pph, ppk = ph, pk
		ph, pk = h, k

		rem := x - math.Floor(x)
		if rem < 1e-12 {
			break
		}
		x = 1 / rem
	}
	return f
}

// Mixed formats the fraction for display: whole values come out as bare
// integers ("2"), proper fractions as "n/d" and everything else as a
// mixed fraction ("1 1/2"). Non-positive values render as "0" since a
// recipe never calls for a negative quantity.
func (f Fraction) Mixed() string {
	rat := f.value()
	if rat.Sign() <= 0 {
		return "0"
	}
	if rat.IsInt() {
		return rat.Num().String()
	}

	num := new(big.Int).Set(rat.Num())
	den := rat.Denom()
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if whole.Sign() == 0 {
		return rem.String() + "/" + den.String()
	}
	return whole.String() + " " + rem.String() + "/" + den.String()
}
