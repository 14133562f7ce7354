package expr

import (
	"math"
	"math/cmplx"
	"strconv"
)

// FormatNumber renders v as the canonical decimal literal stored on Number
// nodes. It is deliberately lossless (strconv's shortest round-trip 'g'
// format) rather than the fixed "%.0lf" the original implementation this
// system was ported from used, which truncated fractional parts and broke
// round-tripping for values like 0.5 — see the Open Question in SPEC_FULL.md.
//
// When v has a non-zero imaginary part, the literal is rendered with a
// trailing 'i' per the complex-variant grammar in §4.3.
func FormatNumber(v complex128) string {
	re, im := real(v), imag(v)
	if im == 0 {
		return formatFloat(re)
	}

	if re == 0 {
		return formatFloat(im) + "i"
	}

	sign := "+"
	if im < 0 {
		sign = ""
	}
	return formatFloat(re) + sign + formatFloat(im) + "i"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// applyFunction evaluates the unary function identified by code at z. Real
// inputs (Im(z) == 0) are evaluated with the math package so that domain
// violations produce the NaN/Inf the host's real floating-point semantics
// would, per §4.7; inputs with a non-zero imaginary part take the
// math/cmplx path instead. The two paths are kept in exact correspondence
// so that evaluating a real expression never silently goes complex.
func applyFunction(code Code, z complex128) complex128 {
	if imag(z) == 0 {
		return complex(realApply(code, real(z)), 0)
	}
	return complexApply(code, z)
}

func realApply(code Code, x float64) float64 {
	switch code {
	case CodeSin:
		return math.Sin(x)
	case CodeCos:
		return math.Cos(x)
	case CodeTan:
		return math.Tan(x)
	case CodeCot:
		return 1 / math.Tan(x)
	case CodeSinh:
		return math.Sinh(x)
	case CodeCosh:
		return math.Cosh(x)
	case CodeTanh:
		return math.Tanh(x)
	case CodeCoth:
		return 1 / math.Tanh(x)
	case CodeArcsin:
		return math.Asin(x)
	case CodeArccos:
		return math.Acos(x)
	case CodeArctan:
		return math.Atan(x)
	case CodeArccot:
		return math.Atan(1 / x)
	case CodeArcsinh:
		return math.Asinh(x)
	case CodeArccosh:
		return math.Acosh(x)
	case CodeArctanh:
		return math.Atanh(x)
	case CodeArccoth:
		return math.Atanh(1 / x)
	case CodeExp:
		return math.Exp(x)
	case CodeLn:
		return math.Log(x)
	case CodeLg:
		return math.Log10(x)
	case CodeSqrt:
		return math.Sqrt(x)
	case CodeCbrt:
		return math.Cbrt(x)
	default:
		panic("expr: unknown function code in realApply")
	}
}

func complexApply(code Code, z complex128) complex128 {
	switch code {
	case CodeSin:
		return cmplx.Sin(z)
	case CodeCos:
		return cmplx.Cos(z)
	case CodeTan:
		return cmplx.Tan(z)
	case CodeCot:
		return cmplx.Cos(z) / cmplx.Sin(z)
	case CodeSinh:
		return cmplx.Sinh(z)
	case CodeCosh:
		return cmplx.Cosh(z)
	case CodeTanh:
		return cmplx.Tanh(z)
	case CodeCoth:
		return cmplx.Cosh(z) / cmplx.Sinh(z)
	case CodeArcsin:
		return cmplx.Asin(z)
	case CodeArccos:
		return cmplx.Acos(z)
	case CodeArctan:
		return cmplx.Atan(z)
	case CodeArccot:
		return cmplx.Atan(1 / z)
	case CodeArcsinh:
		return cmplx.Asinh(z)
	case CodeArccosh:
		return cmplx.Acosh(z)
	case CodeArctanh:
		return cmplx.Atanh(z)
	case CodeArccoth:
		return cmplx.Atanh(1 / z)
	case CodeExp:
		return cmplx.Exp(z)
	case CodeLn:
		return cmplx.Log(z)
	case CodeLg:
		return cmplx.Log10(z)
	case CodeSqrt:
		return cmplx.Sqrt(z)
	case CodeCbrt:
		return cmplx.Pow(z, complex(1.0/3.0, 0))
	default:
		panic("expr: unknown function code in complexApply")
	}
}

func applyOperator(code Code, l, r complex128) complex128 {
	switch code {
	case CodeAdd:
		return l + r
	case CodeSub:
		return l - r
	case CodeMul:
		return l * r
	case CodeDiv:
		return l / r
	case CodePow:
		if imag(l) == 0 && imag(r) == 0 {
			return complex(math.Pow(real(l), real(r)), 0)
		}
		return cmplx.Pow(l, r)
	default:
		panic("expr: unknown operator code in applyOperator")
	}
}
