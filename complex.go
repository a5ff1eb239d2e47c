package julia

// Complex is a complex number with float64 parts.
//
// Arithmetic is spelled out with explicit float64 conversions so that the
// compiler never fuses a multiply and add; iterates must match plain IEEE
// double evaluation bit for bit.
type Complex struct {
	Re float64
	Im float64
}

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Mul returns a * b.
func Mul(a, b Complex) Complex {
	return Complex{
		Re: float64(a.Re*b.Re) - float64(a.Im*b.Im),
		Im: float64(a.Re*b.Im) + float64(a.Im*b.Re),
	}
}

// AbsSq returns the squared magnitude re² + im².
func (z Complex) AbsSq() float64 {
	return float64(z.Re*z.Re) + float64(z.Im*z.Im)
}
