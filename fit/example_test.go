package fit_test

import (
	"fmt"

	"github.com/cwbudde/algo-fit/fit"
	"github.com/cwbudde/algo-fit/lineshape"
)

func ExampleLorentzian() {
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = float64(i) * 10 / 199
		d := (x[i] - 4) / 0.5
		y[i] = 5 + 3/(1+d*d)
	}

	res, err := fit.Lorentzian(x, y)
	if err != nil {
		fmt.Println(err)
		return
	}

	lor := res.Curve.(*lineshape.Lorentzian)
	fmt.Printf("center=%.3f hwhm=%.3f q=%.1f\n", lor.Center, lor.HWHM, lor.Q())

	// Output:
	// center=4.000 hwhm=0.500 q=4.0
}

func ExamplePolynomial() {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2 + 3*v - v*v
	}

	res, err := fit.Polynomial(x, y, fit.WithGuess([]float64{0, 0, 0}))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("a0=%.1f a1=%.1f a2=%.1f\n", res.Params[0], res.Params[1], res.Params[2])

	// Output:
	// a0=2.0 a1=3.0 a2=-1.0
}
