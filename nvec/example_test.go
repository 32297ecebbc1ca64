package nvec_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-nvec/numeric"
	"github.com/cwbudde/algo-nvec/nvec"
)

func ExampleVector_Add() {
	a := nvec.New3([3]float64{1, 2, 3})
	b := nvec.New3([3]int32{4, -5, 200})

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: f64[5 -3 203]
}

func ExampleVector_Dot() {
	a := nvec.New3([3]int32{1, 2, 3})
	b := nvec.New3([3]int32{3, 2, 1})

	dot, _ := a.Dot(b)
	fmt.Println(dot.Kind(), dot)
	// Output: i32 10
}

func ExampleCross() {
	a := nvec.New3([3]int32{1, 2, 3})
	b := nvec.New3([3]int32{3, 2, 1})

	c, _ := nvec.Cross(a, b)
	fmt.Println(c)
	// Output: i32[-4 8 -4]
}

func ExampleVector_Magnitude() {
	m, _ := nvec.New3([3]int32{1, 2, 3}).Magnitude()
	fmt.Println(m)
	// Output: 3.7416573867739413
}

func ExampleScalarMul() {
	v := nvec.New2([2]uint8{3, 4})

	left, _ := nvec.ScalarMul(int16(-2), v)
	right, _ := nvec.MulScalar(v, int16(-2))
	fmt.Println(left, right)
	// Output: i16[-6 -8] i16[-6 -8]
}

func ExampleVector_Add_noPromotion() {
	a := nvec.New2([2]numeric.I128{numeric.I128From64(1), numeric.I128From64(2)})
	b := nvec.New2([2]float64{1, 2})

	_, err := a.Add(b)
	fmt.Println(errors.Is(err, numeric.ErrNoPromotion))
	fmt.Println(err)
	// Output:
	// true
	// nvec: add: numeric: no promotion rule for i128 and f64
}
