package combine_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-microplate/combine"
	"github.com/hasbyte1/go-microplate/plate"
)

func ExampleCombinator_Values() {
	sub := combine.New("subtract", func(a, b int) (int, error) { return a - b, nil })

	padded, _ := sub.Values([]int{1, 2, 3}, []int{10, 20})
	strict, _ := sub.Values([]int{1, 2, 3}, []int{10, 20}, combine.Strict())
	ranged, _ := sub.Values([]int{1, 2, 3, 4}, []int{1, 1, 1}, combine.Range(1, 5))
	fmt.Println(padded, strict, ranged)
	// Output: [-9 -18 3] [-9 -18] [1 2]
}

func ExampleCombinator_WellSets() {
	add := combine.New("add", func(a, b int) (int, error) { return a + b, nil })

	a1, _ := plate.ParseWell("A1", 1, 2)
	b1, _ := plate.ParseWell("B1", 5)
	a1b, _ := plate.ParseWell("A1", 10)
	left, _ := plate.WellSetOf("left", a1, b1)
	right, _ := plate.WellSetOf("right", a1b)

	union, _ := add.WellSets(left, right)
	inter, _ := add.WellSets(left, right, combine.Strict())
	for w := range union.All() {
		fmt.Println(w)
	}
	fmt.Println(inter.Len())
	// Output:
	// A1 [11 2]
	// B1 [5]
	// 1
}

func ExampleCombinator_Plates() {
	div := combine.New("divide", func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})

	p96, _ := plate.NewPlate[int](plate.Plate96, "A")
	p384, _ := plate.NewPlate[int](plate.Plate384, "B")
	_, err := div.Plates(p96, p384)
	fmt.Println(errors.Is(err, plate.ErrDimensionMismatch))
	// Output: true
}

func ExampleTransformer_Values() {
	neg := combine.NewTransformer("negate", func(v int) (int, error) { return -v, nil })

	all, _ := neg.Values([]int{1, 2, 3, 4})
	window, _ := neg.Values([]int{1, 2, 3, 4}, combine.Range(1, 2))
	fmt.Println(all, window)
	// Output: [-1 -2 -3 -4] [-2 -3]
}
