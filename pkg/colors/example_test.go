package colors_test

import (
	"fmt"

	"github.com/ridgelab/fpview/pkg/colors"
)

func ExampleNormalize() {
	values := []float64{1, 2, 3, 4}
	for _, v := range values {
		fmt.Println(colors.Normalize(v, 1, 4))
	}
	// Output:
	// 0
	// 0.3333333333333333
	// 0.6666666666666666
	// 1
}

func ExampleHSB() {
	fmt.Printf("%#08x\n", colors.HSB(0, 1, 1))     // pure red
	fmt.Printf("%#08x\n", colors.HSB(1.0/3, 1, 1)) // pure green
	fmt.Printf("%#08x\n", colors.HSB(0.5, 0, 0.5)) // mid gray
	// Output:
	// 0xffff0000
	// 0xff00ff00
	// 0xff808080
}
