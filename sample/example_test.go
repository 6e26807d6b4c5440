package sample_test

import (
	"fmt"
	"log"

	"github.com/arloliu/quantreg/format"
	"github.com/arloliu/quantreg/sample"
)

func ExampleEncode() {
	set, err := sample.NewSet([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	if err != nil {
		log.Fatal(err)
	}

	data, err := sample.Encode(set, sample.WithCompression(format.CompressionS2))
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := sample.Decode[float64](data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(decoded.Len(), decoded.Xs(), decoded.Ys())
	fmt.Println(decoded.Fingerprint() == set.Fingerprint())

	// Output:
	// 4 [1 2 3 4] [2 4 6 8]
	// true
}
