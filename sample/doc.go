// Package sample provides the paired sample set consumed by the regression package.
//
// A Set holds two equal-length sequences: predictor values (xs), such as
// iteration counts, and response values (ys), such as elapsed time. Sets are
// generic over float32 and float64 and are never modified after construction:
//
//	set, err := sample.NewSet([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
//	if err != nil {
//	    return err
//	}
//	for x, y := range set.All() {
//	    fmt.Println(x, y)
//	}
//
// # Encoding
//
// Encode and Decode convert a Set to and from a compact byte form so callers can
// cache or ship samples between processes. The layout is a 16-byte header
// followed by the columnar payload (all xs, then all ys):
//
//	offset  size  field
//	0       2     magic "QR"
//	2       1     flags: bit0 big-endian, bits1-2 width (1=float32, 2=float64)
//	3       1     compression type
//	4       4     point count
//	8       8     xxHash64 of the uncompressed payload
//	16      ...   payload, compressed with the header's compression type
//
// Header integers use the payload's byte order.
package sample
