package sample

import "testing"

func BenchmarkEncode(b *testing.B) {
	set := benchmarkSet(b, 4096)

	for _, ct := range allCompressions {
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Encode(set, WithCompression(ct)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	set := benchmarkSet(b, 4096)

	for _, ct := range allCompressions {
		data, err := Encode(set, WithCompression(ct))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Decode[float64](data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFingerprint(b *testing.B) {
	set := benchmarkSet(b, 4096)

	b.ReportAllocs()
	for b.Loop() {
		_ = set.Fingerprint()
	}
}
