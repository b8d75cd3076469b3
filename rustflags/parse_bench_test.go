package rustflags

import "testing"

var benchEncoded = Encode(everyVariant)

func BenchmarkDecode(b *testing.B) {
	b.SetBytes(int64(len(benchEncoded)))
	for i := 0; i < b.N; i++ {
		flags := FromEncoded(benchEncoded)
		for _, ok := flags.Next(); ok; _, ok = flags.Next() {
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Encode(FromEncoded(benchEncoded).Collect())
	}
}
