//go:build bench

package typogrify

import (
	"context"
	"testing"
)

// BenchmarkConverterPool_HTML benchmarks parallel HTML conversions through
// a pool. No browser is started for HTML output.
func BenchmarkConverterPool_HTML(b *testing.B) {
	pool := NewConverterPool(4, WithStyle(""))
	defer func() { _ = pool.Close() }()

	input := Input{Markdown: "# \"Title\"\n\nSome -- text with CSS & HTML...\n"}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			conv, err := pool.Acquire()
			if err != nil {
				b.Error(err)
				return
			}
			if _, err := conv.Convert(context.Background(), input); err != nil {
				b.Error(err)
			}
			pool.Release(conv)
		}
	})
}
