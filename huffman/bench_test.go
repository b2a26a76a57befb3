package huffman_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/stegram/grammar"
	"github.com/katalvlaran/stegram/huffman"
)

// wideGrammar builds a symbol with n equally weighted alternatives.
func wideGrammar(b *testing.B, n int) *grammar.Grammar {
	b.Helper()
	alts := make([]string, n)
	for i := range alts {
		alts[i] = fmt.Sprintf("word%d [%g]", i, 1.0/float64(n))
	}
	g, err := grammar.ParseString("Start -> WIDE\nWIDE -> " + strings.Join(alts, " | "))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkTable_FirstBuild measures uncached code construction.
func BenchmarkTable_FirstBuild(b *testing.B) {
	g := wideGrammar(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		codec := huffman.NewCodec(g)
		if _, err := codec.Table("WIDE"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTable_CacheHit measures the cached lookup path.
func BenchmarkTable_CacheHit(b *testing.B) {
	g := wideGrammar(b, 64)
	codec := huffman.NewCodec(g)
	if _, err := codec.Table("WIDE"); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Table("WIDE"); err != nil {
			b.Fatal(err)
		}
	}
}
