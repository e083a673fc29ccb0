package moment_test

import (
	"testing"

	"github.com/katalvlaran/ncpol/moment"
	"github.com/katalvlaran/ncpol/operator"
)

// benchmarkBuild measures moment-matrix construction for n projective
// Hermitian generators at the given level.
func benchmarkBuild(b *testing.B, n, level int) {
	gens := make([]operator.Generator, n)
	subs := moment.NewSubstitutions()
	for i := range gens {
		gens[i] = operator.NewHermitian("X" + string(rune('0'+i)))
		if err := subs.Projective(gens[i]); err != nil {
			b.Fatalf("rule setup failed: %v", err)
		}
	}
	basis, err := operator.GenerateBasis(gens, level)
	if err != nil {
		b.Fatalf("basis setup failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := moment.Build(basis, subs); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Herm4Level2 benchmarks a 21×21 moment matrix.
func BenchmarkBuild_Herm4Level2(b *testing.B) {
	benchmarkBuild(b, 4, 2)
}

// BenchmarkBuild_Herm4Level3 benchmarks an 85×85 moment matrix.
func BenchmarkBuild_Herm4Level3(b *testing.B) {
	benchmarkBuild(b, 4, 3)
}
