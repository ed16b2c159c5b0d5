package scanner

import (
	"context"
	"fmt"
	"testing"

	"github.com/vvka-141/secretscan/internal/files/filesystem"
)

func benchmarkScan(b *testing.B, workers int) {
	mfs := filesystem.NewMemoryFileSystem("/bench")
	for i := 0; i < 500; i++ {
		mfs.AddFile(fmt.Sprintf("dir%02d/file%04d.conf", i%20, i), "user=admin\npassword=changeme\nregion=eu-west-1\n")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewScanner(WithFileSystem(mfs), WithWorkers(workers)).Scan(context.Background(), "/bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScan_Sequential(b *testing.B) { benchmarkScan(b, 1) }
func BenchmarkScan_Workers8(b *testing.B)   { benchmarkScan(b, 8) }
