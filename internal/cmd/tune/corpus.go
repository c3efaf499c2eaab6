package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ulikunitz/zdata"

	"github.com/filiphrenic/compression/internal/tuning"
	"github.com/filiphrenic/compression/lzw"
)

var (
	_silesiaFiles []tuning.File
	silesiaOnce   sync.Once
)

func silesiaFiles() []tuning.File {
	silesiaOnce.Do(func() {
		var err error
		_silesiaFiles, err = tuning.Files(zdata.Silesia)
		if err != nil {
			panic(fmt.Errorf("silesiaFiles() error %w", err))
		}
	})
	return _silesiaFiles
}

func writerBenchmark(cfg lzw.WriterConfig) func(b *testing.B) {
	return func(b *testing.B) {
		files := silesiaFiles()
		size := tuning.Size(files)
		b.SetBytes(size)
		var (
			err            error
			compressedSize int64
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize, err = tuning.LZWCompress(files, cfg)
			if err != nil {
				b.Fatalf("LZWCompress error %s", err)
			}
		}
		b.StopTimer()
		r := float64(compressedSize) / float64(size)
		b.ReportMetric(r, "c/u")
	}
}

// gifBenchmark measures compress/lzw with 8-bit literals.
func gifBenchmark(b *testing.B) {
	files := silesiaFiles()
	size := tuning.Size(files)
	b.SetBytes(size)
	var (
		err            error
		compressedSize int64
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		compressedSize, err = tuning.GIFCompress(files)
		if err != nil {
			b.Fatalf("GIFCompress error %s", err)
		}
	}
	b.StopTimer()
	r := float64(compressedSize) / float64(size)
	b.ReportMetric(r, "c/u")
}
