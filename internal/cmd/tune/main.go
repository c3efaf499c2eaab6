package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/kr/pretty"
	"github.com/ulikunitz/lz"

	"github.com/filiphrenic/compression/internal/tuning"
	"github.com/filiphrenic/compression/lzw"
	"github.com/filiphrenic/compression/trie"
)

type preset struct {
	present bool
	cfg     lzw.WriterConfig
	result  testing.BenchmarkResult
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

// Returns the slot index the ratio qualifies for. If no slot can be found ok
// will be false.
func slot(slots []float64, ratio float64) (i int, ok bool) {
	for i, r := range slots {
		if ratio > r {
			return i - 1, i > 0
		}
	}
	return len(slots) - 1, true
}

func disable(cfg *lzw.WriterConfig) { cfg.Capacity = -1 }

func disabled(cfg *lzw.WriterConfig) bool { return cfg.Capacity < 0 }

// worse reports whether a cannot compress better than b. A smaller
// dictionary with the same code width never yields fewer codes on the
// corpus.
func worse(a, b *lzw.WriterConfig) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	return a.Backend == b.Backend && a.CodeWidth == b.CodeWidth &&
		a.Capacity <= b.Capacity
}

func findPresets(slots []float64, configs []lzw.WriterConfig) {
	if len(slots) == 0 {
		log.Fatalf("no slots defined")
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i] > slots[j]
	})
	fmt.Printf("slots %.3f\n", slots)
	rand.Shuffle(len(configs), func(i, j int) {
		configs[i], configs[j] = configs[j], configs[i]
	})

	presets := make([]preset, len(slots))

	i := 0
	n := len(configs)
	for len(configs) > 0 {
		k := len(configs) - 1
		cfg := configs[k]
		configs = configs[:k]
		if disabled(&cfg) {
			continue
		}
		n--

		i++
		result := testing.Benchmark(writerBenchmark(cfg))
		fmt.Printf("%d-%d %s\n", i, n, result)
		si, ok := slot(slots, ratio(result))
		if !ok {
			for i := range configs {
				p := &configs[i]
				if disabled(p) {
					continue
				}
				if worse(p, &cfg) {
					disable(p)
					n--
				}
			}
			continue
		}
		v := mbPerSec(result)
		p := presets[si]
		if p.present && v <= mbPerSec(p.result) {
			fmt.Printf("slot %d - not faster\n", si+1)
			continue
		}
		presets[si] = preset{
			present: true,
			cfg:     cfg,
			result:  result,
		}
		fmt.Printf("slot %d - update\n", si+1)
		pretty.Println(cfg)
	}

	fmt.Printf("\n\n### Result ###\n\n")

	for si, p := range presets {
		if si > 0 {
			fmt.Printf("\n")
		}
		if !p.present {
			fmt.Printf("slot %d - not present\n", si)
			continue
		}
		fmt.Printf("slot %d - \t%.3f c/u\t%.2f MB/s\n",
			si+1, ratio(p.result), mbPerSec(p.result))
		pretty.Println(p.cfg)
	}
}

func makeWriterConfig(k trie.Kind, capacity int) lzw.WriterConfig {
	cfg := lzw.WriterConfig{
		Config: lzw.Config{
			Backend:  k,
			Capacity: capacity,
		},
	}
	if capacity > 1<<16-1 {
		cfg.CodeWidth = 24
	}
	cfg.SetDefaults()
	return cfg
}

func appendConfigs(x []lzw.WriterConfig) (y []lzw.WriterConfig) {
	y = x
	// dense nodes require 1 KiB each
	for capExp := 9; capExp <= 18; capExp++ {
		y = append(y, makeWriterConfig(trie.Dense, 1<<capExp-1))
	}
	for capExp := 9; capExp <= 22; capExp++ {
		y = append(y, makeWriterConfig(trie.Sparse, 1<<capExp-1))
	}
	return y
}

// baselines prints the results of compress/lzw and the number of
// sequences an LZ77 parser finds.
func baselines() {
	result := testing.Benchmark(gifBenchmark)
	fmt.Printf("compress/lzw - \t%.3f c/u\t%.2f MB/s\n",
		ratio(result), mbPerSec(result))

	files := silesiaFiles()
	codes, err := lzw.EncodeCodes(files[0].Data, lzw.Config{})
	if err != nil {
		log.Fatalf("EncodeCodes error %s", err)
	}
	stats, err := tuning.LZParse(files[:1],
		&lz.DHSConfig{WindowSize: 1 << 16})
	if err != nil {
		log.Fatalf("LZParse error %s", err)
	}
	fmt.Printf("%s: %d lzw codes; lz sequences and literals:\n",
		files[0].Name, len(codes))
	pretty.Println(stats)
}

func main() {
	testing.Init()
	baselines()
	configs := appendConfigs(nil)

	slots := []float64{0.60, 0.55, 0.50, 0.45, 0.40, 0.35}
	findPresets(slots, configs)
}
