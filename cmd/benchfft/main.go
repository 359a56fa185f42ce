// Command benchfft measures transform throughput across sizes and
// precisions. Rates are reported in Cooley–Tukey gigaflops,
// CTG = 5·n·log2(n) / (time in ns).
package main

import (
	"flag"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	genfft "github.com/cwbudde/algo-genfft"
)

func main() {
	var (
		sizeList = flag.String("sizes", "128,1024,4096,65536,100,1000", "comma-separated sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		scalar   = flag.Bool("scalar", false, "disable vector passes")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		log.Fatal().Msg("no sizes specified")
	}

	genfft.Prime()

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		res32 := bench32(rnd, n, *iters, *warmup, *scalar)
		log.Info().
			Int("size", n).
			Str("type", "float32").
			Float64("ns_op", res32).
			Float64("ctg", ctg(n, res32)).
			Msg("forward")

		res64 := bench64(rnd, n, *iters, *warmup, *scalar)
		log.Info().
			Int("size", n).
			Str("type", "float64").
			Float64("ns_op", res64).
			Float64("ctg", ctg(n, res64)).
			Msg("forward")
	}
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}

func ctg(n int, nsPerOp float64) float64 {
	if nsPerOp <= 0 {
		return 0
	}

	return 5 * float64(n) * math.Log2(float64(n)) / nsPerOp
}

func bench32(rnd *rand.Rand, n, iters, warmup int, scalar bool) float64 {
	cfg := genfft.Config[float32]{DisableSIMD: scalar}

	re := make([]float32, n)
	im := make([]float32, n)

	for i := range re {
		re[i] = float32(2*rnd.Float64() - 1)
		im[i] = float32(2*rnd.Float64() - 1)
	}

	for i := 0; i < warmup; i++ {
		_ = cfg.FFT(n, re, im, re, im, 1)
	}

	start := time.Now()

	for i := 0; i < iters; i++ {
		_ = cfg.FFT(n, re, im, re, im, 1)
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func bench64(rnd *rand.Rand, n, iters, warmup int, scalar bool) float64 {
	cfg := genfft.Config[float64]{DisableSIMD: scalar}

	re := make([]float64, n)
	im := make([]float64, n)

	for i := range re {
		re[i] = 2*rnd.Float64() - 1
		im[i] = 2*rnd.Float64() - 1
	}

	for i := 0; i < warmup; i++ {
		_ = cfg.FFT(n, re, im, re, im, 1)
	}

	start := time.Now()

	for i := 0; i < iters; i++ {
		_ = cfg.FFT(n, re, im, re, im, 1)
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}
