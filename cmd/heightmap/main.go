package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"heightmap/internal/config"
	"heightmap/internal/profiling"
	"heightmap/internal/terrain"

	"github.com/xlab/closer"
)

func main() {
	defer closer.Close()
	closer.Bind(func() {
		if summary := profiling.TopN(5); summary != "" {
			log.Printf("timings: %s", summary)
		}
	})

	var (
		size       = flag.Int("size", config.GetSize(), "grid side length, 2^k+1")
		decay      = flag.Float64("decay", config.GetDecay(), "amplitude decay per level, in (0,1)")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "seed of the first grid")
		count      = flag.Int("count", 1, "number of grids to generate in parallel")
		hashRand   = flag.Bool("hash", false, "use counter-based hash sources instead of math/rand")
		paramsPath = flag.String("params", "", "JSON params file; explicit flags override it")
		normalize  = flag.Bool("normalize", false, "rescale each grid into [0,1] before reporting")
		resample   = flag.Int("resample", 0, "resample each grid to this host resolution")
	)
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var doc io.Reader
	if *paramsPath != "" {
		f, err := os.Open(*paramsPath)
		if err != nil {
			closer.Fatalln(err)
		}
		defer f.Close()
		doc = f
	}
	params, err := resolveParams(flagValues{size: *size, decay: *decay, seed: *seed, count: *count}, explicit, doc)
	if err != nil {
		closer.Fatalln(err)
	}
	config.SetUseHashRand(*hashRand)

	levels, err := terrain.Levels(params.Size)
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("generating %d grid(s) of %dx%d, %d levels, decay %.3f, seed %d",
		params.Count, params.Size, params.Size, levels, params.Decay, params.Seed)

	stop := profiling.Track("terrain.GenerateBatch")
	grids, err := terrain.GenerateBatch(context.Background(), params.Size, params.Decay, params.Seeds(), config.SourceFactory())
	stop()
	if err != nil {
		closer.Fatalln(err)
	}

	for i, g := range grids {
		if *normalize {
			done := profiling.Track("terrain.Normalize")
			g = g.Normalized()
			done()
		}
		if *resample > 0 {
			done := profiling.Track("terrain.Resample")
			g, err = terrain.Resample(g, *resample)
			done()
			if err != nil {
				closer.Fatalln(err)
			}
		}
		done := profiling.Track("terrain.Normals")
		slope := maxSlope(g)
		done()

		s := g.Stats()
		log.Printf("grid %d seed %d: %dx%d min %.4f max %.4f mean %.4f max slope %.1f°",
			i, params.Seeds()[i], g.Size(), g.Size(), s.Min, s.Max, s.Mean, slope)
	}
}
