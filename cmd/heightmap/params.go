package main

import (
	"io"

	"heightmap/internal/config"
)

// flagValues holds the parsed generation flags.
type flagValues struct {
	size  int
	decay float64
	seed  int64
	count int
}

// resolveParams layers the sources in order: process defaults with the seed
// flag, then the params document if any, then flags set on the command line.
// A document without a seed keeps the seed flag, whose default is the clock.
func resolveParams(flags flagValues, explicit map[string]bool, doc io.Reader) (config.Params, error) {
	params := config.DefaultParams()
	params.Seed = flags.seed
	if doc != nil {
		loaded, err := config.LoadParamsOver(doc, params)
		if err != nil {
			return config.Params{}, err
		}
		params = loaded
	}

	if explicit["size"] {
		params.Size = flags.size
	}
	if explicit["decay"] {
		params.Decay = flags.decay
	}
	if explicit["seed"] {
		params.Seed = flags.seed
	}
	if explicit["count"] {
		params.Count = flags.count
	}
	if err := params.Validate(); err != nil {
		return config.Params{}, err
	}
	return params, nil
}
