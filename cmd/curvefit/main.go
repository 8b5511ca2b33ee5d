// Command curvefit reads a JSON point sequence on stdin and writes its
// fitted cubic Bézier knots to stdout. It exists for manual inspection
// during development; it carries no algorithmic logic of its own.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/ideasman42/curvefit-go/curvefit"
)

type inputDoc struct {
	Dims   int       `json:"dims"`
	Points []float64 `json:"points"`
}

type outputDoc struct {
	Cubics      []float64 `json:"cubics"`
	OrigIndex   []int     `json:"orig_index"`
	CornerIndex []int     `json:"corner_index"`
}

func main() {
	var (
		errorThreshold = pflag.Float64("error", 1e-3, "error tolerance (linear, not squared)")
		cornerAngle    = pflag.Float64("angle", math.Pi, "corner angle threshold in radians; >= pi disables corner detection")
		useRefit       = pflag.Bool("refit", true, "enable the refit pass")
		useRefitRemove = pflag.Bool("refit-remove", true, "try an outright removal before relocating during refit")
	)
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var doc inputDoc
	if err := json.NewDecoder(os.Stdin).Decode(&doc); err != nil {
		log.Fatal().Err(err).Msg("decode input")
	}

	result, err := curvefit.Fit(doc.Points, doc.Dims, *errorThreshold,
		curvefit.WithCornerAngle(*cornerAngle),
		curvefit.WithRefit(*useRefit),
		curvefit.WithRefitRemove(*useRefitRemove),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("fit")
	}

	log.Info().
		Int("samples", len(doc.Points)/max(doc.Dims, 1)).
		Int("out_len", result.OutLen()).
		Int("corners", len(result.CornerIndex)).
		Msg("fit complete")

	out := outputDoc{
		Cubics:      result.Cubics,
		OrigIndex:   result.OrigIndex,
		CornerIndex: result.CornerIndex,
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
