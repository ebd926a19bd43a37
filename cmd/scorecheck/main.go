// Command scorecheck scores weather observation fixtures offline, using the
// same domain scoring the API serves. Useful for checking threshold changes
// against recorded weather without calling the provider.
//
// Usage:
//
//	go run ./cmd/scorecheck \
//	  -in testdata/observations.json \
//	  -out scores.json \
//	  -legacy
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/launch-score-service/internal/domain"
)

// fixture is one named observation in the input file.
type fixture struct {
	Name string `json:"name"`
	domain.WeatherObservation
}

// UnmarshalJSON defaults an omitted visibility the way the live adapter does,
// so a missing field is not scored as zero visibility.
func (f *fixture) UnmarshalJSON(data []byte) error {
	type plain fixture
	p := plain{WeatherObservation: domain.WeatherObservation{Visibility: domain.DefaultVisibility}}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = fixture(p)
	return nil
}

// result is one scored fixture in the output file.
type result struct {
	Name string `json:"name"`
	domain.ScoreBreakdown
	LegacyScore *float64 `json:"legacy_score,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("scorecheck", flag.ContinueOnError)
	in := fs.String("in", "", "JSON array of named observations")
	out := fs.String("out", "", "output path for scored results (default stdout)")
	legacy := fs.Bool("legacy", false, "include the deprecated two-factor score")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		fs.Usage()
		return fmt.Errorf("missing required flag: -in")
	}

	fixtures, err := readFixtures(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}

	results := scoreAll(fixtures, *legacy)

	if *out == "" {
		return encode(stdout, results)
	}
	if err := writeJSON(*out, results); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	log.Printf("scored %d observations: %s", len(results), *out)
	return nil
}

func readFixtures(path string) ([]fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixtures []fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fixtures, nil
}

func scoreAll(fixtures []fixture, withLegacy bool) []result {
	results := make([]result, 0, len(fixtures))
	for _, f := range fixtures {
		r := result{Name: f.Name, ScoreBreakdown: domain.Score(f.WeatherObservation)}
		if withLegacy {
			v := domain.LegacyCompositeScore(f.WeatherObservation) //nolint:staticcheck // side-by-side comparison
			r.LegacyScore = &v
		}
		results = append(results, r)
	}
	return results
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
