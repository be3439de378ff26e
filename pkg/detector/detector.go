// Package detector provides automatic input format detection for
// delimited URL lists.
package detector

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultCandidates are the delimiters tested against sampled input.
var DefaultCandidates = []rune{',', ';', '\t', '|'}

// DetectionResult holds the result of analyzing an input sample.
type DetectionResult struct {
	Matches      []DelimiterMatch // Candidates sorted by confidence descending
	SampledLines int              // Number of lines sampled
	HasHeader    bool             // Whether the first line looks like a header row
}

// DelimiterMatch represents one candidate delimiter with its score.
type DelimiterMatch struct {
	Delimiter  rune
	Confidence float64 // 0.0 to 1.0: fraction of lines with the modal field count
	FieldCount int     // Modal number of fields per line
	SampleLine string  // Example line from the sample
}

// Detector analyzes input samples to identify the field delimiter and
// header presence.
type Detector struct {
	candidates []rune
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithCandidates overrides the candidate delimiters.
func WithCandidates(candidates ...rune) Option {
	return func(d *Detector) {
		if len(candidates) > 0 {
			d.candidates = candidates
		}
	}
}

// New creates a new Detector with default candidates.
func New(opts ...Option) *Detector {
	d := &Detector{
		candidates: DefaultCandidates,
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a file and returns the detected format.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of input lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	sample := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			sample = append(sample, line)
		}
	}

	result := &DetectionResult{
		SampledLines: len(sample),
	}
	if len(sample) == 0 {
		return result
	}

	for _, candidate := range d.candidates {
		result.Matches = append(result.Matches, scoreDelimiter(candidate, sample))
	}

	// Highest confidence first; among equals, the delimiter that actually
	// splits the input wins over one that leaves every line whole.
	sort.SliceStable(result.Matches, func(i, j int) bool {
		a, b := result.Matches[i], result.Matches[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.FieldCount > b.FieldCount
	})

	if best := result.Best(); best != nil {
		result.HasHeader = detectHeader(sample, best.Delimiter)
	}

	return result
}

// Best returns the highest-scoring match, or nil when nothing was sampled.
func (r *DetectionResult) Best() *DelimiterMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

func scoreDelimiter(delimiter rune, lines []string) DelimiterMatch {
	counts := make(map[int]int)
	for _, line := range lines {
		counts[len(strings.Split(line, string(delimiter)))]++
	}

	modal, modalLines := 1, 0
	for fields, n := range counts {
		if n > modalLines || (n == modalLines && fields > modal) {
			modal, modalLines = fields, n
		}
	}

	match := DelimiterMatch{
		Delimiter:  delimiter,
		Confidence: float64(modalLines) / float64(len(lines)),
		FieldCount: modal,
	}
	for _, line := range lines {
		if len(strings.Split(line, string(delimiter))) == modal {
			match.SampleLine = line
			break
		}
	}
	return match
}

// detectHeader guesses header presence: if some column holds URL-looking
// values in most data lines but not in the first line, the first line is
// taken to be a header row.
func detectHeader(lines []string, delimiter rune) bool {
	if len(lines) < 2 {
		return false
	}

	first := strings.Split(lines[0], string(delimiter))
	rest := lines[1:]

	for col := range first {
		urlish := 0
		for _, line := range rest {
			fields := strings.Split(line, string(delimiter))
			if col < len(fields) && looksLikeURL(fields[col]) {
				urlish++
			}
		}
		if urlish*2 > len(rest) && !looksLikeURL(first[col]) {
			return true
		}
	}
	return false
}

func looksLikeURL(field string) bool {
	return strings.Contains(strings.Trim(field, `" `), "://")
}

func (d *Detector) sampleFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for len(lines) < d.sampleSize && scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}
