package maploader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/gridpibt/grid"
)

// defaultFreeToken is the token marking a traversable cell when no
// Option overrides it.
const defaultFreeToken = "."

// Option configures LoadReader/LoadFile. Mirrors the functional-option
// idiom used elsewhere in this module (see pibt.Option).
type Option func(*options)

type options struct {
	freeToken string
}

func defaultOptions() options {
	return options{freeToken: defaultFreeToken}
}

// WithFreeToken overrides which single-character token marks a free
// cell; every other token is treated as an obstacle. The empty string
// is ignored (keeps the default).
func WithFreeToken(tok string) Option {
	return func(o *options) {
		if tok != "" {
			o.freeToken = tok
		}
	}
}

// LoadFile opens path and delegates to LoadReader.
func LoadFile(path string, opts ...Option) (*grid.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maploader: %w", err)
	}
	defer f.Close()

	return LoadReader(f, opts...)
}

// LoadReader parses the ASCII map format from r and returns the
// resulting grid.Graph. See the package doc for the format.
func LoadReader(r io.Reader, opts ...Option) (*grid.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	width, err := nextInt(sc)
	if err != nil {
		return nil, err
	}
	height, err := nextInt(sc)
	if err != nil {
		return nil, err
	}

	free := make([][]bool, height)
	for y := 0; y < height; y++ {
		free[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if !sc.Scan() {
				return nil, ErrTruncatedBody
			}
			tok := sc.Text()
			if len(tok) != 1 {
				return nil, fmt.Errorf("%w: row %d col %d = %q", ErrBadToken, y, x, tok)
			}
			free[y][x] = tok == o.freeToken
		}
	}

	g, err := grid.NewGraph(free)
	if err != nil {
		return nil, fmt.Errorf("maploader: %w", err)
	}

	return g, nil
}

// nextInt scans the next whitespace-delimited token and parses it as a
// positive int, wrapping header-specific sentinel errors.
func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrTruncatedHeader
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrBadHeader, sc.Text())
	}
	return n, nil
}
