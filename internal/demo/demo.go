// Package demo measures how the ordered tree behaves on a word list: built from
// sorted input, from shuffled input and after a rebalance, next to a set of
// baseline indexes.
package demo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/g-m-twostay/ordered-tree/Trees"
	"github.com/g-m-twostay/ordered-tree/internal/baseline"
)

// ErrNoWords is returned when the word list holds no word.
var ErrNoWords = errors.New("demo: empty word list")

// ErrInvalidConfig is returned when a Config holds a negative size.
var ErrInvalidConfig = errors.New("demo: invalid config")

// Config of a run.
type Config struct {
	// Words is the path of the newline delimited word list.
	Words string
	// Sample is the number of words looked up in the search phases.
	Sample int
	// Naive is the number of leading words added in file order.
	Naive int
	// Seed of the sampling and shuffling, 0 uses the current time.
	Seed int64
	// Baselines are the names of the indexes to compare against, besides the
	// linear scan that always runs first.
	Baselines []string
}

// DefaultConfig returns the configuration of the reference run.
func DefaultConfig() Config {
	return Config{
		Sample:    10000,
		Naive:     1000,
		Baselines: []string{"btree", "llrb", "haxmap", "hashmap"},
	}
}

// Phase is one timed step of a run.
type Phase struct {
	Name    string
	Items   int
	Elapsed time.Duration
}

// Report of a run.
type Report struct {
	Words  int
	Phases []Phase
	// Heights and balance of the shuffled tree before and after Rebalance.
	HeightBefore, HeightAfter     int
	BalancedBefore, BalancedAfter bool
}

// ReadWords reads one word per line, dropping blank lines and surrounding spaces.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("demo: reading words: %w", err)
	}
	return words, nil
}

// Runner runs the phases of a demo.
type Runner struct {
	cfg    Config
	logger logrus.FieldLogger
	rnd    *rand.Rand
	report Report
}

// NewRunner returns a Runner for cfg logging to logger.
func NewRunner(cfg Config, logger logrus.FieldLogger) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		cfg:    cfg,
		logger: logger.WithField("seed", seed),
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// RunFile reads the word list at cfg.Words and runs every phase on it.
func (r *Runner) RunFile() (*Report, error) {
	f, err := os.Open(r.cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	defer f.Close()
	words, err := ReadWords(f)
	if err != nil {
		return nil, err
	}
	return r.Run(words)
}

// Run every phase on words. words is reordered.
func (r *Runner) Run(words []string) (*Report, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if r.cfg.Sample < 0 {
		return nil, fmt.Errorf("%w: sample %d must be >= 0", ErrInvalidConfig, r.cfg.Sample)
	}
	if r.cfg.Naive < 0 {
		return nil, fmt.Errorf("%w: naive %d must be >= 0", ErrInvalidConfig, r.cfg.Naive)
	}
	r.report = Report{Words: len(words)}
	sample := r.sample(words, min(r.cfg.Sample, len(words)))
	naive := words[:min(r.cfg.Naive, len(words))]

	linear := new(baseline.Linear)
	linear.Load(words)
	if err := r.timed("linear search", len(sample), func() error {
		return find("linear search", linear.Has, sample)
	}); err != nil {
		return nil, err
	}

	tree := Trees.New[string]()
	if err := r.build(tree, "sorted", naive, naive); err != nil {
		return nil, err
	}
	tree.Clear()

	r.rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if err := r.build(tree, "shuffled", words, sample); err != nil {
		return nil, err
	}

	r.report.HeightBefore, r.report.BalancedBefore = tree.Height(), tree.IsBalanced()
	r.timed("rebalance", int(tree.Size()), func() error {
		tree.Rebalance()
		return nil
	})
	r.report.HeightAfter, r.report.BalancedAfter = tree.Height(), tree.IsBalanced()
	r.logger.WithFields(logrus.Fields{
		"height_before":   r.report.HeightBefore,
		"height_after":    r.report.HeightAfter,
		"balanced_before": r.report.BalancedBefore,
		"balanced_after":  r.report.BalancedAfter,
	}).Info("rebalanced tree")
	if err := r.timed("search balanced", len(sample), func() error {
		return find("search balanced", tree.Has, sample)
	}); err != nil {
		return nil, err
	}

	for _, name := range r.cfg.Baselines {
		if err := r.baseline(name, words, sample); err != nil {
			return nil, err
		}
	}
	return &r.report, nil
}

// build adds words to tree then looks up every word of probe.
func (r *Runner) build(tree *Trees.LinkedBST[string], order string, words, probe []string) error {
	r.timed("build "+order, len(words), func() error {
		for _, w := range words {
			tree.Add(w)
		}
		return nil
	})
	r.logger.WithFields(logrus.Fields{
		"order":  order,
		"size":   tree.Size(),
		"height": tree.Height(),
	}).Debug("built tree")
	name := "search " + order
	return r.timed(name, len(probe), func() error {
		return find(name, tree.Has, probe)
	})
}

func (r *Runner) baseline(name string, words, sample []string) error {
	idx, err := baseline.New(name)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	r.timed("load "+name, len(words), func() error {
		idx.Load(words)
		return nil
	})
	phase := "search " + name
	return r.timed(phase, len(sample), func() error {
		return find(phase, idx.Has, sample)
	})
}

// sample returns n distinct positions of words.
func (r *Runner) sample(words []string, n int) []string {
	s := make([]string, n)
	for i, j := range r.rnd.Perm(len(words))[:n] {
		s[i] = words[j]
	}
	return s
}

func (r *Runner) timed(name string, items int, f func() error) error {
	start := time.Now()
	err := f()
	p := Phase{name, items, time.Since(start)}
	log := r.logger.WithFields(logrus.Fields{
		"phase":   p.Name,
		"items":   p.Items,
		"elapsed": p.Elapsed,
	})
	if err != nil {
		log.WithError(err).Error("phase failed")
		return err
	}
	log.Info("phase done")
	r.report.Phases = append(r.report.Phases, p)
	return nil
}

func find(phase string, has func(string) bool, words []string) error {
	for _, w := range words {
		if !has(w) {
			return fmt.Errorf("demo: %s: word %q not found", phase, w)
		}
	}
	return nil
}

// Print writes the report as a table.
func (rep *Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d words\n", rep.Words); err != nil {
		return err
	}
	for _, p := range rep.Phases {
		if _, err := fmt.Fprintf(w, "%-20s %8d items %14v\n", p.Name, p.Items, p.Elapsed); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "height %d -> %d, balanced %t -> %t\n",
		rep.HeightBefore, rep.HeightAfter, rep.BalancedBefore, rep.BalancedAfter)
	return err
}
