package poker

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"winninghands/pkg/deck"
)

// Result is an evaluated hand
type Result struct {
	// Index is the position of the hand in the evaluated list
	Index int

	// Hand is the hand string exactly as it was passed in
	Hand string

	Category Category
	Strength int
	Analyzer *HandAnalyzer
}

// Options configures an Evaluator
type Options struct {
	// Workers is the maximum number of hands evaluated at once
	// Values less than 2 evaluate sequentially
	Workers int

	// KickerRule separates three of a kinds with the same trips
	KickerRule KickerRule

	// Logger defaults to the standard logrus logger
	Logger logrus.FieldLogger
}

// Evaluator picks the winners from a list of hands
type Evaluator struct {
	options Options
}

// NewEvaluator returns a new Evaluator
func NewEvaluator(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	return &Evaluator{
		options: opts,
	}
}

// WinningHands returns the hands that win, ties included, with the default options.
// The returned strings are the ones passed in, in their original order.
func WinningHands(hands []string) ([]string, error) {
	results, err := NewEvaluator(Options{}).Winners(context.Background(), hands)
	if err != nil {
		return nil, err
	}

	if results == nil {
		return nil, nil
	}

	winners := make([]string, len(results))
	for i, r := range results {
		winners[i] = r.Hand
	}

	return winners, nil
}

// Evaluate parses and classifies a single hand
func (e *Evaluator) Evaluate(hand string) (*Result, error) {
	return e.evaluate(0, hand)
}

func (e *Evaluator) evaluate(i int, hand string) (*Result, error) {
	cards, err := deck.NewHand(hand)
	if err != nil {
		e.options.Logger.WithError(err).WithFields(logrus.Fields{
			"index": i,
			"hand":  hand,
		}).Debug("rejected hand")

		return nil, err
	}

	h := NewHandAnalyzer(cards)
	return &Result{
		Index:    i,
		Hand:     hand,
		Category: h.GetCategory(),
		Strength: h.GetStrengthWithRule(e.options.KickerRule),
		Analyzer: h,
	}, nil
}

// Winners returns the strongest hands, ties included, in their original order.
// Any hand that cannot be parsed aborts the evaluation.
func (e *Evaluator) Winners(ctx context.Context, hands []string) ([]*Result, error) {
	tiers, err := e.Rank(ctx, hands)
	if err != nil {
		return nil, err
	}

	if len(tiers) == 0 {
		return nil, nil
	}

	return tiers[0], nil
}

// Rank evaluates every hand and groups them into tiers of equal strength, strongest first
func (e *Evaluator) Rank(ctx context.Context, hands []string) ([][]*Result, error) {
	results, err := e.evaluateAll(ctx, hands)
	if err != nil {
		return nil, err
	}

	wm := NewWinManager()
	for _, r := range results {
		wm.AddResult(r)
	}

	tiers := wm.GetSortedTiers()
	if len(tiers) > 0 {
		e.options.Logger.WithFields(logrus.Fields{
			"hands":    len(hands),
			"winners":  len(tiers[0]),
			"category": tiers[0][0].Category.String(),
		}).Debug("ranked hands")
	}

	return tiers, nil
}

func (e *Evaluator) evaluateAll(ctx context.Context, hands []string) ([]*Result, error) {
	results := make([]*Result, len(hands))

	if e.options.Workers < 2 {
		for i, hand := range hands {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			r, err := e.evaluate(i, hand)
			if err != nil {
				return nil, handError(i, hand, err)
			}

			results[i] = r
		}

		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.Workers)

	for i, hand := range hands {
		i, hand := i, hand // per-iteration copy (go < 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := e.evaluate(i, hand)
			if err != nil {
				return handError(i, hand, err)
			}

			// each goroutine owns its own index
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func handError(i int, hand string, err error) error {
	return fmt.Errorf("hand %d (%q): %w", i, hand, err)
}
