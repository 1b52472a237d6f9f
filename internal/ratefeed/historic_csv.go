package ratefeed

import (
	"fmt"
	"path/filepath"
	"time"

	"lending-rate-lab/internal/domain"
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/normalization"
)

// Options configures a HistoricCSVFeed.
type Options struct {
	Queue  *event.Queue
	CSVDir string   // directory holding <token>.csv files
	Tokens []string // token list, one CSV per token

	Start time.Time // optional closed-interval lower bound
	End   time.Time // optional closed-interval upper bound

	InterpolationFreq time.Duration // uniform clock for gap repair
	BacktestFreq      time.Duration // simulation step size

	// LiquidStaking flags tokens whose raw index is piecewise-constant;
	// flat regions are removed before interpolation.
	LiquidStaking map[string]bool
}

// Default frequencies, matching the original hourly-interpolation /
// daily-replay setup.
const (
	DefaultInterpolationFreq = time.Hour
	DefaultBacktestFreq      = 24 * time.Hour
)

// HistoricCSVFeed replays cleaned CSV-sourced series through the event
// queue. It exclusively owns the cleaned series and the revealed history;
// other components query it only via Latest.
type HistoricCSVFeed struct {
	queue  *event.Queue
	tokens []string

	series   map[string]*domain.TokenSeries     // cleaned, aligned series
	cursors  map[string]*cursor                 // forward-only reveal position
	latest   map[string][]domain.RateObservation // append-only revealed history
	finished bool                                // sticky terminal condition
}

// NewHistoricCSVFeed loads and cleans every token's CSV. A missing or
// malformed file is fatal: no partial feed is usable. Empty source data
// yields an empty series that is silently treated as exhausted.
func NewHistoricCSVFeed(opts Options) (*HistoricCSVFeed, error) {
	if opts.Queue == nil {
		return nil, fmt.Errorf("ratefeed: queue is required")
	}
	if len(opts.Tokens) == 0 {
		return nil, fmt.Errorf("ratefeed: at least one token is required")
	}
	if opts.InterpolationFreq <= 0 {
		opts.InterpolationFreq = DefaultInterpolationFreq
	}
	if opts.BacktestFreq <= 0 {
		opts.BacktestFreq = DefaultBacktestFreq
	}

	cleaned := make([]*domain.TokenSeries, 0, len(opts.Tokens))
	for _, token := range opts.Tokens {
		path := filepath.Join(opts.CSVDir, token+".csv")
		raw, err := loadCSV(path, token)
		if err != nil {
			return nil, err
		}

		obs := raw
		if opts.LiquidStaking[token] {
			obs = normalization.RemoveFlatRegions(obs)
		}
		obs = normalization.ResampleMean(obs, opts.InterpolationFreq)
		obs = normalization.InterpolateLinear(obs)
		obs = normalization.ResampleFFill(obs, opts.BacktestFreq)
		obs = normalization.DropMissing(obs)
		obs = normalization.ClampRange(obs, opts.Start, opts.End)

		cleaned = append(cleaned, &domain.TokenSeries{Token: token, Observations: obs})
	}

	// Pad all series onto the union of their grids so tokens advance in
	// lockstep.
	aligned := normalization.AlignUnion(cleaned)

	f := &HistoricCSVFeed{
		queue:   opts.Queue,
		tokens:  append([]string(nil), opts.Tokens...),
		series:  make(map[string]*domain.TokenSeries, len(aligned)),
		cursors: make(map[string]*cursor, len(aligned)),
		latest:  make(map[string][]domain.RateObservation, len(aligned)),
	}
	for _, s := range aligned {
		f.series[s.Token] = s
		f.cursors[s.Token] = newCursor(s.Observations)
		f.latest[s.Token] = nil
	}

	return f, nil
}

// UpdateRates reveals the next observation for every token. A token with no
// observation left flips the sticky terminal condition; the others keep
// advancing. One market event is emitted per call, except when nothing was
// revealed after the terminal condition was set.
func (f *HistoricCSVFeed) UpdateRates() {
	advanced := false
	for _, token := range f.tokens {
		obs, ok := f.cursors[token].next()
		if !ok {
			f.finished = true
			continue
		}
		f.latest[token] = append(f.latest[token], obs)
		advanced = true
	}

	if !advanced && f.finished {
		return
	}
	f.queue.Put(event.NewMarket())
}

// Latest returns the last n revealed observations for a token, fewer if the
// revealed history is shorter than n.
func (f *HistoricCSVFeed) Latest(token string, n int) ([]domain.RateObservation, error) {
	history, ok := f.latest[token]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, token)
	}
	if n <= 0 || n > len(history) {
		n = len(history)
	}
	result := make([]domain.RateObservation, n)
	copy(result, history[len(history)-n:])
	return result, nil
}

// Continue reports whether any token still has data. Sticky: once false it
// never reverts.
func (f *HistoricCSVFeed) Continue() bool {
	return !f.finished
}

// Tokens returns the registered token list in configuration order.
func (f *HistoricCSVFeed) Tokens() []string {
	return f.tokens
}

// Series returns the cleaned, aligned series for a token. Used by the data
// inspection tool; the backtest itself only sees revealed history.
func (f *HistoricCSVFeed) Series(token string) (*domain.TokenSeries, error) {
	s, ok := f.series[token]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, token)
	}
	return s, nil
}

var _ RateFeed = (*HistoricCSVFeed)(nil)
