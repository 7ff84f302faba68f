package fit

const (
	defaultDataMarker = "bo"
	defaultFitMarker  = "r-"
)

type config struct {
	guess     []float64
	hasDomain bool
	lo, hi    float64

	showFit   bool
	showStart bool
	showData  bool
	label     string
	markData  string
	markFit   string

	plotter  Plotter
	reporter Reporter

	noOffset bool
	tcFixed  bool
}

// Option mutates a fit call's configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		showData: true,
		markData: defaultDataMarker,
		markFit:  defaultFitMarker,
		plotter:  NopPlotter{},
		reporter: NopReporter{},
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithGuess supplies initial fit parameters, bypassing the wrapper's
// heuristic. The vector order is the family's documented Params order.
func WithGuess(p []float64) Option {
	return func(cfg *config) {
		cfg.guess = append([]float64(nil), p...)
	}
}

// WithDomain restricts the fit to x values in [lo, hi).
func WithDomain(lo, hi float64) Option {
	return func(cfg *config) {
		cfg.hasDomain = true
		cfg.lo, cfg.hi = lo, hi
	}
}

// ShowFit emits the plot requests (data, optional start curve, best-fit
// curve) to the configured Plotter.
func ShowFit() Option {
	return func(cfg *config) { cfg.showFit = true }
}

// ShowStartFit additionally plots the initial-guess curve.
func ShowStartFit() Option {
	return func(cfg *config) { cfg.showStart = true }
}

// HideData suppresses the raw-data plot request while keeping the fit
// curve.
func HideData() Option {
	return func(cfg *config) { cfg.showData = false }
}

// WithLabel sets the label prefix used on plot requests; a non-empty label
// also switches the legend on.
func WithLabel(label string) Option {
	return func(cfg *config) { cfg.label = label }
}

// WithMarkers overrides the data and fit style markers.
func WithMarkers(data, fit string) Option {
	return func(cfg *config) {
		if data != "" {
			cfg.markData = data
		}

		if fit != "" {
			cfg.markFit = fit
		}
	}
}

// WithPlotter routes plot requests to p instead of discarding them.
func WithPlotter(p Plotter) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.plotter = p
		}
	}
}

// WithReporter routes parameter reports and notes to r instead of
// discarding them.
func WithReporter(r Reporter) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.reporter = r
		}
	}
}

// NoOffset selects the offset-free variant of the Gaussian and N-Gaussian
// families. Other wrappers ignore it.
func NoOffset() Option {
	return func(cfg *config) { cfg.noOffset = true }
}

// TcFixed makes the kinetic-fraction wrapper hold the critical temperature
// fixed even when the supplied guess carries a Tc value: the guess is
// truncated to [f0, alpha] before fitting. Other wrappers ignore it.
func TcFixed() Option {
	return func(cfg *config) { cfg.tcFixed = true }
}
