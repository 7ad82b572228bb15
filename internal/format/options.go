package format

// MaxFractionDigits caps requested fraction digits.
const MaxFractionDigits = 20

// Options are per-call display options. Nil fields take the currency's defaults.
type Options struct {
	MinimumFractionDigits *int  `json:"minimumFractionDigits,omitempty" yaml:"minimum_fraction_digits,omitempty"`
	MaximumFractionDigits *int  `json:"maximumFractionDigits,omitempty" yaml:"maximum_fraction_digits,omitempty"`
	ShowSymbol            *bool `json:"showSymbol,omitempty" yaml:"show_symbol,omitempty"`
}

// Option mutates Options.
type Option func(*Options)

// WithMinFractionDigits sets the minimum number of fraction digits.
func WithMinFractionDigits(n int) Option {
	return func(o *Options) { o.MinimumFractionDigits = &n }
}

// WithMaxFractionDigits sets the maximum number of fraction digits.
func WithMaxFractionDigits(n int) Option {
	return func(o *Options) { o.MaximumFractionDigits = &n }
}

// WithFractionDigits pins both bounds to n.
func WithFractionDigits(n int) Option {
	return func(o *Options) {
		o.MinimumFractionDigits = &n
		o.MaximumFractionDigits = &n
	}
}

// WithSymbol controls whether the currency symbol is rendered.
func WithSymbol(show bool) Option {
	return func(o *Options) { o.ShowSymbol = &show }
}

// WithoutSymbol is WithSymbol(false).
func WithoutSymbol() Option { return WithSymbol(false) }

// WithOptions copies the set fields of a decoded Options value.
func WithOptions(src Options) Option {
	return func(o *Options) {
		if src.MinimumFractionDigits != nil {
			o.MinimumFractionDigits = src.MinimumFractionDigits
		}
		if src.MaximumFractionDigits != nil {
			o.MaximumFractionDigits = src.MaximumFractionDigits
		}
		if src.ShowSymbol != nil {
			o.ShowSymbol = src.ShowSymbol
		}
	}
}

func collect(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) showSymbol() bool {
	return o.ShowSymbol == nil || *o.ShowSymbol
}

// fractionBounds resolves the digit range against a currency default.
// min > max never errors: the larger bound wins.
func (o Options) fractionBounds(def int) (int, int) {
	minD, maxD := def, def
	switch {
	case o.MinimumFractionDigits != nil && o.MaximumFractionDigits != nil:
		minD, maxD = clampDigits(*o.MinimumFractionDigits), clampDigits(*o.MaximumFractionDigits)
		if minD > maxD {
			maxD = minD
		}
	case o.MinimumFractionDigits != nil:
		minD = clampDigits(*o.MinimumFractionDigits)
		if maxD < minD {
			maxD = minD
		}
	case o.MaximumFractionDigits != nil:
		maxD = clampDigits(*o.MaximumFractionDigits)
		if minD > maxD {
			minD = maxD
		}
	}
	return minD, maxD
}

func clampDigits(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxFractionDigits {
		return MaxFractionDigits
	}
	return n
}
