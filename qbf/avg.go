package qbf

// EMA is an exponential moving average, used by the progress reporter to
// smooth the "iter/s" estimate it prints rather than reacting to every
// single jittery fixpoint iteration.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0, 1]; values closer to 1
// weigh history more heavily than the newest sample.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds a new sample into the average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

// Val returns the current average.
func (ema *EMA) Val() float64 {
	return ema.value
}
