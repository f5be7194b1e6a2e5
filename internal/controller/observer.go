package controller

import "log/slog"

// Transition describes one operation applied to a controller.
// From and To are state names ("closed"/"open", "hidden"/"shown").
type Transition struct {
	Controller string // "navigation" or "project:<slug>"
	Event      string // operation name, e.g. "toggle", "activate", "open"
	From       string
	To         string
}

// Changed reports whether the operation moved the state.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// TransitionObserver is notified after every controller operation,
// including no-op ones (From == To).
type TransitionObserver func(Transition)

// MultiObserver fans a transition out to several observers; nil entries are skipped.
func MultiObserver(observers ...TransitionObserver) TransitionObserver {
	return func(t Transition) {
		for _, o := range observers {
			if o != nil {
				o(t)
			}
		}
	}
}

// LogObserver logs every transition at debug level on logger.
func LogObserver(logger *slog.Logger) TransitionObserver {
	if logger == nil {
		return nil
	}
	return func(t Transition) {
		logger.Debug("transition",
			"controller", t.Controller,
			"event", t.Event,
			"from", t.From,
			"to", t.To,
		)
	}
}
