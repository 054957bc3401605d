// Package deckdebug holds the DECK_DEBUG flags read at process startup.
package deckdebug

import (
	"sync"

	"github.com/go-deck/deck/internal/envflag"
)

// Flags holds the set of global DECK_DEBUG flags. It is initialized by Init.
var Flags Config

// Config holds the set of known DECK_DEBUG flags.
type Config struct {
	// TraceStack pretty-prints the full scope stack before each evaluator
	// step. Corresponds to the STACK trace channel.
	TraceStack bool `yaml:"traceStack"`

	// TraceCall prints, as each Node expansion finishes, a header carrying
	// a short call id and then the value the expansion reduced to. Steps
	// that expand no Node print nothing. Corresponds to the CALL trace
	// channel.
	TraceCall bool `yaml:"traceCall"`

	// LogReduce sets the log level for Reducer.Reduce: at 1 or above, every
	// resolve attempt against the scope stack is logged to stderr.
	//
	//	0: no logging
	//	1: logging
	LogReduce int `yaml:"logReduce"`
}

// Init initializes Flags. Note: this isn't named "init" because we don't
// always want it called, and because we want the failure mode to be an
// error, not a panic, which would be the only option for a top-level init.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	return envflag.Init(&Flags, "DECK_DEBUG")
})
