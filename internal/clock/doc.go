// Package clock provides an injectable time source.
//
// Production code takes a Clock instead of calling time.Now directly so
// that uptime and simulated signals can be tested deterministically.
// Real() is backed by the time package; Fake() only moves when Advance
// or Set is called.
package clock
