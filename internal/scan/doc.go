// Package scan advances the radar sweep.
//
// [Engine] holds the simulation state: sweep angle, the angular step per
// tick derived from PRF and antenna RPM, and the current target batch. Its
// Tick method is a plain function call so tests can drive it without
// timers. [Clock] is the periodic driver that turns a PRF into a tick
// period and delivers ticks on a channel; the host loop calls Engine.Tick
// for every value it receives.
package scan
