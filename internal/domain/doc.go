// Package domain models the targets shown on the radar console and the rule
// table that labels them.
//
// # Targets
//
// A target is a fixed point on the polar display: azimuth in degrees
// clockwise from north, in [0, 360), and range in abstract meters. Targets
// do not move during a session; only the sweep rotates. Batches are produced
// by a [Generator] at startup and on every analyze/regenerate action.
//
// # Classification
//
// Each target carries kinematic inputs (speed, turn angle, direction) and
// four derived fields: target type, tracking method, confidence percent and
// alert status. The derived fields are recomputed whenever the inputs change
// and cannot be set independently. See [Rules] for the ordered table:
//
//	#  condition                              type                 conf
//	1  speed>800 && range>200                 Missile              95
//	2  speed>800 && range<=200                Fast Intruder        98
//	3  speed<200 && range<100                 Drone                85
//	4  200<speed<=800 && direction==Straight  Commercial Aircraft  88
//	5  30<angle<180                           Evasive Aircraft     70
//	6  speed<50                               Stationary Object    60
//	7  otherwise                              Unknown              50
//
// The first matching rule wins. Boundary values fall on whichever side the
// operator puts them: speed 800 fails rules 1 and 2.
//
// # Alarm hint
//
// An alert that starts with "High Threat" or mentions "Missile" is an alarm;
// the display paints those targets in the alarm color.
package domain
