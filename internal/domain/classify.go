package domain

import (
	"slices"
	"strings"
)

// TargetType is the label assigned by the rule table.
type TargetType string

const (
	TypeMissile            TargetType = "Missile"
	TypeFastIntruder       TargetType = "Fast Intruder"
	TypeDrone              TargetType = "Drone"
	TypeCommercialAircraft TargetType = "Commercial Aircraft"
	TypeEvasiveAircraft    TargetType = "Evasive Aircraft"
	TypeStationaryObject   TargetType = "Stationary Object"
	TypeUnknown            TargetType = "Unknown"
)

// Classification holds the fields derived from a target's features.
type Classification struct {
	TargetType     TargetType `json:"target_type"`
	TrackingMethod string     `json:"tracking_method"`
	Confidence     int        `json:"confidence"` // percent, 0-100
	AlertStatus    string     `json:"alert_status"`
}

// Alarm reports whether the display should paint the target in the alarm
// color.
func (c Classification) Alarm() bool {
	return strings.HasPrefix(c.AlertStatus, "High Threat") || strings.Contains(c.AlertStatus, "Missile")
}

// Features are the values a rule predicate may look at.
type Features struct {
	Speed     float64
	Range     float64
	Angle     float64
	Direction Direction
}

// Rule pairs a predicate with the classification it assigns.
type Rule struct {
	Name    string
	Match   func(Features) bool
	Outcome Classification
}

// rules is evaluated top to bottom; the last entry always matches.
var rules = []Rule{
	{
		Name:  "missile",
		Match: func(f Features) bool { return f.Speed > 800 && f.Range > 200 },
		Outcome: Classification{
			TargetType:     TypeMissile,
			TrackingMethod: "Radar",
			Confidence:     95,
			AlertStatus:    "Possible Missile Detected",
		},
	},
	{
		Name:  "fast-intruder",
		Match: func(f Features) bool { return f.Speed > 800 && f.Range <= 200 },
		Outcome: Classification{
			TargetType:     TypeFastIntruder,
			TrackingMethod: "High-Freq Radar",
			Confidence:     98,
			AlertStatus:    "High Threat - Fast Close Target",
		},
	},
	{
		Name:  "drone",
		Match: func(f Features) bool { return f.Speed < 200 && f.Range < 100 },
		Outcome: Classification{
			TargetType:     TypeDrone,
			TrackingMethod: "Infrared",
			Confidence:     85,
			AlertStatus:    "Low Altitude Object Detected",
		},
	},
	{
		Name: "commercial-aircraft",
		Match: func(f Features) bool {
			return f.Speed > 200 && f.Speed <= 800 && f.Direction == DirectionStraight
		},
		Outcome: Classification{
			TargetType:     TypeCommercialAircraft,
			TrackingMethod: "Kalman Filter",
			Confidence:     88,
			AlertStatus:    "Stable Target - Likely Aircraft",
		},
	},
	{
		Name:  "evasive-aircraft",
		Match: func(f Features) bool { return f.Angle > 30 && f.Angle < 180 },
		Outcome: Classification{
			TargetType:     TypeEvasiveAircraft,
			TrackingMethod: "Optical + Radar Fusion",
			Confidence:     70,
			AlertStatus:    "Evasive Maneuver Detected",
		},
	},
	{
		Name:  "stationary-object",
		Match: func(f Features) bool { return f.Speed < 50 },
		Outcome: Classification{
			TargetType:     TypeStationaryObject,
			TrackingMethod: "Thermal Imaging",
			Confidence:     60,
			AlertStatus:    "Suspicious Stationary Object",
		},
	},
	{
		Name:  "default",
		Match: func(Features) bool { return true },
		Outcome: Classification{
			TargetType:     TypeUnknown,
			TrackingMethod: "AI Classifier",
			Confidence:     50,
			AlertStatus:    "Unidentified Pattern",
		},
	},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	return slices.Clone(rules)
}

// MatchRule returns the first rule whose predicate accepts f.
func MatchRule(f Features) Rule {
	for _, r := range rules {
		if r.Match(f) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Classify assigns the derived fields for f. It is total: every input gets a
// non-empty classification.
func Classify(f Features) Classification {
	return MatchRule(f).Outcome
}
