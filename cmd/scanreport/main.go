// Command scanreport runs the sweep engine offline for a fixed number of
// ticks against a seeded target batch and prints what the beam saw. Target
// generation and timestamps are deterministic for a given seed.
//
// Usage:
//
//	go run ./cmd/scanreport -prf 100 -rpm 10 -targets 10 -seed 7 -ticks 600
//	go run ./cmd/scanreport -json -kinematics=false
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/couchcryptid/radar-console/internal/domain"
	"github.com/couchcryptid/radar-console/internal/scan"
	"github.com/jonboulle/clockwork"
)

var reportTime = time.Date(2024, time.April, 26, 12, 0, 0, 0, time.UTC)

type report struct {
	PRF              int         `json:"prf_hz"`
	RotationRPM      float64     `json:"rotation_rpm"`
	SweepSpeed       float64     `json:"sweep_speed_deg_per_tick"`
	TickPeriodMS     int64       `json:"tick_period_ms"`
	Threshold        float64     `json:"illumination_deg"`
	Ticks            uint64      `json:"ticks"`
	Revolutions      uint64      `json:"revolutions"`
	FinalAngle       float64     `json:"final_angle_deg"`
	DetectionTicks   int         `json:"detection_ticks"`
	PeakIlluminated  int         `json:"peak_illuminated"`
	TotalIlluminated int         `json:"total_illuminations"`
	Targets          []targetRow `json:"targets"`
}

type targetRow struct {
	Index          int     `json:"index"`
	TargetType     string  `json:"target_type"`
	AlertStatus    string  `json:"alert_status"`
	Confidence     int     `json:"confidence"`
	Alarm          bool    `json:"alarm"`
	Range          float64 `json:"range_m"`
	Azimuth        float64 `json:"azimuth_deg"`
	SignalStrength string  `json:"signal_strength"`
	Speed          float64 `json:"speed"`
	Hits           int     `json:"hits"`
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("scanreport", flag.ContinueOnError)
	prf := fs.Int("prf", 100, "pulse repetition frequency in Hz (clamped to 10-5000)")
	rpm := fs.Float64("rpm", 10, "antenna rotation rate in RPM (clamped to 0.1-60)")
	threshold := fs.Float64("threshold", scan.DefaultIlluminationDeg, "illumination half-width in degrees")
	targets := fs.Int("targets", 10, "number of targets to generate (1-1000)")
	seed := fs.Uint64("seed", 1, "generator seed")
	ticks := fs.Int("ticks", 600, "number of sweep ticks to simulate")
	kinematics := fs.Bool("kinematics", true, "seed speed, heading and direction on generated targets")
	asJSON := fs.Bool("json", false, "emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *targets < 1 || *targets > 1000 {
		return fmt.Errorf("invalid -targets %d: must be 1-1000", *targets)
	}
	if *ticks < 0 {
		return fmt.Errorf("invalid -ticks %d: must not be negative", *ticks)
	}

	// Fixed clock for reproducible detection timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(reportTime))
	defer domain.SetClock(nil)

	engine := scan.NewEngine(*prf, *rpm, *threshold)
	gen := domain.NewGenerator(rand.New(rand.NewPCG(*seed, *seed)), *kinematics)
	engine.SetTargets(gen.Generate(*targets))

	r := simulate(engine, *ticks)

	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return writeTable(w, r)
}

func simulate(engine *scan.Engine, ticks int) report {
	hits := make(map[string]int)
	r := report{}

	for range ticks {
		n := engine.Tick()
		if n > 0 {
			r.DetectionTicks++
		}
		r.PeakIlluminated = max(r.PeakIlluminated, n)
		r.TotalIlluminated += n
		for _, id := range engine.IlluminatedIDs() {
			hits[id]++
		}
	}

	r.PRF = engine.PRF()
	r.RotationRPM = engine.RotationRPM()
	r.SweepSpeed = engine.Speed()
	r.TickPeriodMS = engine.TickPeriod().Milliseconds()
	r.Threshold = engine.Threshold()
	r.Ticks = engine.Ticks()
	r.Revolutions = engine.Revolutions()
	r.FinalAngle = engine.Angle()

	for i, t := range engine.Targets() {
		class := t.Classification()
		r.Targets = append(r.Targets, targetRow{
			Index:          i + 1,
			TargetType:     string(class.TargetType),
			AlertStatus:    class.AlertStatus,
			Confidence:     class.Confidence,
			Alarm:          class.Alarm(),
			Range:          t.Range(),
			Azimuth:        t.Azimuth(),
			SignalStrength: string(t.SignalStrength),
			Speed:          t.Kinematics().Speed,
			Hits:           hits[t.ID],
		})
	}
	return r
}

func writeTable(w io.Writer, r report) error {
	fmt.Fprintf(w, "prf=%d Hz  rpm=%.1f  speed=%.3f°/tick  period=%dms  threshold=%.1f°\n",
		r.PRF, r.RotationRPM, r.SweepSpeed, r.TickPeriodMS, r.Threshold)
	fmt.Fprintf(w, "ticks=%d  revolutions=%d  final angle=%.1f°  detection ticks=%d  peak=%d\n\n",
		r.Ticks, r.Revolutions, r.FinalAngle, r.DetectionTicks, r.PeakIlluminated)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tRANGE\tAZIMUTH\tSIGNAL\tSPEED\tCONF\tHITS\tALERT")
	for _, t := range r.Targets {
		speed := "N/A"
		if t.Speed != 0 {
			speed = fmt.Sprintf("%.1f", t.Speed)
		}
		alert := t.AlertStatus
		if t.Alarm {
			alert = "!! " + alert
		}
		fmt.Fprintf(tw, "%d\t%s\t%.1f m\t%.1f°\t%s\t%s\t%d%%\t%d\t%s\n",
			t.Index, t.TargetType, t.Range, t.Azimuth, t.SignalStrength, speed, t.Confidence, t.Hits, alert)
	}
	return tw.Flush()
}
