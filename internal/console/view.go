package console

import (
	"fmt"
	"slices"
	"time"

	"github.com/couchcryptid/radar-console/internal/domain"
)

// Layouts used by the display.
const (
	DisplayTimeLayout = "02-01-2006 15:04:05"
	DetailTimeLayout  = "15:04:05"
)

// Snapshot is the read-only view the display renders each frame.
type Snapshot struct {
	SweepAngle     float64      `json:"sweep_angle_deg"`
	SweepSpeed     float64      `json:"sweep_speed_deg_per_tick"`
	PRF            int          `json:"prf_hz"`
	RotationRPM    float64      `json:"rotation_rpm"`
	TickPeriodMS   int64        `json:"tick_period_ms"`
	Running        bool         `json:"running"`
	Illuminated    int          `json:"illuminated"`
	IlluminatedIDs []string     `json:"illuminated_ids"`
	Status         string       `json:"status"`
	DisplayTime    string       `json:"display_time"`
	Ticks          uint64       `json:"ticks"`
	Revolutions    uint64       `json:"revolutions"`
	Targets        []TargetView `json:"targets"`
}

// TargetView is one row of the target table.
type TargetView struct {
	Index          int                   `json:"index"` // 1-based display ID
	ID             string                `json:"id"`
	Azimuth        float64               `json:"azimuth_deg"`
	Range          float64               `json:"range_m"`
	SignalStrength domain.SignalStrength `json:"signal_strength"`
	domain.Kinematics
	domain.Classification
	Alarm          bool      `json:"alarm"`
	Illuminated    bool      `json:"illuminated"`
	DetectedTime   time.Time `json:"detected_time"`
	LastUpdateTime time.Time `json:"last_update_time"`

	RangeText   string `json:"range_text"`
	AzimuthText string `json:"azimuth_text"`
	SpeedText   string `json:"speed_text"`
}

// TargetDetail is the selected-target panel.
type TargetDetail struct {
	TargetView
	TimeDetected   string `json:"time_detected"`
	LastUpdate     string `json:"last_update"`
	ConfidenceText string `json:"confidence_text"`
	Coordinates    string `json:"coordinates"`
}

func newTargetView(index int, t domain.Target, lit []string) TargetView {
	class := t.Classification()
	k := t.Kinematics()

	speed := "N/A"
	if k.Speed != 0 {
		speed = fmt.Sprintf("%.1f", k.Speed)
	}

	return TargetView{
		Index:          index,
		ID:             t.ID,
		Azimuth:        t.Azimuth(),
		Range:          t.Range(),
		SignalStrength: t.SignalStrength,
		Kinematics:     k,
		Classification: class,
		Alarm:          class.Alarm(),
		Illuminated:    slices.Contains(lit, t.ID),
		DetectedTime:   t.DetectedTime,
		LastUpdateTime: t.LastUpdateTime,
		RangeText:      fmt.Sprintf("%.1f m", t.Range()),
		AzimuthText:    fmt.Sprintf("%.1f°", t.Azimuth()),
		SpeedText:      speed,
	}
}

func newTargetDetail(index int, t domain.Target, lit []string) TargetDetail {
	return TargetDetail{
		TargetView:     newTargetView(index, t, lit),
		TimeDetected:   t.DetectedTime.Format(DetailTimeLayout),
		LastUpdate:     t.LastUpdateTime.Format(DetailTimeLayout),
		ConfidenceText: fmt.Sprintf("%d%%", t.Classification().Confidence),
		Coordinates:    t.Coordinates(),
	}
}
