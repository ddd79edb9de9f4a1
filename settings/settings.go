package settings

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/soard/cereal/soar"
	"pfeifer.dev/soard/params"
	"pfeifer.dev/soard/polar"
)

var (
	Settings = SoarSettings{}
)

type SoarSettings struct {
	MacCready        float64        `json:"mac_cready"`
	CruiseEfficiency float64        `json:"cruise_efficiency"`
	SpeedFilterAlpha float64        `json:"speed_filter_alpha"`
	FaiHalfAngle     float64        `json:"fai_half_angle"`
	LineHalfAngle    float64        `json:"line_half_angle"`
	Polar            [3]polar.Point `json:"polar"`
	BallastRatio     float64        `json:"ballast_ratio"`
	Bugs             float64        `json:"bugs"`
	LogLevel         string         `json:"log_level"`
	LogFile          string         `json:"log_file"`
}

func (s *SoarSettings) Default() {
	s.MacCready = 0
	s.CruiseEfficiency = 1.0
	s.SpeedFilterAlpha = 0.6
	s.FaiHalfAngle = 135
	s.LineHalfAngle = 90
	s.Polar = [3]polar.Point{
		{Speed: 22.2, Sink: 0.58},
		{Speed: 27.8, Sink: 0.65},
		{Speed: 44.4, Sink: 1.45},
	}
	s.BallastRatio = 1
	s.Bugs = 1
	s.LogLevel = "info"
	s.LogFile = ""
}

func (s *SoarSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.SOAR_SETTINGS)
	if err != nil {
		slog.Warn("could not load settings", "error", err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		slog.Error("could not parse settings", "error", errors.Wrap(err, "invalid settings json"))
		return false
	}

	s.setLogLevel()

	return true
}

func (s *SoarSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *SoarSettings) Save() {
	if data, ok := s.marshal(); ok {
		write(data)
	}
}

func (s *SoarSettings) marshal() ([]byte, bool) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		slog.Error("could not marshal settings", "error", err)
		return nil, false
	}
	return data, true
}

func write(data []byte) {
	if err := params.PutParam(params.SOAR_SETTINGS, data); err != nil {
		slog.Error("could not save settings", "error", err)
	}
}

func (s *SoarSettings) JSON() string {
	data, err := json.Marshal(s)
	if err != nil {
		slog.Error("could not marshal settings", "error", err)
		return "{}"
	}
	return string(data)
}

// BuildPolar scales the configured polar by ballast and bugs. An unusable
// configuration falls back to the default polar.
func (s *SoarSettings) BuildPolar() polar.Polar {
	p, err := polar.New(s.Polar, s.BallastRatio, s.Bugs)
	if err == nil {
		return p
	}
	slog.Warn("invalid polar settings, using default polar", "error", err)
	d := SoarSettings{}
	d.Default()
	p, err = polar.New(d.Polar, d.BallastRatio, d.Bugs)
	if err != nil {
		panic(err)
	}
	return p
}

// Handle applies a settings command. It reports whether the polar has to be
// rebuilt.
func (s *SoarSettings) Handle(input soar.SoarIn) (polarChanged bool) {
	switch input.Type() {
	case soar.InputType_reloadSettings:
		s.Load()
		return true
	case soar.InputType_saveSettings:
		// the loop keeps changing s, so only the write leaves this goroutine
		if data, ok := s.marshal(); ok {
			go write(data)
		}
	case soar.InputType_loadDefaultSettings:
		s.Default()
		s.setLogLevel()
		return true
	case soar.InputType_setMacCready:
		s.MacCready = max(0, input.Float())
	case soar.InputType_setCruiseEfficiency:
		if input.Float() > 0 {
			s.CruiseEfficiency = input.Float()
		}
	case soar.InputType_setSpeedFilterAlpha:
		s.SpeedFilterAlpha = min(1, max(0, input.Float()))
	case soar.InputType_setFaiHalfAngle:
		s.FaiHalfAngle = min(180, max(0, input.Float()))
	case soar.InputType_setLineHalfAngle:
		s.LineHalfAngle = min(180, max(0, input.Float()))
	case soar.InputType_setBallastRatio:
		if input.Float() > 0 {
			s.BallastRatio = input.Float()
			return true
		}
	case soar.InputType_setBugs:
		if input.Float() > 0 {
			s.Bugs = input.Float()
			return true
		}
	case soar.InputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			slog.Error("could not read log level", "error", err)
			return false
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	}
	return false
}
