package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pfeifer.dev/soard/cereal/soar"
	ms "pfeifer.dev/soard/settings"
)

var (
	achievedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	activeStyle   = lipgloss.NewStyle().Bold(true)
)

type progressModel struct {
	output soar.SoarExtendedOut
	valid  bool
}

func (m progressModel) Update(msg tea.Msg, mm *uiModel) (progressModel, tea.Cmd) {
	m.valid = mm.extendedDataValid
	m.output = mm.extendedData

	return m, nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format("15:04:05")
}

func formatProgress(out soar.SoarExtendedOut) string {
	name, _ := out.TaskName()
	b := strings.Builder{}
	fmt.Fprintf(&b, "task: %s\nstart: %s\nfinish: %s\n\n", name, formatMillis(out.StartUnixTimeMillis()), formatMillis(out.FinishUnixTimeMillis()))
	if out.BestGlideSpeed() > 0 {
		fmt.Fprintf(&b, "best glide: %.0f km/h at %.1f:1\n\n", out.BestGlideSpeed()*ms.MS_TO_KPH, out.BestGlideRatio())
	}

	sectors, err := out.Sectors()
	if err != nil {
		return b.String()
	}
	for i := range sectors.Len() {
		s := sectors.At(i)
		sectorName, _ := s.Name()
		line := fmt.Sprintf("%2d %-20s %-7s %6.0f m  %s", i, sectorName, s.Kind().String(), s.Radius(), formatMillis(s.AchievedUnixTimeMillis()))
		switch {
		case s.AchievedUnixTimeMillis() != 0:
			line = achievedStyle.Render(line)
		case int32(i) == out.ActiveIndex():
			line = activeStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m progressModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for soard task progress (esc to return)")
	}
	return docStyle.Render(formatProgress(m.output))
}
