package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"pfeifer.dev/soard/cereal/soar"
	ms "pfeifer.dev/soard/settings"
)

type outputModel struct {
	output soar.SoarOut
	valid  bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
	}

	return m, nil
}

func formatOutput(out soar.SoarOut) string {
	name, _ := out.ActiveName()
	return fmt.Sprintf(
		"speed to fly: %.1f km/h\nactive point: %d %s\ndistance: %.0f m\nbearing: %.0f\ninside: %t\napproaching: %t\nlast event: %s\nstarted: %t\nfinished: %t",
		out.OptimalSpeed()*ms.MS_TO_KPH,
		out.ActiveIndex(),
		name,
		out.Distance(),
		out.Bearing(),
		out.Inside(),
		out.Approaching(),
		out.Event().String(),
		out.TaskStarted(),
		out.TaskFinished(),
	)
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for soard output (esc to return)")
	}
	return docStyle.Render(formatOutput(m.output) + "\n")
}
