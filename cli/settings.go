package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"pfeifer.dev/soard/cereal/soar"
	ms "pfeifer.dev/soard/settings"
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsCommand
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType soar.InputType
	Type        SettingType
	current     func(s *ms.SoarSettings) string
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			m.err = nil
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				if it.current != nil && mm.extendedDataValid {
					m.prompt = fmt.Sprintf("%s (currently %s)", m.prompt, it.current(&mm.remoteSettings))
				}
				m.textInput = textinput.New()
				m.textInput.Focus()
				return m, textinput.Blink
			case settingsCommand:
				m.state = showSettingsMenu
				m.err = sendInput(mm.pub, it.MessageType, "")
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu
			m.err = sendInput(mm.pub, m.selectedItem.MessageType, m.textInput.Value())
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		view := m.list.View()
		if m.err != nil {
			view = fmt.Sprintf("error: %v\n\n%s", m.err, view)
		}
		return docStyle.Render(view)
	}
}

func floatSetting(title, desc string, t soar.InputType, current func(s *ms.SoarSettings) float64) settingsItem {
	return settingsItem{
		title:       title,
		desc:        desc,
		MessageType: t,
		Type:        Float,
		state:       settingsInput,
		current: func(s *ms.SoarSettings) string {
			return fmt.Sprintf("%g", current(s))
		},
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		floatSetting("MacCready", "Expected climb rate of the next thermal in m/s",
			soar.InputType_setMacCready, func(s *ms.SoarSettings) float64 { return s.MacCready }),
		floatSetting("Cruise Efficiency", "Factor applied to the speed to fly, 1 flies the polar optimum",
			soar.InputType_setCruiseEfficiency, func(s *ms.SoarSettings) float64 { return s.CruiseEfficiency }),
		floatSetting("Speed Filter", "Weight of a new speed to fly sample between 0 and 1",
			soar.InputType_setSpeedFilterAlpha, func(s *ms.SoarSettings) float64 { return s.SpeedFilterAlpha }),
		floatSetting("Ballast Ratio", "Current wing loading relative to the polar reference loading",
			soar.InputType_setBallastRatio, func(s *ms.SoarSettings) float64 { return s.BallastRatio }),
		floatSetting("Bugs", "Remaining performance fraction, 1 is a clean wing",
			soar.InputType_setBugs, func(s *ms.SoarSettings) float64 { return s.Bugs }),
		floatSetting("FAI Sector Half Angle", "Half angle in degrees of the approach cone of FAI sectors",
			soar.InputType_setFaiHalfAngle, func(s *ms.SoarSettings) float64 { return s.FaiHalfAngle }),
		floatSetting("Line Half Angle", "Half angle in degrees of the approach side of start and finish lines",
			soar.InputType_setLineHalfAngle, func(s *ms.SoarSettings) float64 { return s.LineHalfAngle }),
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the soard system",
			MessageType: soar.InputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
			current:     func(s *ms.SoarSettings) string { return s.LogLevel },
		},
		settingsItem{
			title:       "Reset Task",
			desc:        "Forget the task progress and wait for a new start",
			MessageType: soar.InputType_resetTask,
			state:       settingsCommand,
		},
		settingsItem{
			title:       "Reload Task",
			desc:        "Read the active task again after it was edited",
			MessageType: soar.InputType_reloadTask,
			state:       settingsCommand,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Replace all settings with their defaults",
			MessageType: soar.InputType_loadDefaultSettings,
			state:       settingsCommand,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: soar.InputType_saveSettings,
			state:       settingsCommand,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0)}
	m.list.Title = "Soard Settings"
	return m
}
