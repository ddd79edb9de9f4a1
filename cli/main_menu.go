package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cereal/soar"
	ms "pfeifer.dev/soard/settings"
	"pfeifer.dev/soard/utils"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
	showProgress
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

// decodeRemoteSettings decodes the settings a running soard reports.
func decodeRemoteSettings(out soar.SoarExtendedOut, s *ms.SoarSettings) error {
	data, err := out.Settings()
	if err != nil {
		return errors.Wrap(err, "could not read remote settings")
	}
	return errors.Wrap(json.Unmarshal([]byte(data), s), "could not decode remote settings")
}

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list              list.Model
	state             mainState
	settings          settingsModel
	output            outputModel
	progress          progressModel
	pub               *cereal.Publisher[soar.SoarIn]
	sub               *cereal.Subscriber[soar.SoarOut]
	extendedSub       *cereal.Subscriber[soar.SoarExtendedOut]
	extendedData      soar.SoarExtendedOut
	extendedDataValid bool
	remoteSettings    ms.SoarSettings
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active instance of soard", state: showSettings},
		item{title: "Task Progress", desc: "Watch the task progress reported by soard", state: showProgress},
		item{title: "Watch", desc: "Watch the live output from soard", state: showOutput},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := cereal.GetSoarInPub()
	sub := cereal.GetSoarOutSub()
	extendedSub := cereal.GetSoarExtendedOutSub()
	m := uiModel{list: list.New(items, listDelegate, 0, 0), settings: getSettingsModel(), pub: &pub, sub: &sub, extendedSub: &extendedSub}
	m.list.Title = "Soard Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && (m.state == showOutput || m.state == showProgress) {
			m.state = showMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		extendedData, success := m.extendedSub.Read()
		if success {
			m.extendedData = extendedData
			m.extendedDataValid = true
			utils.Logde(decodeRemoteSettings(extendedData, &m.remoteSettings), "source", "soarExtendedOut")
		}
		m.output, _ = m.output.Update(msg, &m)
		m.progress, _ = m.progress.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	case showProgress:
		m.progress, cmd = m.progress.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	case showProgress:
		return m.progress.View()
	}
	return docStyle.Render(m.list.View())
}

func dashboard() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
