package tui

import (
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the page:
// 1) handles global quit keys
// 2) toggles the build info overlay
// 3) delegates all other messages to the page
type RootModel struct {
	current tea.Model

	appName   string
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel opens page.
func NewRootModel(page tea.Model, appName string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		current:   page,
		appName:   appName,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.about):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.appName, r.buildInfo)
	}
	if r.current == nil {
		return renderPage("MCP ASSISTANT", "", "")
	}
	return r.current.View()
}
