// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 2 * time.Second

type listFocus int

const (
	focusTools listFocus = iota
	focusResources
)

// assistantModel is the only page of the terminal client: the status line,
// the Connect action and, once connected, the tool and resource lists.
type assistantModel struct {
	ctx      context.Context
	catalog  service.CatalogService
	statusCh <-chan models.Status

	status  models.Status
	busy    bool
	spinner spinner.Model

	fetched   bool
	tools     []models.ToolEntry
	resources []models.ResourceEntry
	focus     listFocus
	idx       int

	notice string
	width  int

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error
}

func newAssistantModel(ctx context.Context, services *service.ClientServices, statusCh <-chan models.Status) assistantModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return assistantModel{
		ctx:            ctx,
		catalog:        services.CatalogService,
		statusCh:       statusCh,
		status:         services.StatusService.Current(),
		spinner:        s,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m assistantModel) Init() tea.Cmd {
	return waitForStatus(m.statusCh)
}

func (m assistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = models.Status(msg)
		return m, waitForStatus(m.statusCh)
	case connectDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = models.ErrorStatus(msg.err.Error())
			return m, nil
		}
		m.status = models.ConnectedStatus()
		m.setCatalog(msg.catalog)
		return m, nil
	case refreshDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = "Refresh failed: " + msg.err.Error()
			return m, cmdClearNotice()
		}
		m.setCatalog(msg.catalog)
		m.notice = "Refreshed"
		return m, cmdClearNotice()
	case disconnectDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = models.ErrorStatus(msg.err.Error())
			return m, nil
		}
		m.status = models.DisconnectedStatus()
		m.setCatalog(models.Catalog{})
		m.fetched = false
		return m, nil
	case copiedMsg:
		m.notice = "Copied: " + fitText(msg.text, 40)
		return m, cmdClearNotice()
	case copyFailedMsg:
		m.notice = "Copy failed: " + msg.err.Error()
		return m, cmdClearNotice()
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m assistantModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.connect):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = models.ConnectingStatus()
		return m, tea.Batch(m.spinner.Tick, m.cmdConnect())
	case key.Matches(msg, keys.refresh):
		if m.busy || !m.fetched {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.disconnect):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDisconnect())
	case key.Matches(msg, keys.tab):
		if m.focus == focusTools {
			m.focus = focusResources
		} else {
			m.focus = focusTools
		}
		m.idx = 0
		return m, nil
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < m.focusedLen()-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		text, ok := m.selectedText()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.writeClipboard, text)
	}

	return m, nil
}

func (m *assistantModel) setCatalog(c models.Catalog) {
	m.fetched = true
	m.tools = c.Tools
	m.resources = c.Resources
	if m.idx >= m.focusedLen() {
		m.idx = max(m.focusedLen()-1, 0)
	}
}

func (m assistantModel) focusedLen() int {
	if m.focus == focusResources {
		return len(m.resources)
	}
	return len(m.tools)
}

// selectedText returns what the copy key puts on the clipboard: the tool
// name or the resource URI under the cursor.
func (m assistantModel) selectedText() (string, bool) {
	if m.idx < 0 || m.idx >= m.focusedLen() {
		return "", false
	}
	if m.focus == focusResources {
		return m.resources[m.idx].URI, true
	}
	return m.tools[m.idx].Name, true
}

func (m assistantModel) View() string {
	var b strings.Builder

	b.WriteString("Server: ")
	b.WriteString(m.catalog.ServerURL())
	b.WriteString("\nStatus: ")
	b.WriteString(m.renderStatus())
	if m.busy {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	if m.fetched {
		b.WriteString("\n")
		b.WriteString(m.renderList(fmt.Sprintf("Tools (%d)", len(m.tools)), focusTools, entriesOf(m.tools)))
		b.WriteString("\n")
		b.WriteString(m.renderList(fmt.Sprintf("Resources (%d)", len(m.resources)), focusResources, entriesOf(m.resources)))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	hotKeys := "enter: connect  v: about"
	if m.fetched {
		hotKeys = "enter: connect  r: refresh  d: disconnect  tab: switch list  c: copy  v: about"
	}

	return appStyle.Render(renderPage("MCP ASSISTANT", b.String(), hotKeys))
}

func (m assistantModel) renderStatus() string {
	text := m.status.String()
	switch m.status.Kind {
	case models.StatusError:
		return errorStyle.Render(text)
	case models.StatusConnected:
		return connectedStyle.Render(text)
	default:
		return text
	}
}

func (m assistantModel) renderList(title string, focus listFocus, lines []string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if len(lines) == 0 {
		b.WriteString("  -\n")
		return b.String()
	}

	width := m.width - 8
	for i, line := range lines {
		cursor := "  "
		if m.focus == focus && i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(fitText(line, width))
		} else {
			line = fitText(line, width)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func entriesOf[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

func (m assistantModel) cmdConnect() tea.Cmd {
	ctx := m.ctx
	svc := m.catalog
	return func() tea.Msg {
		catalog, err := svc.ConnectAndFetch(ctx)
		return connectDoneMsg{catalog: catalog, err: err}
	}
}

func (m assistantModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.catalog
	return func() tea.Msg {
		catalog, err := svc.Refresh(ctx)
		return refreshDoneMsg{catalog: catalog, err: err}
	}
}

func (m assistantModel) cmdDisconnect() tea.Cmd {
	ctx := m.ctx
	svc := m.catalog
	return func() tea.Msg {
		return disconnectDoneMsg{err: svc.Disconnect(ctx)}
	}
}

func waitForStatus(ch <-chan models.Status) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return statusMsg(s)
	}
}

func cmdCopyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
