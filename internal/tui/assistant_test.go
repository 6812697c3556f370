// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/mock"
	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testServerURL = "http://localhost:3000"

type fixture struct {
	handle   *mock.MockHandle
	target   *eventsource.Target
	services *service.ClientServices
	model    assistantModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	handle := mock.NewMockHandle(ctrl)
	target := eventsource.NewTarget()

	handle.EXPECT().AddEventListener(gomock.Any(), gomock.Any()).DoAndReturn(target.AddEventListener).AnyTimes()
	handle.EXPECT().ServerURL().Return(testServerURL).AnyTimes()
	handle.EXPECT().IsConnected().Return(false).Times(1)

	services := service.NewClientServices(handle, logger.Nop())
	t.Cleanup(services.Close)

	return &fixture{
		handle:   handle,
		target:   target,
		services: services,
		model:    newAssistantModel(context.Background(), services, nil),
	}
}

func (f *fixture) expectEchoServer() {
	f.handle.EXPECT().IsConnected().Return(false)
	f.handle.EXPECT().Connect(gomock.Any()).DoAndReturn(func(context.Context) error {
		f.target.DispatchEvent(eventsource.NewEvent(eventsource.EventOpen, testServerURL))
		return nil
	})
	f.handle.EXPECT().ListTools(gomock.Any()).Return(&mcp.ListToolsResult{
		Tools: []*mcp.Tool{{Name: "echo", Description: "Echoes input"}},
	}, nil)
	f.handle.EXPECT().ListResources(gomock.Any()).Return(&mcp.ListResourcesResult{
		Resources: []*mcp.Resource{{Name: "readme", URI: "file:///readme.md"}},
	}, nil)
	f.handle.EXPECT().ListResourceTemplates(gomock.Any()).Return(&mcp.ListResourceTemplatesResult{}, nil)
}

func update(t *testing.T, m assistantModel, msg tea.Msg) (assistantModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(assistantModel)
	require.True(t, ok)
	return am, cmd
}

func connect(t *testing.T, m assistantModel) assistantModel {
	t.Helper()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.busy)
	assert.Contains(t, m.View(), "Status: Connecting...")

	// выполняем команду подключения напрямую, без tea.Program
	m, _ = update(t, m, m.cmdConnect()())
	return m
}

func TestAssistant_InitialView(t *testing.T) {
	f := newFixture(t)

	view := f.model.View()
	assert.Contains(t, view, "Server: "+testServerURL)
	assert.Contains(t, view, "Status: Disconnected")
	assert.NotContains(t, view, "Tools")
	assert.Contains(t, view, "enter: connect")
}

func TestAssistant_ConnectShowsLists(t *testing.T) {
	f := newFixture(t)
	f.expectEchoServer()

	m := connect(t, f.model)

	assert.False(t, m.busy)
	view := m.View()
	assert.Contains(t, view, "Status: Connected")
	assert.Contains(t, view, "Tools (1)")
	assert.Contains(t, view, "echo: Echoes input")
	assert.Contains(t, view, "Resources (1)")
	assert.Contains(t, view, "readme: file:///readme.md")
}

func TestAssistant_ConnectionRefused(t *testing.T) {
	f := newFixture(t)

	connErr := &adapter.ConnectionError{ServerURL: testServerURL, Err: errors.New("ECONNREFUSED")}
	f.handle.EXPECT().IsConnected().Return(false)
	f.handle.EXPECT().Connect(gomock.Any()).Return(connErr)

	m := connect(t, f.model)

	view := m.View()
	assert.Contains(t, view, "Error: ECONNREFUSED")
	assert.NotContains(t, view, "Tools")
}

func TestAssistant_EnterIgnoredWhileBusy(t *testing.T) {
	f := newFixture(t)

	m, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "повторный Connect во время подключения игнорируется")
}

func TestAssistant_StatusPush(t *testing.T) {
	f := newFixture(t)

	m, _ := update(t, f.model, statusMsg(models.ErrorStatus("server closed the stream")))
	assert.Contains(t, m.View(), "Error: server closed the stream")
}

func TestAssistant_NavigationAndCopy(t *testing.T) {
	f := newFixture(t)
	f.expectEchoServer()

	var copied string
	f.model.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := connect(t, f.model)

	text, ok := m.selectedText()
	require.True(t, ok)
	assert.Equal(t, "echo", text)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.idx, "курсор не выходит за конец списка")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	text, ok = m.selectedText()
	require.True(t, ok)
	assert.Equal(t, "file:///readme.md", text)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "file:///readme.md", copied)
	assert.Contains(t, m.View(), "Copied: file:///readme.md")

	m, _ = update(t, m, clearNoticeMsg{})
	assert.NotContains(t, m.View(), "Copied")
}

func TestAssistant_CopyFailure(t *testing.T) {
	f := newFixture(t)
	f.expectEchoServer()
	f.model.writeClipboard = func(string) error { return errors.New("no clipboard") }

	m := connect(t, f.model)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.View(), "Copy failed: copy to clipboard: no clipboard")
}

func TestAssistant_CopyWithEmptyList(t *testing.T) {
	f := newFixture(t)

	_, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Nil(t, cmd)
}

func TestAssistant_Disconnect(t *testing.T) {
	f := newFixture(t)
	f.expectEchoServer()
	f.handle.EXPECT().Disconnect(gomock.Any()).DoAndReturn(func(context.Context) error {
		f.target.DispatchEvent(eventsource.NewEvent(eventsource.EventClose, ""))
		return nil
	})

	m := connect(t, f.model)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	m, _ = update(t, m, m.cmdDisconnect()())

	view := m.View()
	assert.Contains(t, view, "Status: Disconnected")
	assert.NotContains(t, view, "echo: Echoes input")
}

func TestAssistant_RefreshRequiresCatalog(t *testing.T) {
	f := newFixture(t)

	_, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd, "без каталога обновлять нечего")
}

func TestAssistant_RefreshFailureKeepsLists(t *testing.T) {
	f := newFixture(t)
	f.expectEchoServer()

	m := connect(t, f.model)
	m, _ = update(t, m, refreshDoneMsg{err: &adapter.RemoteCallError{Op: "listTools", Err: errors.New("timeout")}})

	view := m.View()
	assert.Contains(t, view, "Refresh failed: timeout")
	assert.Contains(t, view, "echo: Echoes input")
}

func TestWaitForStatus(t *testing.T) {
	assert.Nil(t, waitForStatus(nil))

	ch := make(chan models.Status, 1)
	ch <- models.ConnectedStatus()
	assert.Equal(t, statusMsg(models.ConnectedStatus()), waitForStatus(ch)())

	close(ch)
	assert.Nil(t, waitForStatus(ch)())
}
