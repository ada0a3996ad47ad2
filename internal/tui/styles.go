// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
	brandStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
