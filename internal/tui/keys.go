// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	back    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	copyID  key.Binding
	profile key.Binding
	agent   key.Binding
	info    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	back:    key.NewBinding(key.WithKeys("left", "backspace")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	logout:  key.NewBinding(key.WithKeys("ctrl+l")),
	copyID:  key.NewBinding(key.WithKeys("ctrl+y")),
	profile: key.NewBinding(key.WithKeys("ctrl+p")),
	agent:   key.NewBinding(key.WithKeys("ctrl+a")),
	info:    key.NewBinding(key.WithKeys("v")),
}
