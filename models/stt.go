// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// STTLanguage is a language supported by a speech-to-text model.
type STTLanguage struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// STTModel is a speech-to-text model offered by a provider.
type STTModel struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"displayName"`
	Languages   []STTLanguage `json:"languages"`
}

// STTProvider is a speech-to-text vendor.
type STTProvider struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Models      []STTModel `json:"models"`
}

// STTCatalog is the provider -> model -> language tree the agent page
// lets the user choose from.
type STTCatalog struct {
	Providers []STTProvider `json:"providers"`
}

// Provider returns the provider with the given id.
func (c STTCatalog) Provider(id string) (STTProvider, bool) {
	for _, p := range c.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return STTProvider{}, false
}

// Model returns the model with the given id.
func (p STTProvider) Model(id string) (STTModel, bool) {
	for _, m := range p.Models {
		if m.ID == id {
			return m, true
		}
	}
	return STTModel{}, false
}

// Language returns the language with the given id.
func (m STTModel) Language(id string) (STTLanguage, bool) {
	for _, l := range m.Languages {
		if l.ID == id {
			return l, true
		}
	}
	return STTLanguage{}, false
}

// STTSelection is the user's choice of provider, model and language.
//
// Selections are edited through WithProvider/WithModel/WithLanguage so the
// cascade holds: a new provider clears model and language, a new model clears
// language.
type STTSelection struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

// WithProvider returns the selection with provider set and model and language cleared.
func (s STTSelection) WithProvider(provider string) STTSelection {
	return STTSelection{Provider: provider}
}

// WithModel returns the selection with model set and language cleared.
func (s STTSelection) WithModel(model string) STTSelection {
	return STTSelection{Provider: s.Provider, Model: model}
}

// WithLanguage returns the selection with language set.
func (s STTSelection) WithLanguage(language string) STTSelection {
	s.Language = language
	return s
}

// Complete reports whether all three levels are chosen.
func (s STTSelection) Complete() bool {
	return s.Provider != "" && s.Model != "" && s.Language != ""
}

// STTSelectionView is an STTSelection resolved to display names.
type STTSelectionView struct {
	Provider string
	Model    string
	Language string
}

// Describe resolves s against c. Levels that cannot be resolved are left empty.
func (c STTCatalog) Describe(s STTSelection) STTSelectionView {
	var view STTSelectionView

	provider, ok := c.Provider(s.Provider)
	if !ok {
		return view
	}
	view.Provider = provider.DisplayName

	model, ok := provider.Model(s.Model)
	if !ok {
		return view
	}
	view.Model = model.DisplayName

	if language, ok := model.Language(s.Language); ok {
		view.Language = language.DisplayName
	}

	return view
}
