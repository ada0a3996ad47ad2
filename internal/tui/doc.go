// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal dashboard of the client: welcome, login and
// signup screens plus the profile and agent pages of the signed-in user.
//
// Screens read the signed-in user from the session context and navigate
// through [NavigateTo] messages; the root model applies the route guard
// before every screen change.
package tui
