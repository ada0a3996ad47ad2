// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires configuration, local storage, the server adapter, the session
// context and the terminal UI into one process lifecycle.
package client
