// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes the JSON API under /api, the server-rendered pages of the
// marketing site and the dashboard, and the middleware in front of them:
// request tracing, access logging, response compression, the session check
// for /api/user routes and the route guard for pages.
package http
