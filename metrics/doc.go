// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the server's Prometheus instrumentation.
// Each Metrics instance carries its own registry so tests never collide
// on the global default; Handler serves the /metrics endpoint.
package metrics
