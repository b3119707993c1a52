// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package resolve turns raw CLI tokens into an Invocation: a canonical
// command, a target, the interactive flag, and any passthrough arguments.
// It owns the order-agnostic "command target" / "target command" grammar and
// the short aliases (p, a, d, u, b).
package resolve
