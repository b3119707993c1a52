// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tui holds the small Bubble Tea interactions homer needs: the
// resource-change picker used by interactive plan/destroy, and the yes/no
// and lock-ID prompts used by unlock.
package tui
