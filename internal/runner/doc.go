// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package runner executes the external terraform and packer binaries. It
// owns the two execution modes (streaming to the terminal, capturing for
// JSON probes), process-group interrupt forwarding, and exit-code
// propagation. homer performs no work of its own here beyond assembling the
// argument list; the tools remain fully in charge of their output.
package runner
