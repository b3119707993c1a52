// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output holds the terminal styling homer applies to its own
// messages: headers, banners, and the success/warning/failure palette.
// Child process output is never routed through here; it streams untouched.
package output
