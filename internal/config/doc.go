// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for homer's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/homer.yaml or $HOME/.config/homer.yaml
//   - Windows: %APPDATA%/homer/homer.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. Every key homer reads has a default, so the file is optional.
package config
