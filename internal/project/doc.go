// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package project discovers the on-disk project layout homer operates on: a
// root directory whose subdirectories are Terraform environments, plus an
// apps subtree of Packer templates. It also reads the version pins
// (.terraform-version files and required_version constraints) that gate
// execution.
package project
