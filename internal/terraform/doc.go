// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package terraform is homer's facade over the terraform binary: init,
// plan, apply, destroy, the interactive plan/destroy selection flow, state
// lock release, and the version pin checks that gate execution. All state
// semantics stay with Terraform itself; this package only assembles
// invocations and interprets the JSON terraform offers to emit.
package terraform
