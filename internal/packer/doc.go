// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package packer is homer's facade over the packer binary. It validates an
// app's templates and runs init + build in the app directory, passing any
// user-supplied arguments through untouched.
package packer
