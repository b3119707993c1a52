// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command assembles homer's urfave/cli command tree. Each
// subcommand gets the shared runtime metadata through its Metadata map and
// delegates the actual work to the terraform and packer facades.
package command
