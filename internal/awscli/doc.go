// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package awscli wraps the external AWS CLI binary. Every AWS interaction in
// dashctl goes through Runner: build an argument vector, execute the binary
// under a bounded timeout, and normalize the outcome into a Result. There is
// no retry, pagination, or direct SDK call here; the wrapped CLI and the
// service behind it own all of that.
package awscli
