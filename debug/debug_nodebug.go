// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build !debug

package debug

// Debug reports whether the binary was built with the debug tag.
const Debug = false
