// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command emvtlv decodes and encodes EMV BER-TLV data objects.
package main

import "codello.dev/emvtlv/cmd/emvtlv/cmd"

func main() {
	cmd.Execute()
}
