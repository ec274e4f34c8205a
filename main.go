// Copyright © 2026 The mpvedit authors

package main

import "github.com/mpvex/mpvedit/cmd"

func main() {
	cmd.Execute()
}
