// version.go - build and version information

package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "six5go2 %s\n", Version)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Dependencies:")
		for _, dep := range info.Deps {
			fmt.Fprintf(w, "  %s %s\n", dep.Path, dep.Version)
		}
	}
}
