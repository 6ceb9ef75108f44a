// tracetrim: shorten Java-style exception stack traces to the frames
// that matter.
//
// Usage:
//
//	tracetrim <command> [flags]
//
// Commands: shorten (filter trace text from a file or stdin), jfr and
// pprof (extract sampled stacks from a profile and print them shortened).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
