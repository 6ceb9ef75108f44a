package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// Sampled-stack model shared by the jfr and pprof commands
// ---------------------------------------------------------------------------

// sampleFrame is one call site of a sampled stack.
type sampleFrame struct {
	name     string // fully-qualified, dot-separated
	location string // "A.java:80", "main.go:12", or "" when unknown
}

// sampleStack is an aggregated stack: identical stacks collapse into one
// entry with a sample count. Frames are leaf-first, the order a Java
// trace prints them in.
type sampleStack struct {
	frames []sampleFrame
	count  int
	thread string // "" if unknown
}

// traceText renders the stack in the Java trace format the shortening
// engine consumes: a synthetic header line followed by "at" frame lines.
func (st *sampleStack) traceText() string {
	var b strings.Builder
	thread := st.thread
	if thread == "" {
		thread = "unknown thread"
	}
	fmt.Fprintf(&b, "%s - %d samples\n", thread, st.count)
	for _, f := range st.frames {
		loc := f.location
		if loc == "" {
			loc = "Unknown Source"
		}
		fmt.Fprintf(&b, "\tat %s(%s)\n", f.name, loc)
	}
	return b.String()
}

// rankStacks orders stacks by sample count descending (name order on
// ties, for stable output) and keeps the top n; n <= 0 keeps everything.
func rankStacks(stacks []sampleStack, n int) []sampleStack {
	sort.Slice(stacks, func(i, j int) bool {
		if stacks[i].count != stacks[j].count {
			return stacks[i].count > stacks[j].count
		}
		return stacks[i].key() < stacks[j].key()
	})
	if n > 0 && n < len(stacks) {
		stacks = stacks[:n]
	}
	return stacks
}

// key is the aggregation identity of a stack.
func (st *sampleStack) key() string {
	parts := make([]string, 0, len(st.frames)+1)
	parts = append(parts, st.thread)
	for _, f := range st.frames {
		parts = append(parts, f.name+"|"+f.location)
	}
	return strings.Join(parts, ";")
}

// writeStacks prints each ranked stack through the shortener. Each trace
// already begins with a newline, which doubles as the separator.
func writeStacks(cmd *cobra.Command, opts *rootOptions, stacks []sampleStack, top int) error {
	ranked := rankStacks(stacks, top)
	for i := range ranked {
		out, err := opts.render(ranked[i].traceText(), true)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}

// aggregate collapses identical stacks, summing their counts.
func aggregate(stacks []sampleStack) []sampleStack {
	byKey := make(map[string]*sampleStack)
	var order []string
	for i := range stacks {
		k := stacks[i].key()
		if agg, ok := byKey[k]; ok {
			agg.count += stacks[i].count
			continue
		}
		st := stacks[i]
		byKey[k] = &st
		order = append(order, k)
	}
	out := make([]sampleStack, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}
