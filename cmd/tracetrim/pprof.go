package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/pprof/profile"
	"github.com/spf13/cobra"
)

func newPprofCmd(opts *rootOptions) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "pprof <file>",
		Short: "Extract sampled stacks from a pprof profile and print them shortened",
		Long: `Parses a pprof protobuf profile (gzipped or not), aggregates identical
sampled stacks, and prints the hottest ones rendered as traces through
the shortener.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stacks, err := parsePprof(args[0])
			if err != nil {
				return err
			}
			return writeStacks(cmd, opts, stacks, top)
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of stacks to print (0 = all)")
	return cmd
}

func parsePprof(path string) ([]sampleStack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// profile.Parse handles gzip transparently.
	prof, err := profile.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	var stacks []sampleStack
	for _, s := range prof.Sample {
		var frames []sampleFrame
		// Sample locations are leaf-first, which is the trace print order.
		for _, loc := range s.Location {
			// Inlined frames within a location are also leaf-first.
			for _, line := range loc.Line {
				if line.Function == nil {
					continue
				}
				fr := sampleFrame{name: line.Function.Name}
				if line.Function.Filename != "" && line.Line > 0 {
					fr.location = fmt.Sprintf("%s:%d", filepath.Base(line.Function.Filename), line.Line)
				}
				frames = append(frames, fr)
			}
		}
		if len(frames) == 0 {
			continue
		}
		count := 1
		if len(s.Value) > 0 {
			count = int(s.Value[0])
		}
		stacks = append(stacks, sampleStack{frames: frames, count: count})
	}

	return aggregate(stacks), nil
}
