package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grafana/jfr-parser/parser"
	"github.com/grafana/jfr-parser/parser/types"
	"github.com/spf13/cobra"
)

func newJFRCmd(opts *rootOptions) *cobra.Command {
	var eventType string
	var top int

	cmd := &cobra.Command{
		Use:   "jfr <file.jfr[.gz]>",
		Short: "Extract sampled stacks from a JFR recording and print them shortened",
		Long: `Parses a JFR recording, aggregates identical sampled stacks, and prints
the hottest ones rendered as Java-style traces through the shortener.
Event types: cpu (default), wall, alloc, lock.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch eventType {
			case "cpu", "wall", "alloc", "lock":
			default:
				return fmt.Errorf("unknown event type %q (valid: cpu, wall, alloc, lock)", eventType)
			}
			stacks, err := parseJFR(args[0], eventType)
			if err != nil {
				return err
			}
			return writeStacks(cmd, opts, stacks, top)
		},
	}

	cmd.Flags().StringVarP(&eventType, "event", "e", "cpu", "event type: cpu, wall, alloc, lock")
	cmd.Flags().IntVar(&top, "top", 10, "number of stacks to print (0 = all)")
	return cmd
}

// ---------------------------------------------------------------------------
// JFR → sampled stacks
// ---------------------------------------------------------------------------

func readJFRBytes(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	}
	return io.ReadAll(f)
}

// resolveFrame returns the dot-separated fully-qualified name of a frame.
func resolveFrame(p *parser.Parser, sf types.StackFrame) string {
	method := p.GetMethod(sf.Method)
	if method == nil {
		return "<unknown>"
	}
	methodName := p.GetSymbolString(method.Name)
	className := ""
	if class := p.GetClass(method.Type); class != nil {
		className = strings.ReplaceAll(p.GetSymbolString(class.Name), "/", ".")
	}
	if className == "" {
		return methodName
	}
	return className + "." + methodName
}

func resolveThread(p *parser.Parser, ref types.ThreadRef) string {
	idx, ok := p.Threads.IDMap[ref]
	if !ok {
		return ""
	}
	t := &p.Threads.Thread[idx]
	if t.JavaName != "" {
		return t.JavaName
	}
	return t.OsName
}

func parseJFR(path, eventType string) ([]sampleStack, error) {
	buf, err := readJFRBytes(path)
	if err != nil {
		return nil, err
	}

	p := parser.NewParser(buf, parser.Options{})
	var stacks []sampleStack

	for {
		typ, err := p.ParseEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse event: %w", err)
		}

		var stRef types.StackTraceRef
		var thRef types.ThreadRef
		var match bool

		switch {
		case eventType == "cpu" && typ == p.TypeMap.T_EXECUTION_SAMPLE:
			stRef = p.ExecutionSample.StackTrace
			thRef = p.ExecutionSample.SampledThread
			match = true
		case eventType == "wall" && typ == p.TypeMap.T_WALL_CLOCK_SAMPLE:
			stRef = p.WallClockSample.StackTrace
			thRef = p.WallClockSample.SampledThread
			match = true
		case eventType == "alloc" && typ == p.TypeMap.T_ALLOC_IN_NEW_TLAB:
			stRef = p.ObjectAllocationInNewTLAB.StackTrace
			thRef = p.ObjectAllocationInNewTLAB.EventThread
			match = true
		case eventType == "alloc" && typ == p.TypeMap.T_ALLOC_OUTSIDE_TLAB:
			stRef = p.ObjectAllocationOutsideTLAB.StackTrace
			thRef = p.ObjectAllocationOutsideTLAB.EventThread
			match = true
		case eventType == "alloc" && typ == p.TypeMap.T_ALLOC_SAMPLE:
			stRef = p.ObjectAllocationSample.StackTrace
			thRef = p.ObjectAllocationSample.EventThread
			match = true
		case eventType == "lock" && typ == p.TypeMap.T_MONITOR_ENTER:
			stRef = p.JavaMonitorEnter.StackTrace
			thRef = p.JavaMonitorEnter.EventThread
			match = true
		}

		if !match {
			continue
		}

		st := p.GetStacktrace(stRef)
		if st == nil || len(st.Frames) == 0 {
			continue
		}

		// JFR frames are leaf-first, which is exactly the trace print order.
		frames := make([]sampleFrame, len(st.Frames))
		for i, f := range st.Frames {
			loc := ""
			if f.LineNumber > 0 {
				loc = fmt.Sprintf("line %d", f.LineNumber)
			}
			frames[i] = sampleFrame{name: resolveFrame(p, f), location: loc}
		}

		stacks = append(stacks, sampleStack{
			frames: frames,
			count:  1,
			thread: resolveThread(p, thRef),
		})
	}

	return aggregate(stacks), nil
}
