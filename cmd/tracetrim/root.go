package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jerrinot/tracetrim/matcher"
	"github.com/jerrinot/tracetrim/stacktrace"
)

// rootOptions carries the relevance configuration shared by every
// subcommand.
type rootOptions struct {
	prefixes    []string
	matcherSpec string
	envFile     string
}

// resolveMatcher picks the matcher for this invocation: --matcher wins,
// then --prefix, then nil, which defers to the process-wide prefix set
// (environment or .env file).
func (o *rootOptions) resolveMatcher() (stacktrace.Matcher, error) {
	if o.matcherSpec != "" {
		return matcher.New(o.matcherSpec)
	}
	if ps := stacktrace.NewPrefixSet(o.prefixes...); len(ps) > 0 {
		return ps, nil
	}
	return nil, nil
}

// render shortens text with the resolved matcher, falling back to the
// process-wide configuration when none was given on the command line.
func (o *rootOptions) render(text string, cut bool) (string, error) {
	m, err := o.resolveMatcher()
	if err != nil {
		return "", err
	}
	if m != nil {
		return stacktrace.RenderWithMatcher(text, cut, m), nil
	}
	return stacktrace.Render(text, cut), nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "tracetrim",
		Short: "Shorten Java-style stack traces to the frames that matter",
		Long: `tracetrim filters exception stack traces: lines from configured relevant
packages are kept, runs of irrelevant frames collapse into a single "..."
marker, and exception headers and "Caused by:" sections always survive.

Relevance comes from --matcher, --prefix, the TRACETRIM_RELEVANT_PKGS
environment variable, or a .env file, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The env file plays the role of local override configuration,
			// so it beats inherited environment. Missing file is fine.
			if _, err := os.Stat(opts.envFile); err == nil {
				if err := godotenv.Overload(opts.envFile); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not load %s: %v\n", opts.envFile, err)
				}
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVarP(&opts.prefixes, "prefix", "p", nil, "relevant package prefix (repeatable)")
	pf.StringVar(&opts.matcherSpec, "matcher", "", `relevance matcher spec: "prefix:com.a.;com.b.", "regexp:RE", or "starlark:FILE"`)
	pf.StringVar(&opts.envFile, "env-file", ".env", "env file consulted for TRACETRIM_RELEVANT_PKGS")

	root.AddCommand(newShortenCmd(opts))
	root.AddCommand(newJFRCmd(opts))
	root.AddCommand(newPprofCmd(opts))

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root
}
