/*
Command yadl queries and inspects HTML documents through yadl element trees.

    yadl select page.html "ul > li.open" --persistent --format tree
    yadl type "span#id.a.b" --json
    yadl tree page.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// tracing keys of the yadl packages
var traceKeys = []string{"yadl.dom", "yadl.host", "yadl.tree"}

func newRootCmd() *cobra.Command {
	var traceLevel string
	rootCmd := &cobra.Command{
		Use:   "yadl",
		Short: "Query and inspect HTML documents as element trees",
		Long: `yadl parses HTML documents into element trees.

Elements may be selected by CSS selectors, either from the host document
or from a persistent shadow tree bootstrapped from it. Type strings such
as "span#id.class" may be inspected as well.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(traceLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error",
		"trace level (Error, Info or Debug)")
	rootCmd.AddCommand(
		selectCmd(),
		typeCmd(),
		treeCmd(),
	)
	return rootCmd
}

// setupTracing routes tracing output to a Go standard logger.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}
