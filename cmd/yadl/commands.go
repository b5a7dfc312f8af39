package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/yadl"
	"github.com/npillmayer/yadl/domdbg"
	"github.com/npillmayer/yadl/host"
	"github.com/npillmayer/yadl/typestring"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the select command.
const (
	formatHTML = "html"
	formatTree = "tree"
	formatDot  = "dot"
)

func selectCmd() *cobra.Command {
	var persistent bool
	var format string
	cmd := &cobra.Command{
		Use:   "select FILE QUERY",
		Short: "Select elements of an HTML document by a CSS selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			var opts []yadl.Option
			if persistent {
				opts = append(opts, yadl.Persistent())
			}
			t := yadl.NewTree(doc, opts...)
			sel, err := t.Select(args[1])
			if err != nil {
				return err
			}
			return printSelection(cmd.OutOrStdout(), sel, format)
		},
	}
	cmd.Flags().BoolVarP(&persistent, "persistent", "p", false,
		"bootstrap a persistent shadow tree before selecting")
	cmd.Flags().StringVarP(&format, "format", "f", formatHTML,
		"output format: html, tree or dot")
	return cmd
}

func printSelection(w io.Writer, sel yadl.Selection, format string) error {
	switch format {
	case formatHTML, formatTree, formatDot:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	for _, e := range sel.All() {
		var err error
		switch format {
		case formatHTML:
			var s string
			if s, err = e.OuterHTML(); err == nil {
				_, err = fmt.Fprintln(w, s)
			}
		case formatTree:
			_, err = io.WriteString(w, e.Print())
		case formatDot:
			err = domdbg.ToGraphViz(e, w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func typeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "type TYPESTRING",
		Short: "Show how a type string like \"span#id.class\" is interpreted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDescriptor(cmd.OutOrStdout(), typestring.Parse(args[0]), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON instead of YAML")
	return cmd
}

func printDescriptor(w io.Writer, d typestring.Descriptor, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(d)
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the persistent element tree of an HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			t := yadl.NewTree(doc)
			root, err := t.Init(nil)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), root.Print())
			return err
		},
	}
}

func loadDocument(path string) (*host.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return host.Parse(f)
}
