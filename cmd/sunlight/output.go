// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cloudeng.io/sunlight/solar"
	"gopkg.in/yaml.v3"
)

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeTable writes the top level fields of v, as they would appear in
// its YAML representation, as a two column table. Nested mappings are
// written with their keys indented.
func writeTable(out io.Writer, v any) error {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	writeNode(tw, &node, "")
	return tw.Flush()
}

func writeNode(tw io.Writer, node *yaml.Node, indent string) {
	if node.Kind != yaml.MappingNode {
		fmt.Fprintf(tw, "%v%v\n", indent, scalar(node))
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		switch v.Kind {
		case yaml.MappingNode:
			fmt.Fprintf(tw, "%v%v:\t\n", indent, k.Value)
			writeNode(tw, v, indent+"  ")
		case yaml.SequenceNode:
			fmt.Fprintf(tw, "%v%v:\t\n", indent, k.Value)
			for _, item := range v.Content {
				writeNode(tw, item, indent+"  ")
				if item.Kind == yaml.MappingNode {
					fmt.Fprintln(tw)
				}
			}
		default:
			fmt.Fprintf(tw, "%v%v\t%v\n", indent, k.Value, scalar(v))
		}
	}
}

func scalar(node *yaml.Node) string {
	if node.ShortTag() == "!!null" || (node.Kind == yaml.ScalarNode && node.Value == "") {
		return string(solar.Placeholder)
	}
	return node.Value
}

// write writes v in the requested format.
func write(out io.Writer, format string, v any) error {
	if format == "yaml" {
		return writeYAML(out, v)
	}
	return writeTable(out, v)
}
