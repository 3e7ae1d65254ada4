// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler. The events are written as a
// mapping in the order given by Keys.
func (ev DailyEvents) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range Keys {
		v, ok := ev.values[k]
		if !ok {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(k)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.String()},
		)
	}
	return node, nil
}
