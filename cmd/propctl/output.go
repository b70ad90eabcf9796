// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/actionfiles/properties"
)

func (a *app) print(set *properties.Set, format string) error {
	switch format {
	case "properties":
		out, err := a.codec.Stringify(set)
		if err != nil {
			return err
		}
		_, err = io.WriteString(a.stdout, out)
		return err
	case "json":
		return writeJSON(a.stdout, set)
	case "yaml":
		return writeYAML(a.stdout, set)
	default:
		return fmt.Errorf("unknown output format %q (want properties, json or yaml)", format)
	}
}

func writeJSON(w io.Writer, set *properties.Set) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// writeYAML emits the set as a mapping in set order. Multi-line values use
// literal block style.
func writeYAML(w io.Writer, set *properties.Set) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range set.All() {
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
		if strings.Contains(v, "\n") {
			val.Style = yaml.LiteralStyle
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
