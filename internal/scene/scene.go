/*
 * Copyright (c) 2026 by the Go Drafter authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene reads and writes scene documents: JSON files carrying a
// named shape list. Documents are validated against an embedded JSON schema
// on load so the CLI and tests share well-formed fixtures. The schema binds
// structure (ids, point objects, rotation fields), not semantic shape
// validity: unknown kinds and malformed geometry load fine and are simply
// ignored by the engine. The engine itself never touches files; it consumes
// the shapes a document carries.
package scene

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"godrafter/internal/geom"
)

//go:embed schema.json
var schemaJSON []byte

// Document is a named set of shapes.
type Document struct {
	Name   string       `json:"name,omitempty"`
	Shapes []geom.Shape `json:"shapes"`
}

// Validate checks raw document bytes against the scene schema. A schema
// violation returns a single error listing every reported problem.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate scene: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("scene does not conform to schema: %s", strings.Join(msgs, "; "))
}

// Parse validates and decodes a document from raw bytes.
func Parse(data []byte) (*Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Save writes the document as canonical indented JSON.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
