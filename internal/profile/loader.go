// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package profile

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults returns the built-in profiles.
func Defaults() Set {
	s, err := Parse(bytes.NewReader(defaultsYAML))
	if err != nil {
		panic(errors.Annotate(err, "built-in profiles").Err())
	}
	return s
}

// Load reads a profile file.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "opening profiles").Err()
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, errors.Annotate(err, "loading %q", path).Err()
	}
	return s, nil
}

// Parse decodes profiles from YAML. Every invalid profile is reported, not
// just the first.
func Parse(r io.Reader) (Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var yf yamlFile
	if err := dec.Decode(&yf); err != nil && err != io.EOF {
		return nil, errors.Annotate(err, "decoding yaml").Err()
	}
	if len(yf.Profiles) == 0 {
		return nil, errors.New("no profiles defined")
	}

	ret := make(Set, len(yf.Profiles))
	var merr errors.MultiError
	for _, name := range sortedKeys(yf.Profiles) {
		p, errs := mapProfile(name, yf.Profiles[name])
		if len(errs) > 0 {
			merr = append(merr, errs...)
			continue
		}
		ret[name] = p
	}
	if len(merr) > 0 {
		return nil, merr
	}
	return ret, nil
}

func sortedKeys(m map[string]yamlProfile) []string {
	keys := stringset.New(len(m))
	for k := range m {
		keys.Add(k)
	}
	return keys.ToSortedSlice()
}
