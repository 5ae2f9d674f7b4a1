// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package profile loads named tarsum presets from YAML.
//
// A profile pins the input path, the reference value to compare the byte sum
// against, and where the octal input comes from.
package profile

import (
	"strings"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/tarsum/sum"
	"github.com/riannucci/tarsum/sum/sumdata"
)

// Profile is one named preset.
type Profile struct {
	Name string
	Path string

	Reference sumdata.ReferenceScheme
	Expect    *int64

	Digits sumdata.DigitMode
	// Octal is the literal octal input. When nil the input is read
	// interactively.
	Octal *string

	Digest sumdata.DigestScheme
}

// SumOptions returns the sum.Option values this profile implies.
func (p *Profile) SumOptions() []sum.Option {
	opts := []sum.Option{
		sum.WithReference(p.Reference),
		sum.WithDigest(p.Digest),
	}
	if p.Expect != nil {
		opts = append(opts, sum.WithExpected(*p.Expect))
	}
	return opts
}

// Set is a collection of profiles keyed by name.
type Set map[string]*Profile

// Names returns the sorted profile names.
func (s Set) Names() []string {
	names := stringset.New(len(s))
	for n := range s {
		names.Add(n)
	}
	return names.ToSortedSlice()
}

// Get returns the named profile.
func (s Set) Get(name string) (*Profile, error) {
	if p, ok := s[name]; ok {
		return p, nil
	}
	return nil, errors.Reason("unknown profile %q (have %s)", name,
		strings.Join(s.Names(), ", ")).Err()
}

func mapProfile(name string, yp yamlProfile) (*Profile, errors.MultiError) {
	var merr errors.MultiError
	field := func(f string, err error) {
		merr = append(merr, errors.Annotate(err, "profile %q: %s", name, f).Err())
	}

	p := &Profile{
		Name:   name,
		Path:   strings.TrimSpace(yp.Path),
		Expect: yp.Expect,
		Octal:  yp.Octal,
	}
	if p.Path == "" {
		field("path", errors.New("is required"))
	}

	var err error
	if p.Reference, err = sumdata.ParseReferenceScheme(yp.Reference); err != nil {
		field("reference", err)
	}
	if p.Digest, err = sumdata.ParseDigestScheme(yp.Digest); err != nil {
		field("digest", err)
	}
	if p.Digits, err = sumdata.ParseDigitMode(yp.Digits); err != nil {
		field("digits", err)
	} else if p.Octal != nil {
		if _, err := sumdata.ParseOctal(*p.Octal, p.Digits); err != nil {
			field("octal", err)
		}
	}

	if len(merr) > 0 {
		return nil, merr
	}
	return p, nil
}
