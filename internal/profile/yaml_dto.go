// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package profile

type yamlFile struct {
	Profiles map[string]yamlProfile `yaml:"profiles"`
}

type yamlProfile struct {
	Path      string  `yaml:"path"`
	Expect    *int64  `yaml:"expect"`
	Reference string  `yaml:"reference"`
	Digits    string  `yaml:"digits"`
	Octal     *string `yaml:"octal"`
	Digest    string  `yaml:"digest"`
}
