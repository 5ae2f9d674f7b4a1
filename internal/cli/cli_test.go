// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package cli

import (
	"archive/tar"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/luci/common/testing/assertions"

	"github.com/riannucci/tarsum/internal/buildinfo"
)

type result struct {
	out, err string
}

func execute(stdin string, args ...string) (result, error) {
	cmd := newRootCmd()
	out, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return result{out.String(), errBuf.String()}, err
}

func writeTar(path string) {
	buf := &bytes.Buffer{}
	tw := tar.NewWriter(buf)
	if err := tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     "lib_tar.h",
		Mode:     0644,
		Size:     5,
		Format:   tar.FormatUSTAR,
	}); err != nil {
		panic(err)
	}
	if _, err := tw.Write([]byte("hello")); err != nil {
		panic(err)
	}
	if err := tw.Close(); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		panic(err)
	}
}

func TestCLI(t *testing.T) {
	color.NoColor = true

	Convey("tarsum", t, func() {
		dir := t.TempDir()
		data := filepath.Join(dir, "data.bin")
		So(os.WriteFile(data, []byte{0, 1, 2, 0, 200, 100}, 0644), ShouldBeNil)
		archive := filepath.Join(dir, "header.tar")
		writeTar(archive)

		profiles := filepath.Join(dir, "profiles.yaml")
		So(os.WriteFile(profiles, []byte(fmt.Sprintf(`profiles:
  data:
    path: %q
    expect: 303
  prompt:
    path: %q
    expect: 301
  archive:
    path: %q
    reference: header
    digest: sha2-256
    octal: "0007"
  missing:
    path: %q
    octal: "7"
`, data, data, archive, filepath.Join(dir, "nope.tar"))), 0644), ShouldBeNil)

		Convey("sum", func() {
			Convey("path and expect", func() {
				res, err := execute("", "sum", data, "--expect", "301")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual,
					"Sum of non-zero bytes: 303\n"+
						"Reference checksum: 301\n")
			})

			Convey("no reference", func() {
				res, err := execute("", "sum", data)
				So(err, ShouldBeNil)
				So(res.out, ShouldEndWith, "Reference checksum: n/a\n")
			})

			Convey("profile", func() {
				res, err := execute("", "--profiles", profiles, "sum", "-p", "data")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual,
					"Sum of non-zero bytes: 303\n"+
						"Reference checksum: 303\n")
			})

			Convey("flags override the profile", func() {
				res, err := execute("", "--profiles", profiles, "sum", "-p", "data", "--expect", "42")
				So(err, ShouldBeNil)
				So(res.out, ShouldEndWith, "Reference checksum: 42\n")
			})

			Convey("header reference with digest", func() {
				res, err := execute("", "--profiles", profiles, "sum", "-p", "archive")
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(res.out), "\n")
				So(lines, ShouldHaveLength, 3)
				So(lines[2], ShouldStartWith, "Digest (sha2-256): ")
			})

			Convey("verbose logs to stderr", func() {
				res, err := execute("", "-v", "sum", data)
				So(err, ShouldBeNil)
				So(res.err, ShouldContainSubstring, "summed 6 bytes")
			})

			Convey("missing file", func() {
				res, err := execute("", "sum", filepath.Join(dir, "nonexistent"))
				So(err, ShouldErrLike, "opening input")
				So(res.out, ShouldEqual, "")
				So(res.err, ShouldContainSubstring, "Error:")
			})

			Convey("no path", func() {
				_, err := execute("", "sum")
				So(err, ShouldErrLike, "need a PATH or --profile")
			})

			Convey("bad flags", func() {
				_, err := execute("", "sum", data, "--reference", "posix")
				So(err, ShouldErrLike, "unknown reference scheme")
				_, err = execute("", "sum", data, "--digest", "md5")
				So(err, ShouldErrLike, "unknown digest")
				_, err = execute("", "--profiles", profiles, "sum", "-p", "nope")
				So(err, ShouldErrLike, `unknown profile "nope"`)
			})
		})

		Convey("octal", func() {
			Convey("literal", func() {
				res, err := execute("", "octal", "11227")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual, "octal to int: 4753\n")
			})

			Convey("prompt", func() {
				res, err := execute("10\n", "octal")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual, "size octal: octal to int: 8\n")
			})

			Convey("bad digit", func() {
				_, err := execute("", "octal", "19")
				So(err, ShouldErrLike, "bad octal digit '9'")
			})

			Convey("legacy digits", func() {
				res, err := execute("", "octal", "19", "--legacy-digits")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual, "octal to int: 17\n")
			})

			Convey("profile literal", func() {
				res, err := execute("", "--profiles", profiles, "octal", "-p", "archive")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual, "octal to int: 7\n")
			})

			Convey("argument beats profile", func() {
				res, err := execute("", "--profiles", profiles, "octal", "-p", "archive", "10")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual, "octal to int: 8\n")
			})
		})

		Convey("run", func() {
			Convey("no octal input", func() {
				res, err := execute("", "--profiles", profiles, "run", "-p", "data")
				So(err, ShouldErrLike, "no octal input")
				So(res.out, ShouldStartWith, "Sum of non-zero bytes: 303\n")
			})

			Convey("prompted octal", func() {
				res, err := execute("11227\n", "--profiles", profiles, "run", "-p", "prompt")
				So(err, ShouldBeNil)
				So(res.out, ShouldEqual,
					"Sum of non-zero bytes: 303\n"+
						"Reference checksum: 301\n"+
						"size octal: octal to int: 4753\n")
			})

			Convey("missing file", func() {
				_, err := execute("", "--profiles", profiles, "run", "-p", "missing")
				So(err, ShouldErrLike, `profile "missing"`)
				So(err, ShouldErrLike, "opening input")
			})

			Convey("bad profiles file", func() {
				_, err := execute("", "--profiles", filepath.Join(dir, "nope.yaml"), "run")
				So(err, ShouldErrLike, "opening profiles")
			})
		})

		Convey("profiles", func() {
			res, err := execute("", "--profiles", profiles, "profiles")
			So(err, ShouldBeNil)
			So(res.out, ShouldContainSubstring, "archive\n")
			So(res.out, ShouldContainSubstring, "  reference: header (expect -)\n")
			So(res.out, ShouldContainSubstring, "  digest:    sha2-256\n")
			So(res.out, ShouldContainSubstring, "  octal:     <stdin> (octal digits)\n")

			res, err = execute("", "profiles")
			So(err, ShouldBeNil)
			So(res.out, ShouldContainSubstring, "  path:      header.tar\n")
			So(res.out, ShouldContainSubstring, "  path:      machin.tar\n")
		})

		Convey("version", func() {
			res, err := execute("", "version")
			So(err, ShouldBeNil)
			So(res.out, ShouldEqual, buildinfo.String()+"\n")
		})
	})
}
