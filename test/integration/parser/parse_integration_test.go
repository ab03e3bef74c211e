// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

//go:build integration

package parser_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/samber/oops"

	"github.com/keyline/keyline/internal/command"
)

const definitionsYAML = `
commands:
  - name: open
    help: Open a URL in the current tab
  - name: open-file
    help: Open a local file
  - name: bind
    help: Bind a key to a command
    max-split: 1
  - name: search
    help: Search the current page
    max-split: 0
    flags-with-args: ["-v"]
  - name: repeat
    help: Repeat a command N times
    no-cmd-split: true
aliases:
  o: open
  sr: search ;; repeat 2
`

var _ = Describe("Parsing from a definitions file", func() {
	var (
		parser   *command.Parser
		registry *command.Registry
		aliases  map[string]string
	)

	BeforeEach(func() {
		data := []byte(definitionsYAML)
		Expect(command.ValidateSchema(data)).To(Succeed())

		defs, err := command.ParseDefinitions(data)
		Expect(err).NotTo(HaveOccurred())

		registry = command.NewRegistry()
		registry.LoadDefinitions(defs)
		aliases = defs.Aliases
		parser = command.NewParser()
	})

	Describe("simple commands", func() {
		It("parses a command with arguments", func() {
			outcomes, err := parser.ParseAll("open example.org", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(1))
			Expect(outcomes[0].Err).NotTo(HaveOccurred())
			Expect(outcomes[0].Result.Cmd.Name).To(Equal("open"))
			Expect(outcomes[0].Result.Args).To(Equal([]string{"example.org"}))
		})

		It("strips a leading colon", func() {
			outcomes, err := parser.ParseAll(":open example.org", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes[0].Result.Cmd.Name).To(Equal("open"))
		})

		It("rejects unknown commands with a coded error", func() {
			outcomes, err := parser.ParseAll("frobnicate", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(1))

			oopsErr, ok := oops.AsOops(outcomes[0].Err)
			Expect(ok).To(BeTrue())
			Expect(oopsErr.Code()).To(Equal(command.CodeUnknownCommand))
		})
	})

	Describe("aliases", func() {
		It("expands an alias before splitting", func() {
			outcomes, err := parser.ParseAll("sr term", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(2))
			Expect(outcomes[0].Result.Cmd.Name).To(Equal("search"))
			Expect(outcomes[1].Result.Cmd.Name).To(Equal("repeat"))
		})

		It("expands an alias to its replacement", func() {
			outcomes, err := parser.ParseAll("o example.org", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(1))
			Expect(outcomes[0].Result.Cmd.Name).To(Equal("open"))
			Expect(outcomes[0].Result.Args).To(Equal([]string{"example.org"}))
		})
	})

	Describe("compound commands", func() {
		It("parses every sub-command independently", func() {
			outcomes, err := parser.ParseAll("open a ;; nope ;; bind b c", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(3))
			Expect(outcomes[0].Err).NotTo(HaveOccurred())
			Expect(outcomes[1].Err).To(HaveOccurred())
			Expect(outcomes[2].Err).NotTo(HaveOccurred())
			Expect(outcomes[2].Result.Args).To(Equal([]string{"b", "c"}))
		})

		It("keeps the separator literal for no-cmd-split commands", func() {
			outcomes, err := parser.ParseAll("repeat 2 open a ;; open b", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(1))
			Expect(outcomes[0].Result.Args).To(ContainElement(";;"))
		})
	})

	Describe("bounded splitting", func() {
		It("stops splitting after the bound, counting flag arguments", func() {
			outcomes, err := parser.ParseAll("search --foo -v bar baz qux", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes[0].Result.Args).To(Equal([]string{"--foo", "-v", "bar", "baz qux"}))
		})

		It("keeps the remainder joined for max-split commands", func() {
			outcomes, err := parser.ParseAll("bind x open example.org", registry, aliases, command.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes[0].Result.Args).To(Equal([]string{"x", "open example.org"}))
		})
	})

	Describe("keep mode", func() {
		It("reassembles the input from the display tokens", func() {
			input := "bind  x   open example.org"
			outcomes, err := parser.ParseAll(input, registry, aliases, command.ParseOptions{Keep: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Join(outcomes[0].Result.Cmdline, "")).To(Equal(input))
		})
	})

	Describe("fallback", func() {
		It("tokenizes unknown commands instead of failing", func() {
			outcomes, err := parser.ParseAll("frobnicate a b", registry, aliases, command.ParseOptions{Fallback: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes[0].Err).NotTo(HaveOccurred())
			Expect(outcomes[0].Result.Cmd).To(BeNil())
			Expect(outcomes[0].Result.Cmdline).To(Equal([]string{"frobnicate", "a", "b"}))
		})
	})
})
