// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

//go:build integration

package parser_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Integration Suite")
}
