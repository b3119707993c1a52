// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/homer-cli/homer/internal/log"
)

var terraformBlockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "terraform"},
	},
}

var requiredVersionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "required_version"},
	},
}

// RequiredConstraint scans the .tf files of an environment directory for a
// terraform { required_version = "..." } setting and returns the first
// constraint string found. Files that fail to parse are skipped; homer is
// not a Terraform validator, the real binary will complain soon enough.
func RequiredConstraint(envDir string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(envDir, terraformFileGlob))
	if err != nil {
		return "", false
	}

	parser := hclparse.NewParser()
	for _, file := range matches {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			log.Debugf("skipping unparseable file: file=%s diags=%v", file, diags)
			continue
		}

		content, _, diags := f.Body.PartialContent(terraformBlockSchema)
		if diags.HasErrors() {
			continue
		}

		for _, block := range content.Blocks {
			attrs, _, diags := block.Body.PartialContent(requiredVersionSchema)
			if diags.HasErrors() {
				continue
			}
			attr, ok := attrs.Attributes["required_version"]
			if !ok {
				continue
			}

			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() || val.Type() != cty.String || val.IsNull() {
				continue
			}
			return val.AsString(), true
		}
	}

	return "", false
}
