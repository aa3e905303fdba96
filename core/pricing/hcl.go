// Package pricing - HCL price files
package pricing

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"shipment-discount/core/types"
	"shipment-discount/internal/errors"
)

// priceFileSchema describes a price file:
//
//	size "S" {
//	  LP = 150
//	  MR = 200
//	}
var priceFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "size", LabelNames: []string{"name"}},
	},
}

// LoadTable reads a price table from an HCL file
func LoadTable(path string) (*Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config(fmt.Sprintf("failed to read price file %s", path), err)
	}
	return ParseTable(src, path)
}

// ParseTable parses HCL price table source. filename is used in diagnostics.
func ParseTable(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := file.Body.Content(priceFileSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var entries []Entry
	for _, block := range content.Blocks {
		size := types.Size(block.Labels[0])
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diagError(filename, diags)
		}
		for name, attr := range attrs {
			value, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diagError(filename, diags)
			}
			price, err := centsFromValue(value)
			if err != nil {
				return nil, errors.Config(
					fmt.Sprintf("%s: size %q provider %q", attr.Range.String(), size, name), err)
			}
			entries = append(entries, Entry{Size: size, Provider: types.Provider(name), Price: price})
		}
	}

	if len(entries) == 0 {
		return nil, errors.Config(fmt.Sprintf("price file %s defines no prices", filename), nil)
	}
	return NewTable(entries...), nil
}

func centsFromValue(v cty.Value) (types.Cents, error) {
	if v.IsNull() || !v.IsKnown() {
		return 0, fmt.Errorf("price must be a known number")
	}
	if v.Type() != cty.Number {
		return 0, fmt.Errorf("price must be a number, got %s", v.Type().FriendlyName())
	}
	bf := v.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("price must be whole cents, got %s", bf.Text('f', -1))
	}
	n, acc := bf.Int64()
	if acc != big.Exact {
		return 0, fmt.Errorf("price %s out of range", bf.Text('f', -1))
	}
	if n < 0 {
		return 0, fmt.Errorf("price must not be negative, got %d", n)
	}
	return types.Cents(n), nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	msgs := make([]string, 0, len(diags))
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		msgs = append(msgs, fmt.Sprintf("line %d: %s", line, diag.Summary))
	}
	return errors.Config(fmt.Sprintf("invalid price file %s", filename), fmt.Errorf("%s", strings.Join(msgs, "; ")))
}
