// Package schema summarises sobject describe metadata for operators: which
// fields must be supplied on create, which picklist values are active, and
// which fields reference other objects.
package schema

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	sfcrm "github.com/natserract/sfcrm/pkg/salesforce/crm"
)

// maxPicklistValues caps how many active values are listed per picklist in
// the summary.
const maxPicklistValues = 10

type FieldInfo struct {
	Name           string   `json:"name"`
	Label          string   `json:"label"`
	Type           string   `json:"type"`
	Required       bool     `json:"required"`
	Createable     bool     `json:"createable"`
	Updateable     bool     `json:"updateable"`
	PicklistValues []string `json:"picklist_values,omitempty"`
	References     []string `json:"references,omitempty"`
}

type ObjectSchema struct {
	Name   string      `json:"name"`
	Label  string      `json:"label"`
	Fields []FieldInfo `json:"fields"`
}

// Summarize converts a describe response into its JSON export form.
func Summarize(desc *sfcrm.SObjectDescribe) ObjectSchema {
	return ObjectSchema{
		Name:  desc.Name,
		Label: desc.Label,
		Fields: lo.Map(desc.Fields, func(f sfcrm.FieldDescribe, _ int) FieldInfo {
			info := FieldInfo{
				Name:       f.Name,
				Label:      f.Label,
				Type:       f.Type,
				Required:   f.Required(),
				Createable: f.Createable,
				Updateable: f.Updateable,
				References: f.ReferenceTo,
			}
			if f.Type == "picklist" && len(f.PicklistValues) > 0 {
				info.PicklistValues = activeValues(f)
			}
			return info
		}),
	}
}

func activeValues(f sfcrm.FieldDescribe) []string {
	active := lo.Filter(f.PicklistValues, func(pv sfcrm.PicklistValue, _ int) bool { return pv.Active })
	return lo.Map(active, func(pv sfcrm.PicklistValue, _ int) string { return pv.Value })
}

// WriteSummary prints a human-readable overview of desc.
func WriteSummary(w io.Writer, desc *sfcrm.SObjectDescribe) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "\n%s\nObject: %s (%s)\n%s\n", rule, desc.Name, desc.Label, rule)

	required := lo.Filter(desc.Fields, func(f sfcrm.FieldDescribe, _ int) bool {
		return f.Required() && f.Createable
	})
	if len(required) > 0 {
		b.WriteString("\nREQUIRED FIELDS (must provide on create):\n")
		for _, f := range required {
			fmt.Fprintf(&b, "  - %s (%s): %s\n", f.Name, f.Type, f.Label)
		}
	}

	picklists := lo.Filter(desc.Fields, func(f sfcrm.FieldDescribe, _ int) bool {
		return f.Type == "picklist" && len(f.PicklistValues) > 0
	})
	if len(picklists) > 0 {
		b.WriteString("\nPICKLIST FIELDS:\n")
		for _, f := range picklists {
			values := activeValues(f)
			fmt.Fprintf(&b, "  - %s: %s\n", f.Name, f.Label)
			for _, v := range values[:min(len(values), maxPicklistValues)] {
				fmt.Fprintf(&b, "      * %s\n", v)
			}
			if len(values) > maxPicklistValues {
				fmt.Fprintf(&b, "      ... and %d more\n", len(values)-maxPicklistValues)
			}
		}
	}

	refs := lo.Filter(desc.Fields, func(f sfcrm.FieldDescribe, _ int) bool { return len(f.ReferenceTo) > 0 })
	if len(refs) > 0 {
		b.WriteString("\nREFERENCE FIELDS:\n")
		for _, f := range refs {
			fmt.Fprintf(&b, "  - %s -> %s\n", f.Name, strings.Join(f.ReferenceTo, ", "))
		}
	}

	createable := lo.Filter(desc.Fields, func(f sfcrm.FieldDescribe, _ int) bool { return f.Createable })
	sort.Slice(createable, func(i, j int) bool { return createable[i].Name < createable[j].Name })
	fmt.Fprintf(&b, "\nALL CREATEABLE FIELDS (%d total):\n", len(createable))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Req", "Name", "Type", "Label"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, f := range createable {
		req := ""
		if f.Required() {
			req = "*"
		}
		table.Append([]string{req, f.Name, f.Type, f.Label})
	}
	table.Render()
	return nil
}
