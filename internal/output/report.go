package output

import (
	"github.com/jmylchreest/listconv/pkg/cleaner/lists"
)

// Report is the structured record of one converted input.
type Report struct {
	Source   string             `json:"source" yaml:"source"`
	Mode     string             `json:"mode" yaml:"mode"`
	Content  string             `json:"content" yaml:"content"`
	Lists    []lists.ListResult `json:"lists,omitempty" yaml:"lists,omitempty"`
	Stats    *lists.Stats       `json:"stats,omitempty" yaml:"stats,omitempty"`
	Warnings []lists.Warning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewReport builds a Report from a cleaner result.
func NewReport(source string, mode lists.Mode, result *lists.Result) *Report {
	return &Report{
		Source:   source,
		Mode:     string(mode),
		Content:  result.Content,
		Lists:    result.Lists,
		Stats:    result.Stats,
		Warnings: result.Warnings,
	}
}

// Text returns the converted content.
func (r *Report) Text() string {
	return r.Content
}
