package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a rule override file. A section left empty in the file keeps
// the corresponding built-in list, so overrides can extend just one side.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules: %w", err)
	}
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules: %w", err)
	}
	if len(rs.Expense) == 0 {
		rs.Expense = defaultRules.Expense
	}
	if len(rs.Income) == 0 {
		rs.Income = defaultRules.Income
	}
	return rs, nil
}
