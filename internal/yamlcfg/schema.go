package yamlcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the top-level structure of a YAML definition file.
type document struct {
	Indicators   []indicatorDoc   `yaml:"indicators"`
	Categories   []categoryDoc    `yaml:"categories"`
	Sites        []siteDoc        `yaml:"sites"`
	AccessGroups []accessGroupDoc `yaml:"access_groups"`
	Series       []seriesDoc      `yaml:"operations_data"`
}

type indicatorDoc struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Class string `yaml:"class"`
}

type categoryDoc struct {
	Name       string   `yaml:"name"`
	Class      string   `yaml:"class"`
	Indicators []string `yaml:"indicators"`
}

type siteDoc struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Categories []string `yaml:"categories"`
	Parent     string   `yaml:"parent"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
}

type accessGroupDoc struct {
	Name  string       `yaml:"name"`
	Users []string     `yaml:"users"`
	Sites orderedSites `yaml:"sites"`
}

type seriesDoc struct {
	Site        string   `yaml:"site"`
	Indicator   string   `yaml:"indicator"`
	Records     int      `yaml:"records"`
	Values      []string `yaml:"values"`
	DynamicDate *string  `yaml:"dynamic_date"`
	FromDate    *string  `yaml:"from_date"`
	Step        *stepDoc `yaml:"step"`
}

type stepDoc struct {
	Years  int `yaml:"years"`
	Months int `yaml:"months"`
	Days   int `yaml:"days"`
	Hours  int `yaml:"hours"`
}

// siteEntry is one key of an access group's sites mapping.
type siteEntry struct {
	Name       string
	Categories []string
}

// orderedSites decodes a YAML mapping of site name to category list while
// keeping key order.
type orderedSites []siteEntry

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *orderedSites) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sites must be a mapping of site name to category list", value.Line)
	}

	entries := make(orderedSites, 0, len(value.Content)/2)
	seen := make(map[string]int, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("line %d: site name: %w", keyNode.Line, err)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("line %d: site %q already listed on line %d", keyNode.Line, name, prev)
		}
		seen[name] = keyNode.Line

		var categories []string
		if valNode.Tag != "!!null" {
			if err := valNode.Decode(&categories); err != nil {
				return fmt.Errorf("line %d: categories of site %q: %w", valNode.Line, name, err)
			}
		}
		entries = append(entries, siteEntry{Name: name, Categories: categories})
	}

	*o = entries
	return nil
}
