package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot separates `locals` blocks from the rest of a file so that locals
// can be evaluated before the fixture blocks that reference them.
type fileRoot struct {
	Locals []*localsBlock `hcl:"locals,block"`
	Remain hcl.Body       `hcl:",remain"`
}

// localsBlock holds named expressions exposed as `local.<name>`.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fixtureFile is every fixture block a definition file may contain.
type fixtureFile struct {
	Indicators   []*indicatorBlock   `hcl:"indicator,block"`
	Categories   []*categoryBlock    `hcl:"indicator_category,block"`
	Sites        []*siteBlock        `hcl:"site,block"`
	AccessGroups []*accessGroupBlock `hcl:"access_group,block"`
	Series       []*seriesBlock      `hcl:"operations_data,block"`
}

type indicatorBlock struct {
	Name  string `hcl:"name,label"`
	Type  string `hcl:"type"`
	Class string `hcl:"class"`
}

type categoryBlock struct {
	Name       string   `hcl:"name,label"`
	Class      string   `hcl:"class"`
	Indicators []string `hcl:"indicators,optional"`
}

type siteBlock struct {
	Name       string   `hcl:"name,label"`
	Type       string   `hcl:"type"`
	Categories []string `hcl:"categories,optional"`
	Parent     string   `hcl:"parent,optional"`
	StartDate  string   `hcl:"start_date,optional"`
	EndDate    string   `hcl:"end_date,optional"`
}

type accessGroupBlock struct {
	Name   string        `hcl:"name,label"`
	Users  []string      `hcl:"users,optional"`
	Grants []*grantBlock `hcl:"site,block"`
}

type grantBlock struct {
	Site       string   `hcl:"name,label"`
	Categories []string `hcl:"categories,optional"`
}

type seriesBlock struct {
	Site        string     `hcl:"site,label"`
	Indicator   string     `hcl:"indicator,label"`
	Records     int        `hcl:"records"`
	Values      []string   `hcl:"values"`
	DynamicDate *string    `hcl:"dynamic_date,optional"`
	FromDate    *string    `hcl:"from_date,optional"`
	Step        *stepBlock `hcl:"step,block"`
}

type stepBlock struct {
	Years  int `hcl:"years,optional"`
	Months int `hcl:"months,optional"`
	Days   int `hcl:"days,optional"`
	Hours  int `hcl:"hours,optional"`
}
