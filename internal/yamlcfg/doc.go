// Package yamlcfg provides the YAML implementation of the config.Loader
// interface. A YAML definition carries the same records as the HCL format,
// without expressions:
//
//	indicators:
//	  - {name: ecoli, type: "2", class: T}
//	categories:
//	  - {name: cat1, class: "3", indicators: [ecoli]}
//	sites:
//	  - {name: site1, type: "5", parent: scheme1, categories: [cat1]}
//	access_groups:
//	  - name: group1
//	    users: [admin]
//	    sites:
//	      scheme1: []
//	      site1: [cat1]
//	operations_data:
//	  - site: site1
//	    indicator: ecoli
//	    records: 100
//	    values: [valid, invalid]
//	    from_date: "2022-01-01"
//	    step: {months: 1, days: 1, hours: 2}
//
// The `sites` mapping of an access group is ordered: entries are emitted in
// the order they appear in the file.
package yamlcfg
