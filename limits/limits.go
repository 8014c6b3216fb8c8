// Package limits loads per-style author-cap overrides from YAML.
//
// Every truncation threshold a style exposes as a package variable can be
// overridden without a rebuild:
//
//	apa:
//	  author_cap: 10
//	ama:
//	  list_cap: 3
//	  et_al_count: 1
//
// A zero (absent) value keeps the style's default.
package limits

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yubetsu/cite/style/ama"
	"github.com/yubetsu/cite/style/apa"
	"github.com/yubetsu/cite/style/chicago"
	"github.com/yubetsu/cite/style/ieee"
	"github.com/yubetsu/cite/style/mla"
	"github.com/yubetsu/cite/style/nlm"
)

// Limits holds author-list caps per style.
type Limits struct {
	APA struct {
		AuthorCap int `yaml:"author_cap"`
	} `yaml:"apa"`
	MLA struct {
		EtAlThreshold int `yaml:"et_al_threshold"`
	} `yaml:"mla"`
	AMA struct {
		ListCap   int `yaml:"list_cap"`
		EtAlCount int `yaml:"et_al_count"`
	} `yaml:"ama"`
	NLM struct {
		ListCap   int `yaml:"list_cap"`
		EtAlCount int `yaml:"et_al_count"`
	} `yaml:"nlm"`
	Chicago struct {
		ListCap int `yaml:"list_cap"`
	} `yaml:"chicago"`
	IEEE struct {
		EtAlCap int `yaml:"et_al_cap"`
	} `yaml:"ieee"`
}

// Load reads limit overrides from a YAML file.
func Load(path string) (*Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading limits file: %w", err)
	}
	return Parse(data)
}

// Parse reads limit overrides from YAML content.
func Parse(data []byte) (*Limits, error) {
	var l Limits
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing limits YAML: %w", err)
	}
	return &l, nil
}

// Apply installs the non-zero overrides into the style packages.
func (l *Limits) Apply() {
	if l.APA.AuthorCap > 0 {
		apa.AuthorCap = l.APA.AuthorCap
	}
	if l.MLA.EtAlThreshold > 0 {
		mla.EtAlThreshold = l.MLA.EtAlThreshold
	}
	if l.AMA.ListCap > 0 {
		ama.ListCap = l.AMA.ListCap
	}
	if l.AMA.EtAlCount > 0 {
		ama.EtAlCount = l.AMA.EtAlCount
	}
	if l.NLM.ListCap > 0 {
		nlm.ListCap = l.NLM.ListCap
	}
	if l.NLM.EtAlCount > 0 {
		nlm.EtAlCount = l.NLM.EtAlCount
	}
	if l.Chicago.ListCap > 0 {
		chicago.ListCap = l.Chicago.ListCap
	}
	if l.IEEE.EtAlCap > 0 {
		ieee.EtAlCap = l.IEEE.EtAlCap
	}
}
