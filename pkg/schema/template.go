package schema

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Section groups an ordered field list under a key name. Order is a positive
// integer serialized as a string; Block is an optional display-grouping hint.
type Section struct {
	KeyName string  `json:"keyName"`
	Label   string  `json:"label"`
	Order   int     `json:"-"`
	Block   string  `json:"block,omitempty"`
	Fields  []Field `json:"fields"`
}

// MarshalJSON emits the order as the stringified "section" property.
func (s Section) MarshalJSON() ([]byte, error) {
	type alias Section
	return json.Marshal(struct {
		alias
		Section string `json:"section"`
	}{
		alias:   alias(s),
		Section: strconv.Itoa(s.Order),
	})
}

// UnmarshalJSON accepts the stringified "section" order back into Order.
func (s *Section) UnmarshalJSON(data []byte) error {
	type alias Section
	aux := struct {
		*alias
		Section string `json:"section"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Section != "" {
		order, err := strconv.Atoi(aux.Section)
		if err != nil {
			return err
		}
		s.Order = order
	}
	return nil
}

// Template is the root document. It exclusively owns its sections; sections
// exclusively own their fields.
type Template struct {
	Name          string    `json:"name"`
	Label         string    `json:"label"`
	Description   string    `json:"description,omitempty"`
	IsContent     bool      `json:"is_content"`
	Multilanguage bool      `json:"multilanguage"`
	IsMultiple    bool      `json:"is_multiple"`
	Components    []Section `json:"components"`
}

// AddSection appends a section, assigning the next free order when the
// caller left it unset, and re-sorts components by numeric order. The sort is
// stable so ties keep insertion order.
func (t *Template) AddSection(section Section) {
	if section.Order <= 0 {
		section.Order = t.nextOrder()
	}
	t.Components = append(t.Components, section)
	sort.SliceStable(t.Components, func(i, j int) bool {
		return t.Components[i].Order < t.Components[j].Order
	})
}

func (t *Template) nextOrder() int {
	max := 0
	for _, section := range t.Components {
		if section.Order > max {
			max = section.Order
		}
	}
	return max + 1
}
