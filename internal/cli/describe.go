package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/benetherington/anvil-runtime/pkg/schema"
	"github.com/benetherington/anvil-runtime/pkg/serializable"
)

const describeTemplate = `{{ name|safe }}
{% if description %}  {{ description|safe }}
{% endif %}Attributes:
{% for attr in attributes %}  {{ attr.Name|safe }} ({{ attr.Type|safe }}){% if attr.Constraints %} {{ attr.Constraints|safe }}{% endif %}{% if attr.Default %} default={{ attr.Default|safe }}{% endif %}
{% empty %}  (none)
{% endfor %}`

var (
	describeOnce sync.Once
	describeTpl  *pongo2.Template
	describeErr  error
)

type attributeView struct {
	Name        string
	Type        string
	Constraints string
	Default     string
}

func describe(out io.Writer, desc serializable.Descriptor, ts schema.TypeSchema) error {
	describeOnce.Do(func() {
		describeTpl, describeErr = pongo2.FromString(describeTemplate)
	})
	if describeErr != nil {
		return fmt.Errorf("cli: parse describe template: %w", describeErr)
	}

	description := ts.Description
	if description == "" {
		description = desc.Description
	}
	views := make([]attributeView, 0, len(ts.Attributes))
	for _, name := range ts.AttributeNames() {
		attr, _ := ts.Attribute(name)
		view := attributeView{
			Name:        name,
			Type:        string(attr.Type),
			Constraints: constraints(attr),
		}
		if attr.Default != nil {
			view.Default = fmt.Sprint(attr.Default)
		}
		views = append(views, view)
	}

	return describeTpl.ExecuteWriter(pongo2.Context{
		"name":        desc.Key().Qualified(),
		"description": description,
		"attributes":  views,
	}, out)
}

func constraints(attr schema.Attribute) string {
	var parts []string
	if attr.Min != nil {
		parts = append(parts, fmt.Sprintf("min=%v", *attr.Min))
	}
	if attr.Max != nil {
		parts = append(parts, fmt.Sprintf("max=%v", *attr.Max))
	}
	if len(attr.Values) > 0 {
		parts = append(parts, "values="+strings.Join(attr.Values, "|"))
	}
	if attr.NoBlank {
		parts = append(parts, "required-text")
	}
	return strings.Join(parts, " ")
}
