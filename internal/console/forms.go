package console

import (
	"context"
	"time"
)

type FieldKind int

const (
	Text FieldKind = iota
	Number
	Password
	Checkbox
	DateTime
	Select
	JSONText
)

type Option struct {
	Value string
	Label string
}

// Field describes one form input. Select fields either carry static
// Options or name another admin resource (OptionsFrom) whose records
// become the options, labelled by OptionLabel.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Default  any

	Options     []Option
	OptionsFrom string
	OptionLabel string
}

type Form struct {
	Fields []Field
}

// LoadOptions resolves every cross-entity select against the API. Fields
// with static options are left alone.
func (f *Form) LoadOptions(ctx context.Context, client *Client) error {
	if f == nil {
		return nil
	}
	for i := range f.Fields {
		field := &f.Fields[i]
		if field.Kind != Select || field.OptionsFrom == "" {
			continue
		}

		records, err := client.List(ctx, field.OptionsFrom)
		if err != nil {
			return err
		}

		labelKey := field.OptionLabel
		if labelKey == "" {
			labelKey = "name"
		}

		options := make([]Option, 0, len(records))
		for _, rec := range records {
			id, _ := rec["id"].(string)
			label, _ := rec[labelKey].(string)
			if label == "" {
				label = id
			}
			options = append(options, Option{Value: id, Label: label})
		}
		field.Options = options
	}
	return nil
}

// normalizeDates rewrites the named values from a form-level timestamp
// ("2006-01-02T15:04", as a datetime input produces) to the wire's
// ISO-8601 form. Values already in RFC3339 pass through unchanged.
func normalizeDates(values map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		s, ok := values[key].(string)
		if !ok || s == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, s); err == nil {
			continue
		}
		if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local); err == nil {
			values[key] = t.UTC().Format(time.RFC3339)
		}
	}
	return values
}
