package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// SettingField describes one settings.json key
type SettingField struct {
	Example any    `json:"example"`
	Help    string `json:"help"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// SettingsFields lists the settings.json keys in declaration order, read
// from the Settings struct tags so new fields show up on their own
func SettingsFields() ([]SettingField, error) {
	t := reflect.TypeOf(Settings{})
	fields := make([]SettingField, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		example, err := decodeExample(f.Type, f.Tag.Get("example"))
		if err != nil {
			return nil, fmt.Errorf("settings field %s: %w", name, err)
		}
		fields = append(fields, SettingField{
			Example: example,
			Help:    f.Tag.Get("help"),
			Name:    name,
			Type:    typeName(f.Type),
		})
	}
	return fields, nil
}

// GetSettingsExample maps each settings.json key to an example value
func GetSettingsExample() map[string]any {
	fields, err := SettingsFields()
	if err != nil {
		panic(err)
	}
	example := make(map[string]any, len(fields))
	for _, f := range fields {
		example[f.Name] = f.Example
	}
	return example
}

// decodeExample parses the example tag as JSON into the field's type,
// dropping the pointer so optional fields read as plain values
func decodeExample(t reflect.Type, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	v := reflect.New(t)
	if err := json.Unmarshal([]byte(raw), v.Interface()); err != nil {
		return nil, err
	}
	v = v.Elem()
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v.Interface(), nil
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int:
		return "int"
	case reflect.String:
		return "string"
	case reflect.Map:
		return "object"
	default:
		return "list"
	}
}
