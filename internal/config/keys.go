package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// KeyBindingValue accepts "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements json.Unmarshaler
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	values, err := unmarshalList(data, func(s string) []string {
		if s == "" {
			return nil
		}
		return []string{s}
	})
	if err != nil {
		return err
	}
	*kv = values
	return nil
}

// MarshalJSON writes a single key as a plain string
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// StringArray accepts a JSON array or a comma-separated string
type StringArray []string

// UnmarshalJSON implements json.Unmarshaler
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	values, err := unmarshalList(data, splitList)
	if err != nil {
		return err
	}
	*sa = values
	return nil
}

// unmarshalList decodes a JSON array of strings, or hands a single string to
// fromString
func unmarshalList(data []byte, fromString func(string) []string) ([]string, error) {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return nil, err
	}
	return fromString(str), nil
}

func splitList(s string) []string {
	result := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// KeyBindingsConfig maps a binding name such as "start_drag" to the keys
// that replace its defaults
type KeyBindingsConfig map[string]KeyBindingValue

// Validate refuses unknown names, empty keys and a key bound to two
// actions. Names are checked in order so the reported conflict is stable.
func (k KeyBindingsConfig) Validate(validNames []string) error {
	names := make([]string, 0, len(k))
	for name := range k {
		if !slices.Contains(validNames, name) {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	owner := make(map[string]string)
	for _, name := range names {
		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if other, taken := owner[key]; taken {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, other, name)
			}
			owner[key] = name
		}
	}
	return nil
}
