package fieldmap

// RequiredFor returns the API fields required when creating object:
// the configured list when the object has an entry, otherwise the default.
func (c *Config) RequiredFor(object string) []string {
	if c != nil {
		if required, ok := c.RequiredFields[object]; ok && required != nil {
			return required
		}
	}
	return defaultRequired[object]
}

// MissingFields returns the required fields of object that are absent from
// payload or hold an empty value, in configured order. Updates are partial,
// so nothing is required when isUpdate is set.
func (c *Config) MissingFields(object string, payload *Payload, isUpdate bool) []string {
	if isUpdate {
		return nil
	}

	var missing []string
	for _, field := range c.RequiredFor(object) {
		v, ok := payload.Get(field)
		if !ok || isEmpty(v) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}
