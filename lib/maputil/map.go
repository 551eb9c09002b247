package maputil

// GetKeyFromMap returns obj[key], or [defaultValue] if the key is not set.
func GetKeyFromMap(obj map[string]any, key string, defaultValue any) any {
	if len(obj) == 0 {
		return defaultValue
	}

	val, isOk := obj[key]
	if !isOk {
		return defaultValue
	}

	return val
}
