package ptr

func ToBool(val bool) *bool {
	return &val
}
