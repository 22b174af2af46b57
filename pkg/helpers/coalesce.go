package helpers

func CoalesceString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func DefaultString(v *string, def string) string {
	if v == nil {
		return def
	}

	return *v
}
