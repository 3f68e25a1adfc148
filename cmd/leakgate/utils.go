package leakgate

// pick helpers resolve flag > local config > global config precedence.
// The flag value wins when it differs from the zero/default sentinel left by
// pflag; otherwise the first non-nil config pointer is used.

func pickString(flag string, local, global *string) string {
	if flag != "" {
		return flag
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return ""
}

func pickBool(flag bool, local, global *bool) bool {
	if flag {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
