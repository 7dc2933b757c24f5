package utils

// ToggleMember removes id from list if present, otherwise appends it.
// Returns the updated list and whether id is now a member. Lists built
// exclusively through this helper stay duplicate-free.
func ToggleMember(list []string, id string) ([]string, bool) {
	if ContainsString(list, id) {
		return RemoveString(list, id), false
	}
	return append(list, id), true
}

// ContainsString reports whether list contains id.
func ContainsString(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// RemoveString returns list without any occurrence of id.
func RemoveString(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
