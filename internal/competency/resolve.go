package competency

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound reports that no entry matched a requested code. It is a
// normal outcome, displayed as "описание не найдено", never a fault.
var ErrNotFound = errors.New("description not found")

// Resolve finds the best description for a (possibly more or less
// specific) code. Resolution order: exact normalized match; then among
// keys related by prefix in either direction, the longest (most specific)
// key; then the first key whose digit-only form contains the digit-only
// form of the code. Candidate order is made deterministic by sorting
// keys, so map iteration order never influences the winner.
func Resolve(code string, entries map[string]string) (string, error) {
	key := NormalizeCode(code)
	if d, ok := entries[key]; ok {
		return d, nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := ""
	for _, k := range keys {
		if !strings.HasPrefix(k, key) && !strings.HasPrefix(key, k) {
			continue
		}
		if len(k) > len(best) {
			best = k
		}
	}
	if best != "" {
		return entries[best], nil
	}

	if digits := digitsOnly(key); digits != "" {
		for _, k := range keys {
			if strings.Contains(digitsOnly(k), digits) {
				return entries[k], nil
			}
		}
	}
	return "", ErrNotFound
}
