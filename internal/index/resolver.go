package index

import (
	"sort"
	"strings"

	"portfolio-backend/pkg/models"
)

// A strategy attempts to match a requested name against the index keys.
// Strategies run in order of decreasing precision; the first hit wins.
type strategy struct {
	name  string
	match func(assets map[string]models.ResolvedAsset, name string) (models.ResolvedAsset, bool)
}

var strategies = []strategy{
	{"exact", matchExact},
	{"fold", matchFold},
	{"upper", matchUpper},
	{"base", matchBase},
}

// lookup resolves a logical file name through the strategy chain and reports
// which strategy matched. Scanning strategies walk the keys in sorted order
// so that repeated calls with the same index yield the same result.
func lookup(assets map[string]models.ResolvedAsset, name string) (models.ResolvedAsset, string, bool) {
	for _, s := range strategies {
		if asset, ok := s.match(assets, name); ok {
			return asset, s.name, true
		}
	}
	return models.ResolvedAsset{}, "", false
}

func matchExact(assets map[string]models.ResolvedAsset, name string) (models.ResolvedAsset, bool) {
	asset, ok := assets[name]
	return asset, ok
}

// matchFold scans for a key equal to the requested name ignoring case
func matchFold(assets map[string]models.ResolvedAsset, name string) (models.ResolvedAsset, bool) {
	for _, key := range sortedKeys(assets) {
		if strings.EqualFold(key, name) {
			return assets[key], true
		}
	}
	return models.ResolvedAsset{}, false
}

func matchUpper(assets map[string]models.ResolvedAsset, name string) (models.ResolvedAsset, bool) {
	asset, ok := assets[strings.ToUpper(name)]
	return asset, ok
}

// matchBase compares the part of each key before its first dot with the same
// part of the requested name. It is the least precise strategy and can match
// an unrelated file that shares a base name with a different extension,
// which is why it runs last.
func matchBase(assets map[string]models.ResolvedAsset, name string) (models.ResolvedAsset, bool) {
	base := baseName(name)
	for _, key := range sortedKeys(assets) {
		if strings.EqualFold(baseName(key), base) {
			return assets[key], true
		}
	}
	return models.ResolvedAsset{}, false
}

// baseName returns the part of a file name before the first dot
func baseName(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

func sortedKeys(assets map[string]models.ResolvedAsset) []string {
	keys := make([]string, 0, len(assets))
	for key := range assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
