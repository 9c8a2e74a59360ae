package meta

// KeySet is an immutable set of metadata keys.
type KeySet struct {
	keys map[string]struct{}
}

// NewKeySet copies keys into a new set.
func NewKeySet(keys ...string) KeySet {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return KeySet{keys: m}
}

// Contains reports whether key is in the set.
func (s KeySet) Contains(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of keys.
func (s KeySet) Len() int { return len(s.keys) }

var (
	legacyLicenseKeys = []string{
		"allowedUserName",
		"violentUssageName",
		"sexualUssageName",
		"commercialUssageName",
		"creditNotation",
		"modification",
		"licenseName",
	}
	currentLicenseKeys = []string{
		"avatarPermission",
		"allowExcessivelyViolentUsage",
		"allowExcessivelySexualUsage",
		"commercialUsage",
		"allowRedistribution",
		"licenseUrl",
	}
)

// LicenseKeys returns the license-relevant keys of both generations. The
// spellings differ between generations (including the legacy "Ussage"
// typo), so both lists are kept verbatim.
func LicenseKeys() KeySet {
	all := make([]string, 0, len(legacyLicenseKeys)+len(currentLicenseKeys))
	all = append(all, legacyLicenseKeys...)
	all = append(all, currentLicenseKeys...)
	return NewKeySet(all...)
}
