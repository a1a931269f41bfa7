package extract

import (
	"regexp"
	"strings"
)

// AddressFeatures are the location attributes derived from a raw
// address line.
type AddressFeatures struct {
	HasMetro     bool
	MetroPrimary string
	MetroCount   int
	HasDistrict  bool
}

var (
	metroRe    = regexp.MustCompile(`(?i)(?:м\.|метро)\s*([^,;]+)`)
	districtRe = regexp.MustCompile(`(?i)(р-н|район|АО)`)
)

// ExtractAddressFeatures pulls metro stations and district markers out
// of an address string. Stations are listed in source order; the first
// one becomes primary.
func ExtractAddressFeatures(address string) AddressFeatures {
	var features AddressFeatures
	for _, m := range metroRe.FindAllStringSubmatch(address, -1) {
		station := strings.TrimSpace(m[1])
		if features.MetroPrimary == "" {
			features.MetroPrimary = station
		}
		features.MetroCount++
	}
	features.HasMetro = features.MetroCount > 0
	features.HasDistrict = districtRe.MatchString(address)
	return features
}
