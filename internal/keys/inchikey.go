package keys

import "fmt"

const (
	inchiKeyFlagStandard = "SA"
	inchiKeyBlockDelim   = "-"
)

// InChIKey computes the standard InChIKey of a standard InChI string.
//
// The first block hashes the major layers. The second block hashes the
// minor layers, which are prefixed with "/" and repeated once before
// hashing; with no minor layers it is the fixed "UHFFFAOY". The last
// character is the protonation flag.
func InChIKey(inchi string) (string, error) {
	major, minor, protons, err := splitLayers(inchi)
	if err != nil {
		return "", fmt.Errorf("InChIKey %q: %w", inchi, err)
	}

	second := hash08("")
	if minor != "" {
		s := layerDelimiter + minor
		second = hash08(s + s)
	}

	return Hash14(major) + inchiKeyBlockDelim + second + inchiKeyFlagStandard +
		inchiKeyBlockDelim + string(protonChar(protons)), nil
}
