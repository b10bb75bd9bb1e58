// Package keys implements the hashing primitives behind InChIKeys and RInChIKeys.
//
// All hashes are SHA-256 digests rendered in base 26: 14 bits of digest map
// to one uppercase triplet and 9 bits to one doublet. Triplets starting
// with 'E' are never produced, which keeps "E" free as a key flag.
//
// The package also splits standard InChI strings into major layers (formula,
// connectivity, hydrogens, charge), minor layers (stereo, isotopes, fixed
// hydrogens) and a protonation count. Those three parts feed the Short and
// Web RInChIKeys and the standard InChIKey.
package keys
