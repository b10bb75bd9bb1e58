package keys

import "crypto/sha256"

// Hash values of the empty string.
const (
	Hash04Empty = "UHFF"
	Hash10Empty = "UHFFFADPSC"
	Hash12Empty = "UHFFFADPSCTJ"
	Hash14Empty = "UHFFFADPSCTJAU"
	Hash17Empty = "UHFFFADPSCTJAUYIS"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// triplets holds the 16384 (2^14) base-26 triplets in index order.
// All triplets starting with 'E' are skipped, and the 'T' block is cut
// after its first 160 entries (TAA..TGD) so the table fills exactly 2^14.
var triplets = buildTriplets()

// doublets holds the 676 base-26 doublets; only the first 512 are reachable.
var doublets = buildDoublets()

const tBlockLen = 160

func buildTriplets() []string {
	out := make([]string, 0, 1<<14)
	for _, a := range alphabet {
		if a == 'E' {
			continue
		}
		n := 0
		for _, b := range alphabet {
			for _, c := range alphabet {
				if a == 'T' && n == tBlockLen {
					break
				}
				out = append(out, string([]rune{a, b, c}))
				n++
			}
		}
	}
	return out
}

func buildDoublets() []string {
	out := make([]string, 0, 26*26)
	for _, a := range alphabet {
		for _, b := range alphabet {
			out = append(out, string([]rune{a, b}))
		}
	}
	return out
}

// triplet1 encodes bits 0..13 of d.
func triplet1(d []byte) string {
	return triplets[int(d[0])|int(d[1]&0x3f)<<8]
}

// triplet2 encodes bits 14..27 of d.
func triplet2(d []byte) string {
	return triplets[(int(d[1]&0xc0)|int(d[2])<<8|int(d[3]&0x0f)<<16)>>6]
}

// triplet3 encodes bits 28..41 of d.
func triplet3(d []byte) string {
	return triplets[(int(d[3]&0xf0)|int(d[4])<<8|int(d[5]&0x03)<<16)>>4]
}

// triplet4 encodes bits 42..55 of d.
func triplet4(d []byte) string {
	return triplets[(int(d[5]&0xfc)|int(d[6])<<8)>>2]
}

// doublet56 encodes bits 56..64 of d.
func doublet56(d []byte) string {
	return doublets[int(d[7])|int(d[8]&0x01)<<8]
}

// doublet28 encodes bits 28..36 of d.
func doublet28(d []byte) string {
	return doublets[int(d[3]&0xf0)>>4|int(d[4]&0x1f)<<4]
}

func digest(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}

// Hash04 returns a 4-character hash of s.
func Hash04(s string) string {
	d := digest(s)
	return (triplet1(d) + triplet2(d))[:4]
}

// Hash10 returns a 10-character hash of s.
func Hash10(s string) string {
	return Hash12(s)[:10]
}

// Hash12 returns a 12-character hash of s.
func Hash12(s string) string {
	d := digest(s)
	return triplet1(d) + triplet2(d) + triplet3(d) + triplet4(d)
}

// Hash14 returns a 14-character hash of s, the shape of an InChIKey first block.
func Hash14(s string) string {
	d := digest(s)
	return triplet1(d) + triplet2(d) + triplet3(d) + triplet4(d) + doublet56(d)
}

// Hash17 returns a 17-character hash of s.
func Hash17(s string) string {
	d := digest(s)
	return triplet1(d) + triplet2(d) + triplet3(d) + triplet4(d) + doublet56(d) + triplet1(d[8:])
}

// hash08 returns the 8-character hash used for an InChIKey second block.
func hash08(s string) string {
	d := digest(s)
	return triplet1(d) + triplet2(d) + doublet28(d)
}
