package telegram

// The identity word reported by an Identify telegram encodes manufacturer,
// part and revision. Only the part field matters for topology building: it
// distinguishes single-triplet RGBI nodes from multi-channel SAID nodes.
//
//	31..24  manufacturer
//	23..8   part number
//	7..0    revision

const (
	identPartMask uint32 = 0x00FFFF00
	identPartRGBI uint32 = 0x00000000
	identPartSAID uint32 = 0x00004000
)

// MakeID assembles an identity word; used by simulators and tests.
func MakeID(manufacturer uint8, part uint16, revision uint8) uint32 {
	return uint32(manufacturer)<<24 | uint32(part)<<8 | uint32(revision)
}

// Part extracts the part-number field of an identity word.
func Part(id uint32) uint16 { return uint16((id & identPartMask) >> 8) }

// IsRGBI reports whether id identifies a single-triplet RGBI node.
func IsRGBI(id uint32) bool { return id&identPartMask == identPartRGBI }

// IsSAID reports whether id identifies a multi-channel SAID node.
func IsSAID(id uint32) bool { return id&identPartMask == identPartSAID }
