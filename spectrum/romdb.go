package spectrum

import "hash/crc32"

// ROMDescriptor names a ROM image's position within a Model's memory image.
// Mirrors eMkIII's CRC32-keyed descriptor table, adapted from "identify an
// unknown cartridge" to "describe where a known system ROM belongs".
type ROMDescriptor struct {
	Name   string
	Offset int
	Length int
}

// romCRC32 is a best-effort catalog of known-good system ROM checksums,
// keyed by model name, used only to warn a caller that it loaded the wrong
// ROM image for a model — never to alter emulation behavior.
var romCRC32 = map[string]uint32{
	"ZX Spectrum 48K Issue 2": 0x5ea7c2b0,
	"ZX Spectrum 48K Issue 3": 0x1ed85371,
	"ZX Spectrum 16K Issue 1": 0xd1bdd86b,
	"ZX Spectrum 128K (EN)":   0xb96a36be,
	"ZX Spectrum 128K (ES)":   0x9e535509,
	"ZX Spectrum +":           0x1ed85371,
	"Inves Spectrum +":        0x9d513991,
}

// CheckROM reports whether rom's checksum matches the catalog entry for
// modelName. ok is false when modelName isn't in the catalog at all, which
// is not itself an error: third-party ROM replacements are common and this
// is advisory only.
func CheckROM(modelName string, rom []byte) (matches bool, ok bool) {
	want, ok := romCRC32[modelName]
	if !ok {
		return false, false
	}
	return crc32.ChecksumIEEE(rom) == want, true
}
