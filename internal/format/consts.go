// Package format houses the low-level codec for BizHawk compatible code/data
// log files. The goal is to keep the wire primitives small, allocation-free
// where possible, and independent from the container so higher-level packages
// can orchestrate blocks in a more ergonomic form.
package format

// File layout (no alignment padding anywhere):
//
//	Field         Encoding
//	-----------   -------------------------------------------
//	magic         length-prefixed string "BIZHAWK-CDL-2"
//	platform      length-prefixed string "SNES           " (15 bytes)
//	count         uint32 big-endian
//	count times:
//	  name        length-prefixed string
//	  length      uint32 big-endian
//	  payload     length raw bytes
//
// Length prefixes are unsigned LEB128 varints.
const (
	// Magic is the format and version marker at the start of every log.
	Magic = "BIZHAWK-CDL-2"

	// Platform is the space-padded platform tag that follows Magic.
	Platform = "SNES           "

	// PlatformSize is the width of the platform tag field.
	PlatformSize = 15

	// NameCapacity bounds block names read from disk, terminator included.
	NameCapacity = 32

	// U32Size is the width of the fixed-size integers in the file.
	U32Size = 4
)

// HeaderSize is the encoded size of the magic, platform tag and block count.
var HeaderSize = StringSize(Magic) + StringSize(Platform) + U32Size

// StringSize returns the encoded size of a length-prefixed string.
func StringSize(s string) int {
	return VarIntSize(uint64(len(s))) + len(s)
}
