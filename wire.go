package digivoice

import "encoding/binary"

// EncodeWire serializes four index words into 8 little-endian bytes for
// transport or storage (spec.md §6's wire format, made explicit).
func EncodeWire(indices [4]uint16) [8]byte {
	var b [8]byte
	for i, v := range indices {
		binary.LittleEndian.PutUint16(b[i*2:i*2+2], v)
	}
	return b
}

// DecodeWire deserializes 8 little-endian bytes back into four index
// words. It does not validate the per-word bit-width tag in the top
// nibble. Decoder.Decode and Decoder.DecodeEnergy mask each payload with
// the width its tag states, so a tag wider than the field's fixed width
// can yield an index past the end of the table that field selects from.
func DecodeWire(b [8]byte) [4]uint16 {
	var indices [4]uint16
	for i := range indices {
		indices[i] = binary.LittleEndian.Uint16(b[i*2 : i*2+2])
	}
	return indices
}
