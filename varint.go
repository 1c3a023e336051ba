package tui

// Row span-record varint encoding. The range supported is 0..=32767,
// encoded big-endian: values below 128 take one byte; larger values take
// two, with the high byte's top bit set as a continuation marker.
const maxVarint = 32767

func appendVarint(buf []byte, v int) []byte {
	if v < 0 {
		v = 0
	}
	if v > maxVarint {
		v = maxVarint
	}
	if v < 128 {
		return append(buf, byte(v))
	}
	hi := byte(v>>8) | 0x80
	lo := byte(v)
	return append(buf, hi, lo)
}

// readVarint decodes one varint starting at data[i], returning the value
// and the index of the next unread byte.
func readVarint(data []byte, i int) (int, int) {
	b := data[i]
	if b&0x80 == 0 {
		return int(b), i + 1
	}
	hi := int(b & 0x7F)
	lo := int(data[i+1])
	return hi<<8 | lo, i + 2
}
