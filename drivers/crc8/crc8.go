// Package crc8 is the x^8+x^5+x^4+1 (0x31) checksum used by TE and
// Sensirion humidity and gas sensors. Only the initial value differs.
package crc8

const poly = 0x31

// Checksum runs the CRC over data starting from init.
func Checksum(data []byte, init byte) byte {
	crc := init
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
