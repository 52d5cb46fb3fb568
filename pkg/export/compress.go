package export

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/golang/snappy"
)

// SnappyExt is appended to compressed result files.
const SnappyExt = ".snappy"

// WriteSnappyFile compresses data with snappy and writes it to path
// with a trailing CRC32 of the compressed payload.
// Format: [DataLen:4][Data:N][Checksum:4]
func WriteSnappyFile(path string, data []byte) error {
	compressed := snappy.Encode(nil, data)

	buf := make([]byte, 0, 4+len(compressed)+4)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(compressed)))
	buf = append(buf, compressed...)
	buf = binary.BigEndian.AppendUint32(buf, crc32.ChecksumIEEE(compressed))

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("writing compressed file %s: %w", path, err)
	}
	return nil
}

// ReadSnappyFile reads a file written by WriteSnappyFile, verifying the
// checksum before decompressing.
func ReadSnappyFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading compressed file %s: %w", path, err)
	}
	if len(buf) < 8 {
		return nil, fmt.Errorf("compressed file %s: truncated header", path)
	}

	dataLen := binary.BigEndian.Uint32(buf[:4])
	if uint32(len(buf)) != 4+dataLen+4 {
		return nil, fmt.Errorf("compressed file %s: length mismatch", path)
	}
	compressed := buf[4 : 4+dataLen]
	checksum := binary.BigEndian.Uint32(buf[4+dataLen:])
	if crc32.ChecksumIEEE(compressed) != checksum {
		return nil, fmt.Errorf("compressed file %s: checksum mismatch", path)
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return data, nil
}
