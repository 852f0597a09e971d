package cas

import (
	"bufio"
	"encoding/binary"
	"io"

	"go.trai.ch/histo/internal/core/domain"
)

const bufferSize = 1 << 16

// writeValues encodes values as consecutive native-endian int32s.
func writeValues(w io.Writer, values []int32) error {
	bw := bufio.NewWriterSize(w, bufferSize)
	var word [domain.ValueSize]byte
	for _, v := range values {
		binary.NativeEndian.PutUint32(word[:], uint32(v)) //nolint:gosec // two's complement round trip
		if _, err := bw.Write(word[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readValues decodes exactly len(dst) native-endian int32s into dst.
func readValues(r io.Reader, dst []int32) error {
	br := bufio.NewReaderSize(r, bufferSize)
	var word [domain.ValueSize]byte
	for i := range dst {
		if _, err := io.ReadFull(br, word[:]); err != nil {
			return err
		}
		dst[i] = int32(binary.NativeEndian.Uint32(word[:])) //nolint:gosec // two's complement round trip
	}
	return nil
}
