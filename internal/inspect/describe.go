package inspect

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Describer produces a human-readable type description of a file's binary
// format, in the spirit of file(1) output.
type Describer func(path string) (string, error)

// Header magic numbers.
const (
	machO32      = 0xfeedface
	machO64      = 0xfeedfacf
	machOFat     = 0xcafebabe
	peOptional32 = 0x10b
	peOptional64 = 0x20b
)

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// DescribeFile reads the file header and reports its binary format.
// Unrecognized files are described as "data" rather than failing.
func DescribeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	header := make([]byte, 64)
	n, err := f.ReadAt(header, 0)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read header: %w", err)
	}
	if n < 4 {
		return "data", nil
	}
	header = header[:n]

	if desc := describeELF(header); desc != "" {
		return desc, nil
	}
	if desc := describeMachO(header); desc != "" {
		return desc, nil
	}
	if desc := describePE(f, header); desc != "" {
		return desc, nil
	}
	return "data", nil
}

func describeELF(header []byte) string {
	if [4]byte(header[:4]) != elfMagic {
		return ""
	}
	width := "32-bit"
	if len(header) > 4 && header[4] == 2 {
		width = "64-bit"
	}
	return fmt.Sprintf("ELF %s executable", width)
}

func describeMachO(header []byte) string {
	be := binary.BigEndian.Uint32(header[:4])
	le := binary.LittleEndian.Uint32(header[:4])

	switch {
	case be == machOFat:
		return "Mach-O universal binary"
	case be == machO32 || le == machO32:
		return "Mach-O executable"
	case be == machO64 || le == machO64:
		return "Mach-O 64-bit executable"
	default:
		return ""
	}
}

func describePE(f *os.File, header []byte) string {
	if header[0] != 'M' || header[1] != 'Z' {
		return ""
	}

	// e_lfanew at offset 0x3c points at the PE signature.
	if len(header) < 0x40 {
		return "MS-DOS executable"
	}
	peOffset := int64(binary.LittleEndian.Uint32(header[0x3c:0x40]))

	sig := make([]byte, 6)
	if _, err := f.ReadAt(sig, peOffset); err != nil {
		return "MS-DOS executable"
	}
	if sig[0] != 'P' || sig[1] != 'E' || sig[2] != 0 || sig[3] != 0 {
		return "MS-DOS executable"
	}

	// The optional header magic follows the 20-byte COFF header.
	magic := make([]byte, 2)
	if _, err := f.ReadAt(magic, peOffset+24); err == nil {
		switch binary.LittleEndian.Uint16(magic) {
		case peOptional64:
			return "PE32+ executable, for MS Windows"
		case peOptional32:
			return "PE32 executable, for MS Windows"
		}
	}
	return "PE executable, for MS Windows"
}
