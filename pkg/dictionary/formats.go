package dictionary

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names the character set of a dictionary file.
type Encoding string

const (
	EncodingAuto        Encoding = "auto"
	EncodingUTF8        Encoding = "utf-8"
	EncodingISO88591    Encoding = "iso-8859-1"
	EncodingISO88592    Encoding = "iso-8859-2"
	EncodingISO885915   Encoding = "iso-8859-15"
	EncodingWindows1250 Encoding = "windows-1250"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingKOI8R       Encoding = "koi8-r"
)

// singleByte maps each single-byte encoding to its decoder table.
var singleByte = map[Encoding]*charmap.Charmap{
	EncodingISO88591:    charmap.ISO8859_1,
	EncodingISO88592:    charmap.ISO8859_2,
	EncodingISO885915:   charmap.ISO8859_15,
	EncodingWindows1250: charmap.Windows1250,
	EncodingWindows1252: charmap.Windows1252,
	EncodingKOI8R:       charmap.KOI8R,
}

var aliases = map[string]Encoding{
	"":        EncodingAuto,
	"utf8":    EncodingUTF8,
	"latin1":  EncodingISO88591,
	"latin-1": EncodingISO88591,
	"latin2":  EncodingISO88592,
	"latin9":  EncodingISO885915,
	"cp1250":  EncodingWindows1250,
	"cp1252":  EncodingWindows1252,
	"koi8r":   EncodingKOI8R,
}

// dictExtensions are the file extensions accepted by ValidateFile.
var dictExtensions = []string{".dic", ".dict", ".txt"}

// ParseEncoding resolves an encoding name or alias, case-insensitively.
func ParseEncoding(name string) (Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if e, ok := aliases[n]; ok {
		return e, nil
	}
	e := Encoding(n)
	if e == EncodingAuto || e == EncodingUTF8 {
		return e, nil
	}
	if _, ok := singleByte[e]; ok {
		return e, nil
	}
	return "", fmt.Errorf("unknown encoding %q (supported: %s)", name, strings.Join(SupportedEncodings(), ", "))
}

// SupportedEncodings lists the canonical encoding names.
func SupportedEncodings() []string {
	names := []string{string(EncodingAuto), string(EncodingUTF8)}
	for e := range singleByte {
		names = append(names, string(e))
	}
	sort.Strings(names[2:])
	return names
}

// DetectEncoding guesses the encoding of raw dictionary bytes: valid UTF-8 is
// taken as UTF-8, anything else as windows-1252.
func DetectEncoding(data []byte) Encoding {
	if utf8.Valid(data) {
		return EncodingUTF8
	}
	return EncodingWindows1252
}

// LoadEncoded decodes r from enc and loads the result.
func LoadEncoded(r io.Reader, enc Encoding) (*Dictionary, error) {
	if enc == EncodingAuto {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary: %w", err)
		}
		enc = DetectEncoding(data)
		log.Debugf("Detected dictionary encoding: %s", enc)
		r = bytes.NewReader(data)
	}
	if cm, ok := singleByte[enc]; ok {
		r = transform.NewReader(r, cm.NewDecoder())
	} else if enc != EncodingUTF8 {
		return nil, fmt.Errorf("unknown encoding %q", enc)
	}
	return Load(r)
}

// LoadFile memory-maps the dictionary at path and loads it.
func LoadFile(path string, enc Encoding) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}
	if info.Size() == 0 {
		// mmap rejects empty files
		return LoadEncoded(bytes.NewReader(nil), enc)
	}

	m, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map dictionary %s: %w", path, err)
	}
	defer func() {
		if err := m.Unmap(); err != nil {
			log.Warnf("Failed to unmap %s: %v", path, err)
		}
	}()

	dict, err := LoadEncoded(bytes.NewReader(m), enc)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", path, err)
	}
	log.Debugf("Dictionary %s loaded (%d bytes)", path, info.Size())
	return dict, nil
}

// ValidateFile checks that path names a readable, regular dictionary file with
// a known extension.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	valid := false
	for _, e := range dictExtensions {
		if ext == e {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("file %s has invalid extension %s (expected: %v)", path, ext, dictExtensions)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()
	if info.Size() > 0 {
		if _, err := file.Read(make([]byte, 1)); err != nil {
			return fmt.Errorf("failed to read from file %s: %w", path, err)
		}
	}
	return nil
}
