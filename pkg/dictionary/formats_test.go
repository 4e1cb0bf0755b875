package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// latin1Dict spells café with the single byte 0xE9.
const latin1Dict = "[Suffix]\nS N 1\nS 0 s .\n[Words]\ncaf\xe9/S\nna\xefve\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"", EncodingAuto, false},
		{"auto", EncodingAuto, false},
		{"UTF-8", EncodingUTF8, false},
		{"utf8", EncodingUTF8, false},
		{"Latin1", EncodingISO88591, false},
		{" iso-8859-15 ", EncodingISO885915, false},
		{"cp1252", EncodingWindows1252, false},
		{"KOI8-R", EncodingKOI8R, false},
		{"ebcdic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEncoding(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "supported")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedEncodings(t *testing.T) {
	names := SupportedEncodings()
	require.Len(t, names, 8)
	assert.Equal(t, "auto", names[0])
	assert.Equal(t, "utf-8", names[1])
	assert.IsIncreasing(t, names[2:])
	for _, n := range names {
		_, err := ParseEncoding(n)
		assert.NoError(t, err, n)
	}
}

func TestDetectEncoding(t *testing.T) {
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("café")))
	assert.Equal(t, EncodingUTF8, DetectEncoding(nil))
	assert.Equal(t, EncodingWindows1252, DetectEncoding([]byte(latin1Dict)))
}

func TestLoadEncodedSingleByte(t *testing.T) {
	for _, enc := range []Encoding{EncodingISO88591, EncodingWindows1252, EncodingAuto} {
		t.Run(string(enc), func(t *testing.T) {
			d, err := LoadEncoded(strings.NewReader(latin1Dict), enc)
			require.NoError(t, err)
			assert.True(t, d.Contains("café"))
			assert.True(t, d.Contains("cafés"))
			assert.True(t, d.Contains("CAFÉ"))
			assert.True(t, d.Contains("naïve"))
		})
	}
}

func TestLoadEncodedUnknown(t *testing.T) {
	_, err := LoadEncoded(strings.NewReader(""), Encoding("ebcdic"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	d, err := LoadFile(samplePath, EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Len())
	assert.True(t, d.Contains("unbaked"))

	path := writeTemp(t, "latin.dic", latin1Dict)
	d, err = LoadFile(path, EncodingISO88591)
	require.NoError(t, err)
	assert.True(t, d.Contains("café"))
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeTemp(t, "empty.dic", "")
	d, err := LoadFile(path, EncodingAuto)
	require.NoError(t, err)
	assert.Zero(t, d.Len())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.dic"), EncodingAuto)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidateFile(samplePath))
	assert.NoError(t, ValidateFile(writeTemp(t, "words.TXT", "[Words]\na\n")))
	assert.NoError(t, ValidateFile(writeTemp(t, "empty.dict", "")))

	assert.Error(t, ValidateFile(dir))
	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.dic")))

	err := ValidateFile(writeTemp(t, "words.json", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid extension")
}
