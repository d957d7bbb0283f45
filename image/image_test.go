package image

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uvm32/isa"
)

func TestImageWrite(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer

	err := Write(&buf, []isa.Word{0x00002806, 0x00005019})
	assert.NoError(err)

	// Little-endian, least significant byte first.
	assert.Equal([]byte{
		0x06, 0x28, 0x00, 0x00,
		0x19, 0x50, 0x00, 0x00,
	}, buf.Bytes())
}

func TestImageRead(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		0x06, 0x28, 0x00, 0x00,
		0x19, 0x50, 0x00, 0x00,
	}

	words, err := Read(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal([]isa.Word{0x00002806, 0x00005019}, words)
}

func TestImageRoundTrip(t *testing.T) {
	assert := assert.New(t)

	words := []isa.Word{0x00000000, 0xFFFFFFFF, 0x00002806, 0xDEADBEEF}

	var buf bytes.Buffer
	err := Write(&buf, words)
	assert.NoError(err)
	assert.Equal(len(words)*WORD_BYTES, buf.Len())

	got, err := Read(&buf)
	assert.NoError(err)
	assert.Equal(words, got)
}

func TestImageEmpty(t *testing.T) {
	assert := assert.New(t)

	words, err := Read(bytes.NewReader(nil))
	assert.Error(err)
	assert.True(errors.Is(err, ErrEmpty))
	assert.Nil(words)
}

func TestImageMisaligned(t *testing.T) {
	assert := assert.New(t)

	words, err := Read(bytes.NewReader(make([]byte, 6)))
	assert.Error(err)
	assert.Nil(words)

	var misaligned ErrMisaligned
	assert.True(errors.As(err, &misaligned))
	assert.Equal(ErrMisaligned(6), misaligned)
}

func TestImageSaveLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "test.bin")
	words := []isa.Word{0x00002806, 0x00005019}

	err := Save(path, words)
	assert.NoError(err)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(len(words)*WORD_BYTES, len(data))

	got, err := Load(path)
	assert.NoError(err)
	assert.Equal(words, got)
}

func TestImageLoadMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(err)
	assert.True(errors.Is(err, fs.ErrNotExist))
}

func TestImageSaveEmpty(t *testing.T) {
	assert := assert.New(t)

	// An empty program still produces (an empty) image file; reading it
	// back is the error.
	path := filepath.Join(t.TempDir(), "empty.bin")

	err := Save(path, nil)
	assert.NoError(err)

	_, err = Load(path)
	assert.True(errors.Is(err, ErrEmpty))
}
