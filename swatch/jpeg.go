package swatch

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

const (
	jfifNoUnits    = 0
	jfifPxPerInch  = 1
	app0MarkerSize = 0x10
)

// setJFIFDensity makes sure JPEG starts with JFIF APP0 segment carrying
// requested pixel density. Existing APP0 segment is updated in place.
func setJFIFDensity(data []byte, dpi int) ([]byte, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, errors.New("not a jpeg")
	}

	units, density := uint8(jfifPxPerInch), uint16(dpi)
	if dpi <= 0 {
		units, density = jfifNoUnits, 1
	}

	// FF E0 len(2) "JFIF\0" version(2) units(1) xdensity(2) ydensity(2)
	if data[2] == 0xFF && data[3] == 0xE0 && len(data) >= 18 && bytes.Equal(data[6:11], []byte("JFIF\x00")) {
		out := bytes.Clone(data)
		out[13] = units
		binary.BigEndian.PutUint16(out[14:], density)
		binary.BigEndian.PutUint16(out[16:], density)
		return out, nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(data)+app0MarkerSize+2))
	buf.Write(data[:2])
	buf.Write([]byte{0xFF, 0xE0})
	_ = binary.Write(buf, binary.BigEndian, uint16(app0MarkerSize))
	buf.Write([]byte("JFIF\x00\x01\x02"))
	buf.WriteByte(units)
	_ = binary.Write(buf, binary.BigEndian, density)
	_ = binary.Write(buf, binary.BigEndian, density)
	buf.Write([]byte{0, 0}) // no thumbnail
	buf.Write(data[2:])
	return buf.Bytes(), nil
}

func encodeJPEG(img image.Image, quality, dpi int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return setJFIFDensity(buf.Bytes(), dpi)
}
