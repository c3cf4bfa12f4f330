package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/polychain/pkg/geometry"
)

const (
	headerSize = 80
	recordSize = 50 // normal, three vertices, attribute count
)

var (
	// ErrMalformed is returned for ASCII lines that cannot be parsed
	ErrMalformed = errors.New("malformed STL")
	// ErrTruncated is returned when a binary file ends before its declared triangle count
	ErrTruncated = errors.New("truncated STL")
	// ErrCountMismatch is returned by VerifyFile when the triangle count differs
	ErrCountMismatch = errors.New("STL triangle count mismatch")
)

// Parse reads an exported STL file back into a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// VerifyFile parses path and checks it holds exactly triangles facets.
// The export command uses it to confirm what reached the disk.
func VerifyFile(path string, triangles int) (*Model, error) {
	model, err := Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read back %s: %w", path, err)
	}
	if got := model.TriangleCount(); got != triangles {
		return model, fmt.Errorf("%w: %s has %d triangles, expected %d", ErrCountMismatch, path, got, triangles)
	}
	return model, nil
}

// ParseReader detects ASCII or binary STL and parses it.
// Binary files whose 80-byte header happens to start with "solid" are told
// apart by the "facet" or "endsolid" keyword that follows in ASCII files.
func ParseReader(r io.ReadSeeker) (*Model, error) {
	header := make([]byte, 512)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if bytes.HasPrefix(header, []byte("solid")) && (bytes.Contains(header, []byte("facet")) || bytes.Contains(header, []byte("endsolid"))) {
		return readASCII(r)
	}
	return readBinary(r)
}

// readASCII collects facets between "facet" and "endfacet". Only complete
// facets with exactly three vertices are kept.
func readASCII(r io.Reader) (*Model, error) {
	model := NewModel("")
	scanner := bufio.NewScanner(r)

	var (
		normal  geometry.Vector3
		corners []geometry.Vector3
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")
		case "facet":
			corners = corners[:0]
			normal = geometry.Origin
			if len(fields) == 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
				}
				normal = v
			}
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrMalformed, lineNo)
			}
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			corners = append(corners, v)
		case "endfacet":
			if len(corners) == 3 {
				model.AddTriangle(geometry.NewTriangle(normal, corners[0], corners[1], corners[2]))
			}
			corners = corners[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var a [3]float64
	for i := range a {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		a[i] = f
	}
	return geometry.NewVector3(a[0], a[1], a[2]), nil
}

// readBinary decodes the 80-byte header, the little-endian triangle count
// and then one fixed-size record per triangle.
func readBinary(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrTruncated, err)
	}
	model := NewModel(string(bytes.TrimRight(header, "\x00 ")))

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: triangle count: %v", ErrTruncated, err)
	}

	record := make([]byte, recordSize)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, record); err != nil {
			return nil, fmt.Errorf("%w: triangle %d of %d: %v", ErrTruncated, i, count, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			recordVector(record, 0),
			recordVector(record, 1),
			recordVector(record, 2),
			recordVector(record, 3),
		))
	}
	return model, nil
}

// recordVector decodes the i-th float32 triple of a triangle record
func recordVector(record []byte, i int) geometry.Vector3 {
	off := i * 12
	f := func(o int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(record[off+o:])))
	}
	return geometry.NewVector3(f(0), f(4), f(8))
}
