package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	errMapHeader    = errors.New("map header must be \"width height startX startY\"")
	errMapSize      = fmt.Errorf("map dimensions must be between 1 and %d", maxMapSide)
	errMapStart     = errors.New("start cell must be an empty cell inside the map")
	errMapRowLength = errors.New("map row has the wrong length")
	errMapDigit     = errors.New("map row contains a character outside [0-9a-f]")
	errMapRows      = errors.New("map has the wrong number of rows")
)

// loadMap reads a map file from disk.
func loadMap(path string) (*gridMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := parseMap(f)
	if err != nil {
		return nil, fmt.Errorf("loading map %q: %w", path, err)
	}
	return m, nil
}

// parseMap decodes the text map format: a header line with four integers
// followed by height rows of width hexadecimal digits. Blank lines are skipped.
func parseMap(r io.Reader) (*gridMap, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("line 1: %w", errMapHeader)
	}
	fields := strings.Fields(header)
	if len(fields) != 4 {
		return nil, fmt.Errorf("line %d: %w", lineNo, errMapHeader)
	}
	var vals [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, errMapHeader, err)
		}
		vals[i] = v
	}
	width, height := vals[0], vals[1]
	if width <= 0 || height <= 0 || width > maxMapSide || height > maxMapSide {
		return nil, fmt.Errorf("line %d: %w (got %dx%d)", lineNo, errMapSize, width, height)
	}

	m := newGridMap(width, height)
	m.startX, m.startY = vals[2], vals[3]
	for y := 0; y < height; y++ {
		row, ok := nextLine()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("line %d: %w: expected %d, got %d", lineNo+1, errMapRows, height, y)
		}
		if len(row) != width {
			return nil, fmt.Errorf("line %d: %w: expected %d characters, got %d", lineNo, errMapRowLength, width, len(row))
		}
		for x := 0; x < width; x++ {
			code, ok := hexCode(row[x])
			if !ok {
				return nil, fmt.Errorf("line %d column %d: %w: %q", lineNo, x+1, errMapDigit, row[x])
			}
			m.setTile(x, y, code)
		}
	}
	if extra, ok := nextLine(); ok {
		return nil, fmt.Errorf("line %d: %w: unexpected row %q after %d rows", lineNo, errMapRows, extra, height)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !m.inBounds(m.startX, m.startY) || m.tileAt(m.startX, m.startY) != 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", errMapStart, m.startX, m.startY)
	}
	return m, nil
}

func hexCode(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return 10 + c - 'a', true
	}
	return 0, false
}

const hexDigits = "0123456789abcdef"

// writeMap encodes m in the format read by parseMap.
func writeMap(w io.Writer, m *gridMap) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", m.width, m.height, m.startX, m.startY); err != nil {
		return err
	}
	row := make([]byte, m.width+1)
	row[m.width] = '\n'
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			code := m.tileAt(x, y)
			if int(code) >= len(hexDigits) {
				return fmt.Errorf("tile (%d,%d) has code %d, which the map format cannot encode", x, y, code)
			}
			row[x] = hexDigits[code]
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// saveMap writes m to path.
func saveMap(path string, m *gridMap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeMap(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing map %q: %w", path, err)
	}
	return f.Close()
}
