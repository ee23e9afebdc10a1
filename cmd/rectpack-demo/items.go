package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ForeverZer0/growpack"
)

// item is one rectangle read from the input, together with the placement the packer assigns it
// once loadItems' caller has driven Insert.
type item struct {
	size      growpack.Size[int]
	pageIndex int
	pos       growpack.Position[int]
	index     int
	skipped   bool
}

// loadItems reads "WIDTHxHEIGHT" or "WIDTHxHEIGHTxCOUNT" descriptions, one per line (blank lines
// and surrounding whitespace are ignored), matching the input format the reference demo reads with sscanf.
func loadItems(r io.Reader) ([]item, error) {
	var items []item

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		w, h, count, err := parseRectLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		for i := 0; i < count; i++ {
			items = append(items, item{size: growpack.Size[int]{W: w, H: h}})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func parseRectLine(line string) (w, h, count int, err error) {
	fields := strings.SplitN(line, "x", 3)
	if len(fields) < 2 {
		return 0, 0, 0, fmt.Errorf("invalid rectangle description: %q", line)
	}

	if w, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid width in %q: %w", line, err)
	}
	if h, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid height in %q: %w", line, err)
	}

	count = 1
	if len(fields) == 3 {
		if count, err = strconv.Atoi(fields[2]); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid count in %q: %w", line, err)
		}
	}

	return w, h, count, nil
}
