package schedule

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// Observation is the state of a market's totals at a point in time.
type Observation struct {
	Timestamp uint64
	Borrowed  *big.Int
	Supplied  *big.Int
}

// Load reads observations from a CSV file with a header line and the columns
// timestamp (unix seconds), borrowed and supplied (base-10 asset amounts that
// fit 256 bits). Timestamps must not decrease.
func Load(file string) ([]Observation, error) {

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read schedule file: %w", err)
	}

	return Parse(data)
}

// Parse decodes the CSV content of a schedule file.
func Parse(data []byte) ([]Observation, error) {

	csvr := csv.NewReader(bytes.NewReader(data))
	csvr.FieldsPerRecord = 3
	csvr.TrimLeadingSpace = true
	records, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read schedule records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("schedule has no header")
	}

	observations := make([]Observation, 0, len(records)-1)
	var last uint64
	for i, record := range records[1:] {

		line := i + 2

		timestamp, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse timestamp on line %d: %w", line, err)
		}
		if timestamp < last {
			return nil, fmt.Errorf("timestamp %d on line %d is before previous timestamp %d", timestamp, line, last)
		}
		last = timestamp

		borrowed, err := uint256.FromDecimal(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("could not parse borrowed amount on line %d: %w", line, err)
		}

		supplied, err := uint256.FromDecimal(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("could not parse supplied amount on line %d: %w", line, err)
		}

		observation := Observation{
			Timestamp: timestamp,
			Borrowed:  borrowed.ToBig(),
			Supplied:  supplied.ToBig(),
		}
		observations = append(observations, observation)
	}

	return observations, nil
}
