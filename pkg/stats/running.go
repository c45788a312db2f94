// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoSamples is returned when a statistic with no samples is evaluated.
var ErrNoSamples = errors.New("stats: no samples recorded")

// Running is a streaming accumulator of integer samples. The zero value is
// an empty statistic ready for use.
type Running struct {
	n           int
	accumulator int64

	minimum, maximum int
}

// Record adds the given sample to the statistic.
func (stat *Running) Record(value int) {
	if stat.n == 0 || value < stat.minimum {
		stat.minimum = value
	}

	if stat.n == 0 || value > stat.maximum {
		stat.maximum = value
	}

	stat.accumulator += int64(value)
	stat.n++
}

// N returns the number of recorded samples.
func (stat *Running) N() int {
	return stat.n
}

// Evaluate returns the mean, minimum, and maximum of the recorded samples.
func (stat *Running) Evaluate() (mean float64, minimum int, maximum int, err error) {
	if stat.n == 0 {
		return 0, 0, 0, ErrNoSamples
	}

	return float64(stat.accumulator) / float64(stat.n), stat.minimum, stat.maximum, nil
}

func (stat Running) String() string {
	mean, minimum, maximum, err := stat.Evaluate()
	if err != nil {
		return "no samples"
	}

	return fmt.Sprintf("average: %s, minimum: %d, maximum: %d", formatMean(mean), minimum, maximum)
}

// formatMean formats the mean as a float literal, so an integral mean is
// written as 2.0 and not 2.
func formatMean(mean float64) string {
	str := strconv.FormatFloat(mean, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}

	return str
}
