// Package identity parses institutional emails and talks to the identity
// provider's admin API.
package identity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	svcErr "github.com/oggyb/campus-connect/internal/errors"
)

// batchWindowYears bounds how old a batch year may be.
const batchWindowYears = 10

// Rules describe the institutional address format:
// <2-digit batch><infix><3-digit dept><section letter><2-digit roll>@<domain>.
type Rules struct {
	Domain string
	Infix  string
}

// RollNumber is what an institutional email encodes.
type RollNumber struct {
	Batch        int
	Branch       string
	Dept         string
	Section      string
	Roll         int
	AcademicYear int
}

func (r Rules) pattern() *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`^(\d{2})(%s)(\d{3})([a-z])(\d{2})@%s$`,
		regexp.QuoteMeta(strings.ToLower(r.Infix)),
		regexp.QuoteMeta(strings.ToLower(r.Domain)),
	))
}

// ParseEmail validates email against rules and decodes its roll number.
// now decides the accepted batch window and the academic year.
//
// Branch is the two letters right after the batch digits, upper-cased.
// With a fixed infix that is always the infix itself.
func ParseEmail(email string, rules Rules, now time.Time) (*RollNumber, error) {
	m := rules.pattern().FindStringSubmatch(strings.ToLower(strings.TrimSpace(email)))
	if m == nil {
		return nil, svcErr.ErrInvalidFormat
	}

	batch, _ := strconv.Atoi(m[1])
	roll, _ := strconv.Atoi(m[5])

	year := now.Year()
	batchYear := year/100*100 + batch
	if batchYear > year {
		batchYear -= 100
	}
	if batchYear < year-batchWindowYears {
		return nil, svcErr.ErrInvalidFormat.WithMsg("batch %02d is outside the accepted window", batch)
	}
	if roll == 0 {
		return nil, svcErr.ErrInvalidFormat.WithMsg("roll number must be nonzero")
	}

	return &RollNumber{
		Batch:        batch,
		Branch:       strings.ToUpper(m[2]),
		Dept:         m[3],
		Section:      strings.ToUpper(m[4]),
		Roll:         roll,
		AcademicYear: academicYear(year, batchYear),
	}, nil
}

func academicYear(year, batchYear int) int {
	y := year - batchYear + 1
	switch {
	case y < 1:
		return 1
	case y > 4:
		return 4
	}
	return y
}
