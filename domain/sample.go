package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/bxcodec/faker/v4"
)

// SampleSubject describes one generated subject sheet.
type SampleSubject struct {
	Name   string
	HasLab bool
}

var sampleSubjects = []SampleSubject{
	{Name: "1 Engineering Mathematics", HasLab: false},
	{Name: "2 Engineering Physics", HasLab: true},
	{Name: "3 Basic Electrical Engineering", HasLab: true},
	{Name: "4 Programming for Problem Solving", HasLab: true},
	{Name: "5 Communication Skills", HasLab: false},
	{Name: "6 Engineering Graphics", HasLab: true},
}

// SampleSubjects returns up to n built-in subjects.
func SampleSubjects(n int) []SampleSubject {
	if n > len(sampleSubjects) {
		n = len(sampleSubjects)
	}
	if n < 0 {
		n = 0
	}
	return sampleSubjects[:n]
}

// GenerateRoster creates n students with fake names.
// Enrollment numbers are sequential so rosters are comparable across subjects.
func GenerateRoster(n int) []StudentKey {
	students := make([]StudentKey, n)
	for i := range n {
		students[i] = StudentKey{
			EnrollmentNo: fmt.Sprintf("0801CS24%04d", i+1),
			Name:         faker.Name(),
		}
	}
	return students
}

// GenerateSheet builds a raw per-subject sheet in the layout the extractor
// reads: subject in A1, headers in row 2, one student per row below.
func GenerateSheet(subject SampleSubject, roster []StudentKey) RawSheet {
	header := []string{"S.No.", "Enrollment No.", "Name", "Total Theory", "Attended"}
	if subject.HasLab {
		header = append(header, "Lab", "Lab Attended")
	}

	rows := [][]string{{subject.Name}, header}

	theory := 30 + rand.IntN(20)
	lab := 10 + rand.IntN(10)

	for i, st := range roster {
		row := []string{
			strconv.Itoa(i + 1),
			st.EnrollmentNo,
			st.Name,
			strconv.Itoa(theory),
			strconv.Itoa(rand.IntN(theory + 1)),
		}
		if subject.HasLab {
			row = append(row, strconv.Itoa(lab), strconv.Itoa(rand.IntN(lab+1)))
		}
		rows = append(rows, row)
	}

	return RawSheet{Name: "Sheet1", Rows: rows}
}
