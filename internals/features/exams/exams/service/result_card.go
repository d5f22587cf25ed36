package service

import "math"

// PassMark: nilai mapel di bawah ini membuat hasil ujian FAIL.
const PassMark = 33

type SubjectMark struct {
	SubjectName string `json:"subject_name"`
	Marks       int    `json:"marks"`
}

type ResultCard struct {
	Subjects   []SubjectMark `json:"subjects"`
	TotalMarks int           `json:"total_marks"`
	Percentage float64       `json:"percentage"`
	Result     string        `json:"result"`
}

// BuildResultCard merangkum nilai ujian satu siswa. Tiap mapel dianggap
// berbobot 100: persentase = total / (jumlah mapel × 100) × 100, dibulatkan
// 2 desimal. Hasil FAIL bila ada satu saja mapel di bawah PassMark.
// Input kosong menghasilkan kartu kosong dengan persentase 0.
func BuildResultCard(marks []SubjectMark) ResultCard {
	card := ResultCard{Subjects: marks, Result: "PASS"}
	if len(marks) == 0 {
		card.Subjects = []SubjectMark{}
		return card
	}

	for _, m := range marks {
		card.TotalMarks += m.Marks
		if m.Marks < PassMark {
			card.Result = "FAIL"
		}
	}

	pct := float64(card.TotalMarks) / float64(len(marks)*100) * 100
	card.Percentage = math.Round(pct*100) / 100
	return card
}
