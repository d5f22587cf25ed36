package service

import "math"

// StatusCount adalah hasil GROUP BY status dari tabel absensi.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Summary merangkum kehadiran untuk satu hari atau satu bulan.
type Summary struct {
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Absent     int64   `json:"absent"`
	Leave      int64   `json:"leave"`
	Percentage float64 `json:"percentage"`
}

// Summarize menghitung total dan persentase kehadiran dari baris GROUP BY.
// Status di luar present/absent/leave diabaikan tetapi tetap masuk total.
// Persentase = present/total × 100, dibulatkan 2 desimal; 0 bila tidak ada data.
func Summarize(rows []StatusCount) Summary {
	var s Summary
	for _, r := range rows {
		s.Total += r.Count
		switch r.Status {
		case "present":
			s.Present += r.Count
		case "absent":
			s.Absent += r.Count
		case "leave":
			s.Leave += r.Count
		}
	}
	if s.Total > 0 {
		s.Percentage = math.Round(float64(s.Present)/float64(s.Total)*100*100) / 100
	}
	return s
}
