package harness

import "go.trai.ch/histo/internal/core/domain"

// Reference counts the occurrences of each value of data into b bins.
// Every value must lie in [0, b).
func Reference(data domain.Dataset, b int32) domain.Histogram {
	hist := make(domain.Histogram, b)
	for _, v := range data {
		hist[v]++
	}
	return hist
}
