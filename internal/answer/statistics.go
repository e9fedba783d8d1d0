package answer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chorus-search/chorus/internal/model"
)

// Statistics answers calculations over number lists, such as
// "avg 1 2 3 4" or "max 10 20 15".
type Statistics struct {
	patterns []statsPattern
}

type statsPattern struct {
	re      *regexp.Regexp
	label   string
	compute func([]float64) float64
}

// NewStatistics creates the statistics answerer.
func NewStatistics() *Statistics {
	return &Statistics{patterns: []statsPattern{
		{
			re:    regexp.MustCompile(`(?i)^min\s+(.+)$`),
			label: "min",
			compute: func(nums []float64) float64 {
				m := nums[0]
				for _, n := range nums[1:] {
					if n < m {
						m = n
					}
				}
				return m
			},
		},
		{
			re:    regexp.MustCompile(`(?i)^max\s+(.+)$`),
			label: "max",
			compute: func(nums []float64) float64 {
				m := nums[0]
				for _, n := range nums[1:] {
					if n > m {
						m = n
					}
				}
				return m
			},
		},
		{
			re:    regexp.MustCompile(`(?i)^(?:avg|average|mean)\s+(.+)$`),
			label: "avg",
			compute: func(nums []float64) float64 {
				var sum float64
				for _, n := range nums {
					sum += n
				}
				return sum / float64(len(nums))
			},
		},
		{
			re:    regexp.MustCompile(`(?i)^sum\s+(.+)$`),
			label: "sum",
			compute: func(nums []float64) float64 {
				var sum float64
				for _, n := range nums {
					sum += n
				}
				return sum
			},
		},
	}}
}

func (a *Statistics) Name() string { return "statistics" }

func (a *Statistics) Keywords() []string {
	return []string{"min", "max", "avg", "average", "mean", "sum"}
}

func (a *Statistics) Answer(query string) []model.Answer {
	query = strings.TrimSpace(query)
	for _, p := range a.patterns {
		m := p.re.FindStringSubmatch(query)
		if len(m) != 2 {
			continue
		}
		nums := parseNumbers(m[1])
		if len(nums) == 0 {
			continue
		}
		return []model.Answer{{
			Text: fmt.Sprintf("%s(%s) = %s", p.label, m[1], formatNumber(p.compute(nums))),
		}}
	}
	return nil
}

func parseNumbers(s string) []float64 {
	fields := strings.Fields(s)
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",;")
		if f == "" {
			continue
		}
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		nums = append(nums, n)
	}
	return nums
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	s := strconv.FormatFloat(n, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
