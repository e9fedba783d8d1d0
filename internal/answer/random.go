package answer

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/chorus-search/chorus/internal/model"
)

const randomCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Random answers generation queries: "random number 1 100",
// "random string 16", "uuid".
type Random struct{}

// NewRandom creates the random-value answerer.
func NewRandom() *Random {
	return &Random{}
}

func (a *Random) Name() string { return "random" }

func (a *Random) Keywords() []string {
	return []string{"random", "uuid"}
}

var (
	randomNumberRE = regexp.MustCompile(`(?i)^random\s+number\s+(\d+)\s+(\d+)$`)
	randomStringRE = regexp.MustCompile(`(?i)^random\s+string\s+(\d+)$`)
	uuidRE         = regexp.MustCompile(`(?i)^uuid$`)
)

func (a *Random) Answer(query string) []model.Answer {
	query = strings.TrimSpace(query)

	if m := randomNumberRE.FindStringSubmatch(query); len(m) == 3 {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo >= hi {
			return nil
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(hi-lo+1)))
		if err != nil {
			return nil
		}
		return []model.Answer{{Text: strconv.Itoa(lo + int(n.Int64()))}}
	}

	if m := randomStringRE.FindStringSubmatch(query); len(m) == 2 {
		length, _ := strconv.Atoi(m[1])
		if length < 1 || length > 1000 {
			return nil
		}
		out := make([]byte, length)
		for i := range out {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomCharset))))
			if err != nil {
				return nil
			}
			out[i] = randomCharset[n.Int64()]
		}
		return []model.Answer{{Text: string(out)}}
	}

	if uuidRE.MatchString(query) {
		u := make([]byte, 16)
		if _, err := rand.Read(u); err != nil {
			return nil
		}
		u[6] = (u[6] & 0x0f) | 0x40
		u[8] = (u[8] & 0x3f) | 0x80
		return []model.Answer{{
			Text: fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16]),
		}}
	}

	return nil
}
