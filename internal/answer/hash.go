package answer

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/chorus-search/chorus/internal/model"
)

// Hash answers digest queries such as "sha256 hello world".
type Hash struct {
	patterns []hashPattern
}

type hashPattern struct {
	re    *regexp.Regexp
	label string
	sum   func(string) string
}

// NewHash creates the hash answerer.
func NewHash() *Hash {
	return &Hash{patterns: []hashPattern{
		{
			re:    regexp.MustCompile(`(?i)^md5\s+(.+)$`),
			label: "MD5",
			sum:   func(s string) string { h := md5.Sum([]byte(s)); return hex.EncodeToString(h[:]) },
		},
		{
			re:    regexp.MustCompile(`(?i)^sha1\s+(.+)$`),
			label: "SHA1",
			sum:   func(s string) string { h := sha1.Sum([]byte(s)); return hex.EncodeToString(h[:]) },
		},
		{
			re:    regexp.MustCompile(`(?i)^sha256\s+(.+)$`),
			label: "SHA256",
			sum:   func(s string) string { h := sha256.Sum256([]byte(s)); return hex.EncodeToString(h[:]) },
		},
		{
			re:    regexp.MustCompile(`(?i)^sha512\s+(.+)$`),
			label: "SHA512",
			sum:   func(s string) string { h := sha512.Sum512([]byte(s)); return hex.EncodeToString(h[:]) },
		},
	}}
}

func (a *Hash) Name() string { return "hash" }

func (a *Hash) Keywords() []string {
	return []string{"md5", "sha1", "sha256", "sha512"}
}

func (a *Hash) Answer(query string) []model.Answer {
	query = strings.TrimSpace(query)
	for _, p := range a.patterns {
		if m := p.re.FindStringSubmatch(query); len(m) == 2 {
			return []model.Answer{{Text: p.label + ": " + p.sum(m[1])}}
		}
	}
	return nil
}
