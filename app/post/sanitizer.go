package post

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from rendered post bodies.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	// UGCPolicy keeps p, a, strong, em, lists, tables, images.
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)

	return &Sanitizer{
		policy: p,
	}
}

func (s *Sanitizer) Run(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
