// Package gate decides whether a page request may proceed. API routes
// authorize themselves and never pass through here.
package gate

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/domain/entity"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// LoginPath is where rejected page requests are sent.
const LoginPath = "/login"

// publicPages are reachable without a session.
var publicPages = map[string]bool{
	"/":                   true,
	"/login":              true,
	"/cadastro":           true,
	"/cadastro/empresa":   true,
	"/cadastro/candidato": true,
	"/esqueci-senha":      true,
	"/verificar-email":    true,
	"/vagas":              true,
	"/sobre":              true,
	"/contato":            true,
}

var assetPrefixes = []string{"/_next/", "/static/", "/assets/"}

// profilePrefix is the public company profile path, /empresa/{slug}.
const profilePrefix = "/empresa/"

// companyPages are first-level pages of the company area; they share the
// /empresa/ prefix with public profiles and are never treated as slugs.
var companyPages = map[string]bool{
	"dashboard":     true,
	"perfil":        true,
	"vagas":         true,
	"candidaturas":  true,
	"mensagens":     true,
	"configuracoes": true,
}

// rolePrefixes maps protected areas to the only role allowed in them.
var rolePrefixes = []struct {
	prefix string
	role   entity.Role
}{
	{"/admin", entity.RoleAdmin},
	{"/empresa", entity.RoleCompany},
	{"/candidato", entity.RoleCandidate},
}

// Decision is the gate's verdict. Redirect is set when Allow is false.
type Decision struct {
	Allow    bool
	Redirect string
}

var (
	allow   = Decision{Allow: true}
	toLogin = Decision{Redirect: LoginPath}
)

// Decide applies the page policy to p for session s, which may be nil. A
// wrong role is answered like a missing session so protected areas are not
// revealed.
func Decide(p string, s *jwtmw.Session) Decision {
	if p == "" {
		p = "/"
	}
	if bypass(p) || publicPages[p] || isPublicProfile(p) {
		return allow
	}
	if s == nil {
		return toLogin
	}
	for _, rp := range rolePrefixes {
		if underPrefix(p, rp.prefix) {
			if s.Role != rp.role {
				return toLogin
			}
			return allow
		}
	}
	return allow
}

// bypass reports whether p is an API route or under a build asset prefix.
// A dot in the last segment is not enough: /admin/report.v2 is still a page.
func bypass(p string) bool {
	if underPrefix(p, "/api") || p == "/favicon.ico" {
		return true
	}
	for _, prefix := range assetPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// isPublicProfile matches /empresa/{slug} exactly one segment deep.
func isPublicProfile(p string) bool {
	slug, ok := strings.CutPrefix(p, profilePrefix)
	return ok && slug != "" && !strings.Contains(slug, "/") && !companyPages[slug]
}

func underPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// Middleware enforces Decide on every request it sees. It reads the session
// stored by jwtmw.Authenticate. Paths for which isFile reports true are
// static files of the web client and pass untouched; isFile may be nil.
func Middleware(isFile func(p string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isFile != nil && isFile(c.Request.URL.Path) {
			c.Next()
			return
		}
		s, _ := jwtmw.SessionFrom(c)
		d := Decide(c.Request.URL.Path, s)
		if !d.Allow {
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
