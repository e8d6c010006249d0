package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// credentialEscapes maps every character that must be percent-encoded inside
// the userinfo section of a Postgres URL to its encoding. Supabase generates
// passwords containing '@', ':' and friends, which break naive url.Parse if
// left raw.
var credentialEscapes = map[rune]string{
	' ':  "%20",
	'"':  "%22",
	'#':  "%23",
	'$':  "%24",
	'%':  "%25",
	'&':  "%26",
	'+':  "%2B",
	',':  "%2C",
	'/':  "%2F",
	':':  "%3A",
	';':  "%3B",
	'<':  "%3C",
	'=':  "%3D",
	'>':  "%3E",
	'?':  "%3F",
	'@':  "%40",
	'[':  "%5B",
	'\\': "%5C",
	']':  "%5D",
	'^':  "%5E",
	'`':  "%60",
	'{':  "%7B",
	'|':  "%7C",
	'}':  "%7D",
}

// EncodeCredential percent-encodes a username or password so it can be
// embedded in the userinfo section of a database URL.
func EncodeCredential(s string) string {
	var b strings.Builder
	for _, r := range s {
		if esc, ok := credentialEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DecodeCredential reverses EncodeCredential. It fails on malformed percent
// sequences such as a trailing "%4".
func DecodeCredential(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("invalid percent-encoding in credential: %w", err)
	}
	return decoded, nil
}

// canonicalizeCredential re-encodes a credential segment that may arrive
// either raw or already percent-encoded. If the segment decodes cleanly it is
// decoded first, so normalization is idempotent; otherwise the raw literal is
// encoded as-is (escaping any stray '%').
func canonicalizeCredential(s string) string {
	if decoded, err := DecodeCredential(s); err == nil {
		return EncodeCredential(decoded)
	}
	return EncodeCredential(s)
}

// NormalizeDatabaseURL validates a Postgres-style DATABASE_URL and returns a
// canonical DSN with the username and password percent-encoded. The userinfo
// is split manually (at the last '@' and the first ':') instead of relying on
// url.Parse, because raw Supabase passwords frequently contain characters
// that make url.Parse misattribute the host.
//
// Errors name the segment that failed; the password never appears in them.
func NormalizeDatabaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("database URL is empty")
	}

	schemeEnd := strings.Index(raw, "://")
	if schemeEnd < 0 {
		return "", fmt.Errorf("database URL %q has no scheme separator '://'", Redact(raw))
	}
	scheme := strings.ToLower(raw[:schemeEnd])
	if scheme != "postgres" && scheme != "postgresql" {
		return "", fmt.Errorf("unsupported database URL scheme %q (want postgres or postgresql)", scheme)
	}

	rest := raw[schemeEnd+3:]

	// The last '@' separates userinfo from host: a raw password may itself
	// contain '@'.
	var user, pass, hostPart string
	hasPassword := false
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		userinfo := rest[:at]
		hostPart = rest[at+1:]
		if colon := strings.Index(userinfo, ":"); colon >= 0 {
			user = userinfo[:colon]
			pass = userinfo[colon+1:]
			hasPassword = true
		} else {
			user = userinfo
		}
	} else {
		hostPart = rest
	}
	if hostPart == "" {
		return "", fmt.Errorf("database URL has empty host section")
	}

	// Split host[:port] from /dbname?params.
	hostport := hostPart
	var pathAndQuery string
	if slash := strings.Index(hostPart, "/"); slash >= 0 {
		hostport = hostPart[:slash]
		pathAndQuery = hostPart[slash+1:]
	}

	host := hostport
	port := "5432"
	if colon := strings.LastIndex(hostport, ":"); colon >= 0 {
		host = hostport[:colon]
		port = hostport[colon+1:]
	}
	if host == "" {
		return "", fmt.Errorf("database URL has empty hostname")
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("database URL has invalid port %q", port)
	}

	dbName := pathAndQuery
	query := ""
	if q := strings.Index(pathAndQuery, "?"); q >= 0 {
		dbName = pathAndQuery[:q]
		query = pathAndQuery[q+1:]
	}
	if dbName == "" {
		return "", fmt.Errorf("database URL has no database name (host %s)", host)
	}

	var b strings.Builder
	b.WriteString("postgresql://")
	if user != "" || hasPassword {
		b.WriteString(canonicalizeCredential(user))
		if hasPassword {
			b.WriteString(":")
			b.WriteString(canonicalizeCredential(pass))
		}
		b.WriteString("@")
	}
	b.WriteString(host)
	b.WriteString(":")
	b.WriteString(port)
	b.WriteString("/")
	b.WriteString(dbName)
	if query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	return b.String(), nil
}

// BuildDatabaseURL assembles a normalized URL from the individual Supabase
// component variables, used when DATABASE_URL itself is not set.
func BuildDatabaseURL(host, port, name, user, password string) (string, error) {
	if host == "" || name == "" || user == "" {
		return "", fmt.Errorf("incomplete database settings: host/name/user are required")
	}
	if port == "" {
		port = "5432"
	}
	raw := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		EncodeCredential(user), EncodeCredential(password), host, port, name)
	return NormalizeDatabaseURL(raw)
}

// Redact masks the password section of a database URL so it can be logged.
// URLs without a scheme are masked too, they may still carry credentials.
func Redact(raw string) string {
	prefix := ""
	rest := raw
	if schemeEnd := strings.Index(raw, "://"); schemeEnd >= 0 {
		prefix = raw[:schemeEnd+3]
		rest = raw[schemeEnd+3:]
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return raw
	}
	userinfo := rest[:at]
	if colon := strings.Index(userinfo, ":"); colon >= 0 {
		userinfo = userinfo[:colon] + ":****"
	}
	return prefix + userinfo + rest[at:]
}
