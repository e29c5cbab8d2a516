// Package site holds the static brand registry for the three Sou Arte
// properties and the hostname resolution rules that decide which brand an
// incoming request belongs to. The registry is built once at init and is
// read-only afterwards, so it is safe for concurrent use.
package site

import "strings"

// Key identifies one of the three brands served by this deployment.
type Key string

const (
	KeySouArte    Key = "sou-arte"
	KeyClinica    Key = "clinica-sou-luz"
	KeyAssessoria Key = "sou-luz-assessoria"
)

// DefaultHost is the apex hostname of the primary brand. It is used as the
// fallback when a request carries no Host header.
const DefaultHost = "souarteemcuidados.com.br"

// Brand describes the static metadata for one brand. Instances live in the
// package-level registry and are never mutated after startup.
type Brand struct {
	Key           Key
	Name          string   // Canonical brand name, used as image alt text
	Title         string   // Default <title> for the brand's pages
	TitleTemplate string   // fmt template for child-page titles, one %s verb
	Description   string   // Meta description
	OGDescription string   // Shorter description for social cards
	Keywords      []string // Ordered meta keywords
	Icon          string   // Favicon path (also shortcut + apple icon)
	OGImage       string   // Social card image path
	HomePath      string   // Internal path of the brand's home page
}

// brands is the process-wide brand registry.
var brands = map[Key]*Brand{
	KeySouArte: {
		Key:           KeySouArte,
		Name:          "Sou Arte em Cuidados",
		Title:         "Sou Arte em Cuidados | Saúde humanizada e multidisciplinar",
		TitleTemplate: "%s | Sou Arte em Cuidados",
		Description:   "Empresa multinacional em cuidados com a saúde, oferecendo serviços hospitalares, home care, gestão de escalas, suporte administrativo e cursos.",
		OGDescription: "Ciência e sensibilidade em cada atendimento, com atuação hospitalar, domiciliar e administrativa.",
		Keywords: []string{
			"Sou Arte em Cuidados",
			"enfermagem",
			"home care",
			"serviços hospitalares",
			"gestão de escalas",
			"cursos em saúde",
			"cuidados domiciliares",
			"assistência multidisciplinar",
		},
		Icon:     "/static/brand/icon.png",
		OGImage:  "/static/brand/logo-retangular.png",
		HomePath: "/",
	},
	KeyClinica: {
		Key:           KeyClinica,
		Name:          "Clínica Sou Luz",
		Title:         "Clínica Sou Luz | Saúde para a sua família",
		TitleTemplate: "%s | Clínica Sou Luz",
		Description:   "Clínica de reabilitação multiprofissional com atendimento hospitalar, ambulatorial e domiciliar, com equipe integrada para cada etapa da vida.",
		OGDescription: "Reabilitação multiprofissional com equipe integrada para cada etapa da vida.",
		Keywords: []string{
			"Clínica Sou Luz",
			"reabilitação multiprofissional",
			"clínica de reabilitação Porto Velho",
			"fonoaudiologia",
			"fisioterapia",
			"nutrição",
			"psicologia",
			"psicopedagogia",
			"terapia ocupacional",
			"clínica médica",
			"exames audiológicos",
			"home care",
			"atendimento domiciliar",
			"saúde infantil",
		},
		Icon:     "/static/souluz/icone.png",
		OGImage:  "/static/souluz/logo-retangular.png",
		HomePath: "/clinica-sou-luz",
	},
	KeyAssessoria: {
		Key:           KeyAssessoria,
		Name:          "Sou Luz Assessoria",
		Title:         "Sou Luz Assessoria | Gestão e auditoria em saúde",
		TitleTemplate: "%s | Sou Luz Assessoria",
		Description:   "Gestão, auditoria e consultoria em saúde para clínicas e empreendimentos que buscam eficiência, conformidade e resultados.",
		OGDescription: "Gestão, auditoria e consultoria em saúde com foco em eficiência e conformidade.",
		Keywords: []string{
			"Sou Luz Assessoria",
			"gestão em saúde",
			"auditoria em saúde",
			"consultoria em credenciamento",
			"consultoria em saúde",
			"faturamento médico hospitalar",
			"assessoria em saúde",
			"gestão hospitalar",
			"indicadores em saúde",
			"compliance em saúde",
		},
		Icon:     "/static/souluz/icone.png",
		OGImage:  "/static/souluz/logo-retangular.png",
		HomePath: "/sou-luz-assessoria",
	},
}

// HostRoutes maps secondary-brand hostnames to the internal path their root
// request is rewritten to. The primary brand is intentionally absent — its
// root stays at "/".
var HostRoutes = map[string]string{
	"clinicasouluz.com.br":     "/clinica-sou-luz",
	"www.clinicasouluz.com.br": "/clinica-sou-luz",
	"souluzassessoria.com.br":  "/sou-luz-assessoria",
	"www.souluzassessoria.com.br": "/sou-luz-assessoria",
}

// Get returns the brand registered under key. The registry covers every
// value ResolveByHost can return, so lookups by resolved key never miss.
func Get(key Key) *Brand {
	return brands[key]
}

// ResolveByHost maps a hostname (no port) to a brand key. A leading "www."
// is stripped before the lookup; anything outside the two explicit rules
// falls through to the primary brand. Total function, never fails.
func ResolveByHost(hostname string) Key {
	normalized := strings.TrimPrefix(hostname, "www.")

	switch normalized {
	case "clinicasouluz.com.br":
		return KeyClinica
	case "souluzassessoria.com.br":
		return KeyAssessoria
	}

	return KeySouArte
}

// NormalizeHost extracts a bare hostname from a Host header value:
// lowercased, port stripped, falling back to DefaultHost when empty.
// Every subsystem that reads the Host header (edge router, metadata,
// robots, sitemap) goes through this one function so the rules cannot
// drift apart.
func NormalizeHost(hostHeader string) string {
	host := strings.ToLower(strings.TrimSpace(hostHeader))
	if host == "" {
		return DefaultHost
	}
	if idx := strings.IndexByte(host, ':'); idx != -1 {
		host = host[:idx]
	}
	if host == "" {
		return DefaultHost
	}
	return host
}

// IsPortalHost reports whether portal pages may be served on the given
// normalized hostname. Portals are only reachable on the primary brand's
// apex or subdomains, and on localhost for development.
func IsPortalHost(hostname string) bool {
	return strings.HasSuffix(hostname, DefaultHost) || hostname == "localhost"
}

// Protocol returns the URL scheme for a normalized hostname: plain HTTP for
// local development hosts, HTTPS everywhere else. This mirrors the
// deployment reality rather than detecting TLS.
func Protocol(hostname string) string {
	if strings.Contains(hostname, "localhost") {
		return "http"
	}
	return "https"
}

// URL returns the absolute site origin (protocol + hostname) for a
// normalized hostname.
func URL(hostname string) string {
	return Protocol(hostname) + "://" + hostname
}
