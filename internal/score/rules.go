package score

// Tables are the scoring keyword lists, overridable from the rules YAML
// file just like the filter tables.
type Tables struct {
	// SeniorityPenalty is broader than the filter's hard-reject list and
	// also scans descriptions; it fires at most once.
	SeniorityPenalty []string `yaml:"seniority_penalty"`
	// LocationRestricted marks region-locked postings.
	LocationRestricted []string `yaml:"location_restricted"`
	// LanguagePatterns mark non-English job markets.
	LanguagePatterns []string `yaml:"language_patterns"`
	// TechStack entries each add a fixed bonus, capped overall.
	TechStack []string `yaml:"tech_stack"`
	// GlobalRemote qualifies the remote boost.
	GlobalRemote []string `yaml:"global_remote"`
	// TopTierCompanies and MidTierCompanies match by company-name substring.
	TopTierCompanies []string `yaml:"top_tier_companies"`
	MidTierCompanies []string `yaml:"mid_tier_companies"`
}

// DefaultTables returns the built-in scoring tables.
func DefaultTables() Tables {
	return Tables{
		SeniorityPenalty: []string{
			"senior", "sr.", "lead", "principal", "staff", "architect",
			"director", "head of", "vp", "vice president", "chief",
			"expert", "5+ years", "5 years", "6+ years", "7+ years", "8+ years",
			"experienced", "seasoned",
		},

		LocationRestricted: []string{
			// Germany-specific
			"germany", "berlin", "munich", "frankfurt", "hamburg", "cologne",
			"deutschsprachig", "deutsch", "german language",

			// EU-specific
			"europe only", "eu only", "european union", "eu citizens",
			"eu member states", "schengen",

			// Other location restrictions
			"us only", "usa only", "uk only", "must be located",
			"must be based", "visa sponsorship required", "work permit required",
			"must reside", "local candidates only",
		},

		LanguagePatterns: []string{
			// German gender markers
			"(m/w/d)", "(w/m/d)", "(m/f/d)", "(gn)", "(m/w/x)",

			// French
			"développeur", "développeuse", "ingénieur", "ingénieure",
			"français requis", "maîtrise du français", "parlant français",

			// Spanish
			"desarrollador", "desarrolladora", "ingeniero", "ingeniera",
			"español requerido", "dominio del español", "hablante de español",

			// Portuguese
			"desenvolvedor", "desenvolvedora", "engenheiro", "engenheira",
			"português obrigatório", "fluente em português",

			// Italian
			"sviluppatore", "sviluppatrice", "ingegnere",
			"italiano richiesto", "madrelingua italiana",

			// Dutch
			"ontwikkelaar", "nederlandstalig", "nederlands vereist",

			// Polish
			"programista", "inżynier", "język polski wymagany",

			// General non-English indicators
			"native speaker required", "mother tongue", "madrelingua",
			"langue maternelle", "lengua materna",
		},

		TechStack: []string{
			"react", "node", "python", "javascript", "typescript",
			"aws", "docker", "kubernetes",
			// Backend & frameworks
			"java", "spring", "spring boot", "golang", "fastapi", "express", "nestjs", "dotnet", "c#",
			// Frontend
			"nextjs", "next.js", "angular", "vue",
			// Databases
			"postgresql", "mysql", "redis",
			// Architecture & APIs
			"graphql", "microservices", "rest api",
			// Mobile
			"flutter", "kotlin", "swift", "react native",
		},

		GlobalRemote: []string{
			"worldwide",
			"anywhere",
			"global",
			"work from anywhere",
			"location independent",
		},

		TopTierCompanies: []string{
			"stripe", "airbnb", "coinbase", "figma", "datadog", "dropbox",
			"plaid", "lyft", "asana", "grammarly", "brex", "scaleai",
			"webflow", "cred",
			"amazon", "nvidia", "qualcomm", "adobe", "paypal", "intel",
			"servicenow", "visa", "mastercard",
		},

		MidTierCompanies: []string{
			"carta", "gusto", "calendly", "coursera", "hackerrank",
			"zoox", "shieldai", "rackspace", "ciandt", "houzz",
			"bosch", "siemens", "dell", "ericsson", "infineon", "capgemini",
			"schneider", "honeywell", "nokia", "western digital", "publicis",
		},
	}
}
