package filter

// Rules are the eligibility keyword tables. They ship with defaults below
// and can be overridden from the rules YAML file, so tuning the lists never
// touches control flow.
type Rules struct {
	// TechnicalKeywords is a whitelist: a title must contain at least one.
	TechnicalKeywords []string `yaml:"technical_keywords"`
	// SeniorityMarkers hard-reject on title match.
	SeniorityMarkers []string `yaml:"seniority_markers"`
	// ExcludeKeywords reject on title+company match (not description).
	ExcludeKeywords []string `yaml:"exclude_keywords"`
	// IndiaLocations whitelist in-office locations.
	IndiaLocations []string `yaml:"india_locations"`
	// GlobalRemoteKeywords qualify a remote posting as truly worldwide.
	GlobalRemoteKeywords []string `yaml:"global_remote_keywords"`
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() Rules {
	return Rules{
		TechnicalKeywords: []string{
			// Core roles (must have one of these)
			"developer", "programmer", "coder", "software",

			// Specializations
			"frontend", "backend", "full stack", "fullstack", "full-stack",
			"mobile", "android", "ios", "web developer", "embedded", "firmware",

			// SDE variations
			"sde", "sde1", "sde2", "sde3", "sde-1", "sde-2", "sde-3", "sde 1", "sde 2",

			// Specific engineering roles
			"devops", "devsecops", "sre", "site reliability",
			"data engineer", "ml engineer", "machine learning engineer", "ai engineer",
			"cloud engineer", "platform engineer", "systems engineer",
			"infrastructure engineer", "security engineer",
			"blockchain developer", "web3 developer",

			// QA/Testing (technical)
			"qa", "qa engineer", "qa automation", "test engineer", "sdet",
			"automation engineer", "test automation", "testing",

			// Allowed specific roles
			"forward deployed",

			// Explicit technical terms
			"software development", "software engineering", "application developer",
			"app developer", "game developer",

			// Languages & frameworks count as technical
			"react", "angular", "vue", "node", "nodejs", "express",
			"python", "django", "flask", "java", "spring", "kotlin",
			"javascript", "typescript", "c++", "golang", "rust", "ruby", "rails",
			"php", "laravel", "dotnet", ".net", "c#", "swift", "flutter",

			// Technologies count as technical
			"api", "rest", "graphql", "microservices", "kubernetes", "docker",
			"aws", "azure", "gcp", "cloud", "serverless",
			"database", "sql", "nosql", "mongodb", "postgresql", "redis",
			"blockchain", "smart contract", "solidity", "web3",
		},

		// "sr." not bare "sr": a bare substring would reject every SRE
		// title, which the technical whitelist explicitly allows.
		SeniorityMarkers: []string{
			"senior", "sr.", "staff", "principal", "lead", "architect",
			"director", "head", "vp", "chief",
			"engineer iii", "engineer iv", "engineer 3", "engineer 4",
			"manager", "engineering manager", "product manager",
			"project manager", "program manager", "delivery manager",
		},

		ExcludeKeywords: []string{
			// Content & Marketing
			"writer", "content writer", "content creator", "copywriter", "editor",
			"marketing", "seo", "sem", "social media", "brand manager",
			"influencer", "blogger", "journalist",
			"marketing intern", "marketing internship",
			"content creation", "digital marketing", "social media manager",

			// Sales & Business
			"sales", "account executive", "business development", "sales representative",
			"account manager", "relationship manager",
			"business development intern", "sales intern",

			// Design (non-engineering)
			"graphic designer", "ui/ux designer", "ux designer", "ui designer",
			"visual designer", "illustrator", "animator", "video editor",
			"product designer",

			// Management (non-technical)
			"product manager", "project manager", "program manager", "portfolio manager",
			"operations manager", "general manager", "office manager",
			"scrum master", "agile coach", "delivery manager",

			// Support & Admin
			"customer support", "customer service", "customer success",
			"technical support", "help desk", "support specialist",
			"data entry", "administrative", "receptionist", "assistant",

			// HR & Recruiting
			"recruiter", "talent acquisition", "hr", "human resources",
			"hr manager", "people operations", "talent partner",
			"hr intern", "hr internship",

			// Finance & Legal
			"accountant", "bookkeeper", "financial analyst", "finance",
			"controller", "treasurer", "auditor", "audit", "compliance",
			"legal", "lawyer", "attorney", "paralegal",
			"investment analyst", "investment", "equity analyst", "portfolio",
			"wealth management", "asset management", "trading", "trader",

			// Analysis (non-technical)
			"business analyst", "data analyst", "market research",
			"strategy analyst", "consultant", "advisor", "consulting",

			// Data annotation/labeling
			"rater", "annotator", "labeler", "data labeling", "data annotation",
			"moderator", "reviewer", "evaluator",

			// Campus & events
			"ambassador", "campus ambassador", "student ambassador", "brand ambassador",
			"career fair", "job fair", "hiring event", "recruitment event",
			"event", "competition", "hackathon organizer", "campus representative",
			"fellowship", "campus program", "student program",

			// Other
			"community manager", "event coordinator", "trainer", "instructor",
			"teacher", "tutor", "coach",
		},

		IndiaLocations: []string{
			"india", "bangalore", "bengaluru", "delhi", "new delhi", "noida",
			"gurgaon", "gurugram", "mumbai", "pune", "hyderabad", "chennai",
			"kolkata", "ahmedabad", "chandigarh", "indore", "jaipur", "kochi",
			"trivandrum", "thiruvananthapuram", "coimbatore",
		},

		GlobalRemoteKeywords: []string{
			"worldwide",
			"anywhere",
			"global",
			"work from anywhere",
			"location independent",
		},
	}
}
