package source

// Board rosters. These are data, not logic: adding a company means adding
// a line here (or for Workday, one verified tenant/host/site triple).

var greenhouseBoards = []string{
	"stripe", "airbnb", "coinbase", "figma", "datadog", "dropbox",
	"plaid", "lyft", "asana", "grammarly", "brex", "webflow",
	"carta", "gusto", "calendly", "coursera",
}

var leverBoards = []string{
	"ramp", "zoox", "shield-ai", "kraken", "attentive", "voleon",
}

// smartRecruitersCompany is an API company identifier plus the display
// name used on postings.
type smartRecruitersCompany struct {
	ID   string
	Name string
}

var smartRecruitersCompanies = []smartRecruitersCompany{
	{ID: "BoschGroup", Name: "Bosch"},
	{ID: "Visa", Name: "Visa"},
	{ID: "ServiceNow", Name: "ServiceNow"},
	{ID: "PublicisGroupe", Name: "Publicis"},
	{ID: "WesternDigital", Name: "Western Digital"},
	{ID: "Capgemini", Name: "Capgemini"},
}

// workdayCompany points at one tenant's CXS job feed. Host varies per
// tenant (wd1/wd5/wd12); triples below were verified by probing.
type workdayCompany struct {
	Name   string
	Tenant string
	Site   string
	Host   string
}

var workdayCompanies = []workdayCompany{
	{Name: "Intel", Tenant: "intel", Site: "External", Host: "wd1"},
	{Name: "PayPal", Tenant: "paypal", Site: "jobs", Host: "wd1"},
	{Name: "Nvidia", Tenant: "nvidia", Site: "NVIDIAExternalCareerSite", Host: "wd5"},
	{Name: "Adobe", Tenant: "adobe", Site: "external_experienced", Host: "wd5"},
	{Name: "Dell", Tenant: "dell", Site: "External", Host: "wd1"},
	{Name: "Mastercard", Tenant: "mastercard", Site: "CorporateCareers", Host: "wd1"},
	{Name: "HP", Tenant: "hp", Site: "ExternalCareerSite", Host: "wd5"},
	{Name: "Salesforce", Tenant: "salesforce", Site: "External_Career_Site", Host: "wd12"},
	{Name: "Visa", Tenant: "visa", Site: "External", Host: "wd1"},
	{Name: "Autodesk", Tenant: "autodesk", Site: "External", Host: "wd1"},
	{Name: "VMware", Tenant: "vmware", Site: "VMware_Careers", Host: "wd5"},
	{Name: "CrowdStrike", Tenant: "crowdstrike", Site: "External", Host: "wd12"},
	{Name: "Palo Alto Networks", Tenant: "paloaltonetworks", Site: "External", Host: "wd12"},
	{Name: "Electronic Arts", Tenant: "ea", Site: "External_Career_Site", Host: "wd5"},
	{Name: "Micron", Tenant: "micron", Site: "External", Host: "wd1"},
	{Name: "Morgan Stanley", Tenant: "ms", Site: "External", Host: "wd5"},
}
