package content

import (
	"html/template"

	"github.com/kjcma/portfolio/internal/portfolio"
)

const (
	khushiEmail = "s.khushi.chrd@gmail.com"
	khushiPhone = "+91 9972070005"
)

// Served at "/". The cost and risk tabs look at both the category and the
// tags, so a record tagged TDABC counts as cost work whatever its category.
func khushiPolicy() (portfolio.Policy, error) {
	return portfolio.NewPolicy("All Systems",
		portfolio.TabSpec{
			Key:   "cost",
			Label: "Cost",
			Match: portfolio.AnyOf(portfolio.CategoryContains("cost"), portfolio.TagContains("tdabc", "value")),
		},
		portfolio.TabSpec{
			Key:   "risk",
			Label: "Risk",
			Match: portfolio.AnyOf(portfolio.CategoryContains("risk"), portfolio.TagContains("sox", "icfr")),
		},
	)
}

var khushiRecords = []portfolio.Record{
	{
		ID:        "1",
		Category:  "Structural Costing",
		Title:     "Defence PSU Cost Architecture",
		Context:   "Ministry of Defence | Manufacturing",
		Tags:      []string{"MySQL", "Power BI", "ABC Principles"},
		Narrative: "Led a comprehensive cost restructuring initiative across four manufacturing complexes. Redesigned legacy accounting systems into a driver-based Cost Management System, enabling granular component-level visibility.",
		Metrics: []portfolio.Metric{
			{Value: "10%", Label: "Cost Savings"},
			{Value: "3000cr", Label: "Turnover Scope"},
			{Value: "100%", Label: "Visibility"},
		},
	},
	{
		ID:        "2",
		Category:  "Process Engineering",
		Title:     "Aluminium Extrusion Yield Opt.",
		Context:   "Extrusion Industry | Manufacturing",
		Tags:      []string{"Value Stream Mapping", "Material Flow CA"},
		Narrative: "Conducted end-to-end Value Stream Mapping for a 600 ton/month plant. Implemented inflow-outflow measurement systems to standardize loss tracking and enhance traceability.",
		Metrics: []portfolio.Metric{
			{Value: "60%", Label: "Scrap Reduction"},
			{Value: "600t", Label: "Monthly Vol"},
			{Value: "High", Label: "Yield Impact"},
		},
	},
	{
		ID:        "3",
		Category:  "System Design",
		Title:     "FMCG Product Costing",
		Context:   "Incense & Fragrance | FMCG",
		Tags:      []string{"TDABC", "BOM Standardization", "Excel"},
		Narrative: "Designed a complete product costing architecture across 3 plants and 50 depots. Implemented Time-Driven Activity-Based Costing (TDABC) for granular SKU and machine-level cost analysis.",
		Metrics: []portfolio.Metric{
			{Value: "20%", Label: "Utilization Lift"},
			{Value: "1500+", Label: "Retail Channels"},
			{Value: "10+", Label: "SKU Structures"},
		},
	},
	{
		ID:        "4",
		Category:  "Risk Control",
		Title:     "Enterprise Risk Framework",
		Context:   "Aerospace & Manufacturing",
		Tags:      []string{"SQL", "ICFR", "SOX Frameworks"},
		Narrative: "Conducted enterprise-wide risk assessments across P2P, O2C, and Fixed Assets. Performed SQL-based full-population transaction testing to detect control failures and policy deviations.",
		Metrics: []portfolio.Metric{
			{Value: "100%", Label: "Population Test"},
			{Value: "Zero", Label: "Major Gaps"},
			{Value: "High", Label: "Compliance"},
		},
	},
}

var khushiProfile = portfolio.Profile{
	Title:       "Khushi S. | Financial Control Architecture",
	Brand:       "KJ",
	BrandSuffix: "CMA",
	Nav: []portfolio.Link{
		{Label: "Profile", Href: "#about"},
		{Label: "Projects", Href: "#projects"},
		{Label: "Competencies", Href: "#skills"},
	},
	Contact: portfolio.Link{Label: "Contact", Href: "mailto:" + khushiEmail},
	Hero: portfolio.Hero{
		Lead:     "Financial",
		Emphasis: "Control",
		Tail:     "Architecture",
		Summary:  khushiSummary,
		Facts: []portfolio.Fact{
			{Text: "LOC: KARNATAKA, INDIA"},
			{Text: "EXP: 2+ YEARS"},
			{Text: "SPECIALTY: COST & RISK"},
		},
	},
	About: portfolio.About{
		Kicker:     "01 / PROFILE",
		Heading:    "The Dual Lens Approach",
		Paragraphs: []template.HTML{khushiAbout},
		Cards: []portfolio.InfoCard{
			{Heading: "Education", Primary: "CMA, Inst. of Management Accountants", Secondary: "2025"},
			{Heading: "Degree", Primary: "BBA Finance, Mysore Univ.", Secondary: "2017 - 2020"},
		},
		Panel: portfolio.Panel{
			Icon:     "database",
			Title:    "Current Role",
			Subtitle: "B S RAVIKUMAR & ASSOCIATES",
			Columns: []portfolio.PanelColumn{
				{Heading: "FOCUS", Items: []string{"Cost Consulting"}},
				{Heading: "FOCUS", Items: []string{"Internal Audit"}},
			},
		},
	},
	ProjectsTitle: "Selected Works",
	SkillsTitle:   "Technical Specs",
	Skills: []portfolio.SkillBlock{
		{Icon: "database", Title: "Data Architecture", Items: []string{"MySQL / SQL", "Advanced Excel", "Power Query", "Data Modeling"}},
		{Icon: "layout-template", Title: "Visualization", Items: []string{"Power BI Dashboards", "Tableau", "Risk Heatmaps", "Interactive Reporting"}},
		{Icon: "bar-chart-3", Title: "Cost Engineering", Items: []string{"TDABC Frameworks", "Value Stream Mapping", "Cost Driver Mapping", "Variance Analysis"}},
		{Icon: "shield-check", Title: "Governance", Items: []string{"ICFR & SOX", "Risk Control Matrices", "SOP Development", "Audit Readiness"}},
	},
	Footer: portfolio.Footer{
		Headline: "Let's build something efficient.",
		Email:    khushiEmail,
		Phone:    khushiPhone,
		Credit:   "PORTFOLIO VERSION 2025.1",
		Links: []portfolio.Link{
			{Label: "LinkedIn", Href: "#"},
			{Label: "Download Resume", Href: "/resume.pdf", Download: true},
		},
	},
}
