package content

import (
	"html/template"

	"github.com/kjcma/portfolio/internal/portfolio"
)

// Served at "/1": the same person pitched as a management consultant. The
// tabs only look at the category.
func consultingPolicy() (portfolio.Policy, error) {
	return portfolio.NewPolicy("All Engagements",
		portfolio.TabSpec{
			Key:   "advisory",
			Label: "Mgmt Consulting",
			Match: portfolio.CategoryIn("Transformation", "Optimization"),
		},
		portfolio.TabSpec{
			Key:   "assurance",
			Label: "Risk & Assurance",
			Match: portfolio.CategoryIn("Risk Assurance"),
		},
	)
}

// Display order is the slice order, not the id order.
var consultingRecords = []portfolio.Record{
	{
		ID:        "1",
		Category:  "Transformation",
		Role:      "Lead Consultant",
		Title:     "Strategic Cost Transformation",
		Context:   "Ministry of Defence (PSU) | ₹3,000Cr+ Turnover",
		Tags:      []string{"MySQL", "Power BI", "Driver-Based Budgeting"},
		Narrative: "Spearheaded a financial transformation initiative for a major Defence PSU. Re-engineered legacy cost structures into a dynamic, driver-based Cost Management System, providing leadership with component-level visibility for strategic pricing.",
		Metrics: []portfolio.Metric{
			{Value: "₹30B+", Label: "Asset Scope"},
			{Value: "10%", Label: "Direct Cost Savings"},
			{Value: "100%", Label: "Granularity Achieved"},
		},
	},
	{
		ID:        "4",
		Category:  "Risk Assurance",
		Role:      "Risk Analyst",
		Title:     "Enterprise GRC Framework",
		Context:   "Aerospace & Manufacturing Conglomerate",
		Tags:      []string{"SQL", "ICFR", "SOX Compliance", "RCM"},
		Narrative: "Executed enterprise-wide risk assessments across P2P, O2C, and Fixed Assets. Leveraged SQL for full-population testing (vs. sample testing) to identify control failures, ensuring readiness for internal and statutory audits.",
		Metrics: []portfolio.Metric{
			{Value: "100%", Label: "Population Audited"},
			{Value: "Zero", Label: "Material Weaknesses"},
			{Value: "High", Label: "Control Maturity"},
		},
	},
	{
		ID:        "3",
		Category:  "Transformation",
		Role:      "Process Architect",
		Title:     "Commercial Finance Architecture",
		Context:   "FMCG Leader | 1,500+ Retail Channels",
		Tags:      []string{"TDABC", "Standardization", "Process Mining"},
		Narrative: "Designed the commercial finance architecture for a multi-plant FMCG entity. Standardized BOMs and implemented Time-Driven Activity-Based Costing (TDABC) to uncover profitability leaks across 10+ SKUs and 50 distribution depots.",
		Metrics: []portfolio.Metric{
			{Value: "20%", Label: "Efficiency Gain"},
			{Value: "50", Label: "Depots Optimized"},
			{Value: "Scalable", Label: "Cost Model"},
		},
	},
	{
		ID:        "2",
		Category:  "Optimization",
		Role:      "Ops Consultant",
		Title:     "Operational Excellence (OpEx)",
		Context:   "Aluminium Extrusion Manufacturer",
		Tags:      []string{"Lean Six Sigma", "Value Stream Mapping"},
		Narrative: "Deployed Value Stream Mapping (VSM) to identify bottlenecks in a high-volume manufacturing plant. Implemented material flow accounting to reduce scrap rates and optimize yield performance.",
		Metrics: []portfolio.Metric{
			{Value: "60%", Label: "Scrap Reduction"},
			{Value: "600t", Label: "Monthly Throughput"},
			{Value: "Yield", Label: "Maximized"},
		},
	},
}

var consultingProfile = portfolio.Profile{
	Title:       "Khushi Jain | Financial Transformation & Assurance",
	Brand:       "KS",
	BrandSuffix: "CONSULTING",
	Nav: []portfolio.Link{
		{Label: "Profile", Href: "#about"},
		{Label: "Engagements", Href: "#projects"},
		{Label: "Capabilities", Href: "#skills"},
	},
	Contact: portfolio.Link{Label: "Get in Touch", Href: "mailto:" + khushiEmail},
	Hero: portfolio.Hero{
		Lead:     "Financial",
		Emphasis: "Transformation",
		Tail:     "& Assurance",
		Summary:  consultingSummary,
		Facts: []portfolio.Fact{
			{Icon: "globe", Text: "BANGALORE / REMOTE"},
			{Text: "EXP: 2+ YEARS"},
			{Text: "DOMAIN: MFG / AEROSPACE / FMCG"},
		},
	},
	About: portfolio.About{
		Kicker:     "01 / EXECUTIVE SUMMARY",
		Heading:    "Bridging Finance & Technology",
		Paragraphs: []template.HTML{consultingAbout},
		Cards: []portfolio.InfoCard{
			{Heading: "Qualification", Primary: "CMA", Secondary: "Institute of Management Accountants"},
			{Heading: "Education", Primary: "BBA Finance", Secondary: "University of Mysore"},
		},
		Panel: portfolio.Panel{
			Icon:     "shield-check",
			Title:    "Key Competencies",
			Subtitle: "STRATEGY & RISK",
			Columns: []portfolio.PanelColumn{
				{Heading: "ADVISORY", Items: []string{"Cost Optimization", "Process Re-engineering"}},
				{Heading: "ASSURANCE", Items: []string{"Internal Controls (ICFR)", "Digital Audit (SQL)"}},
			},
		},
	},
	ProjectsTitle: "Key Engagements",
	SkillsTitle:   "Digital & Functional Stack",
	Skills: []portfolio.SkillBlock{
		{Icon: "database", Title: "Digital Audit", Items: []string{"SQL / MySQL", "Full Population Testing", "Automated Validation", "Data Integrity Checks"}},
		{Icon: "bar-chart-3", Title: "Business Intelligence", Items: []string{"Power BI", "DAX", "Strategic Dashboards", "Budget Simulation Models"}},
		{Icon: "layout-template", Title: "Financial Modeling", Items: []string{"TDABC Frameworks", "Cost Driver Mapping", "Variance Analysis", "Pricing Strategy"}},
		{Icon: "briefcase", Title: "GRC & Compliance", Items: []string{"SOX Frameworks", "ICFR & IFC", "Risk Control Matrices", "Process Flowcharts"}},
	},
	Footer: portfolio.Footer{
		Headline: "Ready for high-impact engagements.",
		Email:    khushiEmail,
		Phone:    khushiPhone,
		Credit:   "© 2025 KHUSHI Jain",
		Links: []portfolio.Link{
			{Label: "LinkedIn"},
			{Label: "Download CV"},
		},
	},
}
