package content

import "github.com/kjcma/portfolio/internal/portfolio"

const palashEmail = "palash.s.1401@gmail.com"

func palashPolicy() (portfolio.Policy, error) {
	return portfolio.NewPolicy("All Experience",
		portfolio.TabSpec{
			Key:   "advisory",
			Label: "Tax & Advisory",
			Match: portfolio.CategoryIn("Tax & Compliance", "Costing & MIS"),
		},
		portfolio.TabSpec{
			Key:   "assurance",
			Label: "Audit & Controls",
			Match: portfolio.CategoryIn("Audit & Assurance", "Internal Audit"),
		},
	)
}

var palashRecords = []portfolio.Record{
	{
		ID:        "1",
		Category:  "Audit & Assurance",
		Role:      "Article Assistant",
		Title:     "Statutory & Tax Audits",
		Context:   "10+ Clients across manufacturing, hospitality and other sectors",
		Tags:      []string{"Statutory Audit", "Tax Audit", "Ind AS / AS", "SAs"},
		Narrative: "Executed statutory and tax audits for a diverse portfolio of entities, ensuring compliance with auditing standards, accurate financial reporting and robust documentation for partner review.",
		Metrics: []portfolio.Metric{
			{Value: "10+", Label: "Audit Clients Handled"},
			{Value: "3+", Label: "Years of Articleship"},
			{Value: "End-to-End", Label: "Audit Lifecycle Exposure"},
		},
	},
	{
		ID:        "2",
		Category:  "Internal Audit",
		Role:      "Internal Audit Trainee",
		Title:     "Internal & Process Audits",
		Context:   "Manufacturing Company – Treasury, Marketing & HR",
		Tags:      []string{"Internal Audit", "IFCR", "Process Walkthroughs"},
		Narrative: "Supported and performed internal audits across key business functions, documenting process flows, identifying control gaps and contributing to Internal Financial Control Reports (IFCR) for management and statutory purposes.",
		Metrics: []portfolio.Metric{
			{Value: "3", Label: "Key Functions Reviewed"},
			{Value: "IFCR", Label: "Reports Prepared"},
			{Value: "Controls", Label: "Design & Operating Effectiveness"},
		},
	},
	{
		ID:        "3",
		Category:  "Costing & MIS",
		Role:      "Costing & MIS Support",
		Title:     "TDABC on SAP HANA",
		Context:   "Incense Manufacturing Client",
		Tags:      []string{"SAP HANA", "TDABC", "MIS Reporting"},
		Narrative: "Assisted in developing and implementing a Time-Driven Activity-Based Costing (TDABC) model on SAP HANA, enabling detailed MIS reports for management and supporting more informed cost and pricing decisions.",
		Metrics: []portfolio.Metric{
			{Value: "TDABC", Label: "Costing Framework"},
			{Value: "SAP", Label: "Analytics Layer"},
			{Value: "Insightful", Label: "Management Reporting"},
		},
	},
	{
		ID:        "4",
		Category:  "Tax & Compliance",
		Role:      "Direct Tax Associate",
		Title:     "Direct Tax & TDS Compliance",
		Context:   "100+ Clients – Individuals, Firms, Trusts and Other Entities",
		Tags:      []string{"ITR Filing", "TDS Compliance", "Income Tax Portal"},
		Narrative: "Managed comprehensive direct tax compliance including income tax return preparation, TDS computations and filings, and query handling on the Income Tax portal for a wide client base.",
		Metrics: []portfolio.Metric{
			{Value: "100+", Label: "ITRs & Cases Managed"},
			{Value: "TDS", Label: "End-to-End Compliance"},
			{Value: "Accuracy", Label: "Focus on Error-Free Filing"},
		},
	},
	{
		ID:        "5",
		Category:  "Tax & Compliance",
		Role:      "TP Support",
		Title:     "Transfer Pricing Documentation",
		Context:   "Associated Enterprises & Related Party Transactions",
		Tags:      []string{"Transfer Pricing", "Documentation", "Audit Support"},
		Narrative: "Supported Transfer Pricing compliance by preparing documentation and working papers required for audits and regulatory filings, ensuring alignment with TP regulations and timelines.",
		Metrics: []portfolio.Metric{
			{Value: "TP", Label: "Compliance Support"},
			{Value: "On-Time", Label: "Filing & Documentation"},
			{Value: "Collaborative", Label: "Work with Seniors & Partners"},
		},
	},
}

var palashProfile = portfolio.Profile{
	Title:       "Palash S. | Audit, Assurance & Tax",
	Brand:       "PALASH",
	BrandSuffix: "CA",
	Nav: []portfolio.Link{
		{Label: "Profile", Href: "#about"},
		{Label: "Experience", Href: "#projects"},
		{Label: "Stack", Href: "#skills"},
	},
	Contact: portfolio.Link{Label: "Get in Touch", Href: "mailto:" + palashEmail},
	Hero: portfolio.Hero{
		Lead:     "Audit",
		Emphasis: "Assurance",
		Tail:     "& Tax",
		Summary:  palashSummary,
		Facts: []portfolio.Fact{
			{Icon: "globe", Text: "INDIA / REMOTE"},
			{Text: "EXPERIENCE: 3 YEARS ARTICLESHIP"},
			{Text: "FOCUS: AUDIT / TAX / ANALYTICS"},
		},
	},
	About: portfolio.About{
		Kicker:     "01 / PROFESSIONAL SUMMARY",
		Heading:    "Building a strong base in Audit & Assurance",
		Paragraphs: palashAbout,
		Cards: []portfolio.InfoCard{
			{Heading: "Qualification", Primary: "Chartered Accountant", Secondary: "Institute of Chartered Accountants of India (ICAI)"},
			{Heading: "Articleship", Primary: "Murthy Swamy & Associates LLP", Secondary: "May 2022 – May 2025"},
		},
		Panel: portfolio.Panel{
			Icon:     "shield-check",
			Title:    "Core Areas",
			Subtitle: "AUDIT • TAX • CONTROLS",
			Columns: []portfolio.PanelColumn{
				{Heading: "ASSURANCE", Items: []string{"Statutory Audit", "Tax Audit", "Internal Audit & IFCR"}},
				{Heading: "TAX", Items: []string{"Direct Tax & TDS", "Transfer Pricing Support", "Income Tax Portal"}},
			},
		},
	},
	ProjectsTitle: "Articleship Experience & Key Engagements",
	SkillsTitle:   "Technical & Functional Stack",
	Skills: []portfolio.SkillBlock{
		{Icon: "shield-check", Title: "Audit & Assurance", Items: []string{
			"Statutory & Tax Audit", "Internal Audit & IFCR", "Auditing Standards (SAs)", "Ind AS / AS Application",
		}},
		{Icon: "briefcase", Title: "Direct Tax & Compliance", Items: []string{
			"Income Tax Returns (Individuals, Firms, Trusts)", "TDS Computation & Filing",
			"Transfer Pricing Documentation Support", "Income Tax Portal Operations",
		}},
		{Icon: "layout-template", Title: "Accounting & ERP", Items: []string{
			"Tally Prime", "SAP HANA (Basic)", "Cloud 9 ERP", "General Ledger & Trial Balance Review",
		}},
		{Icon: "database", Title: "Data & Reporting", Items: []string{
			"Advanced Microsoft Excel", "Power BI & Power Query", "MIS & Management Reporting",
			"Data Transformation for Audit Analytics",
		}},
	},
	Footer: portfolio.Footer{
		Headline: "Ready to contribute to Audit & Assurance teams.",
		Email:    palashEmail,
		Phone:    "+91 8861470005",
		Credit:   "© 2025 PALASH S. // AUDIT & ASSURANCE PROFILE",
		Links: []portfolio.Link{
			{Label: "LinkedIn", Href: "https://www.linkedin.com/in/annisdsouza", External: true},
			{Label: "Download CV"},
		},
	},
}
