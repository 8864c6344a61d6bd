package content

import "html/template"

// Longer copy lives here so the page definitions stay readable.
var (
	khushiSummary = template.HTML(`Khushi S. is a CMA-certified consultant architecting resilient financial systems.
	Bridging the gap between <span class="border-b border-orange-500 text-neutral-900">cost efficiency</span> and
	<span class="border-b border-orange-500 text-neutral-900">risk governance</span>.`)

	khushiAbout = template.HTML(`My methodology treats financial data as structural components. Whether designing
	driver-based cost systems for defense sectors or fortifying internal controls for aerospace manufacturers,
	I apply engineering precision to financial reporting.`)

	consultingSummary = template.HTML(`Khushi Jain is a <strong>Management Consultant</strong> &amp; CMA specializing in
	data-driven cost architecture and GRC frameworks for high-scale manufacturing &amp; defence sectors.`)

	consultingAbout = template.HTML(`I operate at the intersection of <strong>Operational Finance</strong> and
	<strong>Digital Assurance</strong>. Unlike traditional auditors, I leverage SQL and Power BI to analyze full data
	populations, ensuring robust governance. Unlike traditional accountants, I design forward-looking cost models that
	drive strategic pricing and profitability.`)

	palashSummary = template.HTML(`Palash S. is a newly qualified <strong>Chartered Accountant</strong> (ICAI) with
	3 years of articleship experience, specialising in <strong>Statutory Audit, Internal Audit, Direct Taxation and
	Transfer Pricing</strong>, with hands-on exposure to SAP HANA and TDABC-based costing models.`)

	palashAbout = []template.HTML{
		`I trained at a mid-sized CA firm with exposure across <strong>statutory audit, internal audit, direct tax
	compliance and transfer pricing</strong>. My work spans end-to-end audit execution, income tax and TDS filings for
	a large client base, and supporting management through <strong>TDABC models on SAP HANA</strong> and
	<strong>data-driven MIS reports</strong>.`,
		`Alongside core audit work, I am comfortable working with <strong>Tally Prime, SAP HANA, Cloud 9 ERP,
	Power BI and Advanced Excel</strong>, enabling me to bridge traditional assurance with modern data and reporting
	tools.`,
	}
)
