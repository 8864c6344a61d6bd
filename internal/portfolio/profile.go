package portfolio

import "html/template"

// Link is an anchor in the nav bar or footer. A link without Href renders
// as an inert button, the way the pages show not-yet-published links.
type Link struct {
	Label    string
	Href     string
	Download bool
	External bool
}

// Fact is a short line in the hero sidebar, optionally led by an icon.
type Fact struct {
	Icon string
	Text string
}

// Hero is the page banner. The three title lines are rendered with the
// middle one emphasised.
type Hero struct {
	Lead     string
	Emphasis string
	Tail     string
	Summary  template.HTML
	Facts    []Fact
}

// InfoCard is a small labelled box in the about section.
type InfoCard struct {
	Heading   string
	Primary   string
	Secondary string
}

// PanelColumn is one column of the dark about panel.
type PanelColumn struct {
	Heading string
	Items   []string
}

// Panel is the dark highlight box beside the about text.
type Panel struct {
	Icon     string
	Title    string
	Subtitle string
	Columns  []PanelColumn
}

// About is the profile section.
type About struct {
	Kicker     string
	Heading    string
	Paragraphs []template.HTML
	Cards      []InfoCard
	Panel      Panel
}

// SkillBlock is one card of the skills grid.
type SkillBlock struct {
	Icon  string
	Title string
	Items []string
}

// Footer holds the closing call to action and contact details.
type Footer struct {
	Headline string
	Email    string
	Phone    string
	Credit   string
	Links    []Link
}

// Profile is the static presentation content of a page.
type Profile struct {
	Title         string
	Brand         string
	BrandSuffix   string
	Nav           []Link
	Contact       Link
	Hero          Hero
	About         About
	ProjectsTitle string
	SkillsTitle   string
	Skills        []SkillBlock
	Footer        Footer
}
