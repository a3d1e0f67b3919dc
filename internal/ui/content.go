package ui

// Static page copy.

const (
	studioName    = "StudioFolio"
	studioTagline = "Residential architecture and interiors, West Vancouver"

	heroTitle   = "Quiet Luxury"
	heroSubline = "Homes shaped by light, material and landscape."
	heroImage   = "/projects/king_georges_way_830/king-georges-way-830-west-vancouver-9.avif"

	introHeading = "The Studio"
	introBody    = "We craft spaces that resonate with their environment. Rooted in West " +
		"Vancouver, our approach marries modern minimalism with timeless luxury. " +
		"Each project is a dialogue between light, material and landscape, " +
		"designed to elevate the human experience. From concept to completion, " +
		"we maintain an uncompromising standard."

	impactHeading = "A Decade of Design"
	impactBody    = "Our methodology is rooted in collaboration and rigorous analysis. " +
		"We create spaces that are uniquely yours through deep listening."

	narrativeHeading = "The Art of Living"
	narrativeQuote   = "\"Spaces should be felt as much as they are seen, approaching every residence as a living sculpture.\""
	narrativeBody    = "We believe that luxury is not found in excess, but in the precision " +
		"of the detail and the resonance of the material. Each project translates " +
		"personal histories into spatial poetry that evolves over generations."
	narrativeImage = "/projects/king_georges_way_830/king-georges-way-830-west-vancouver-2.avif"

	detailingHeading = "The Poetry of Detail"
	detailingBody    = "Luxury is a quiet language spoken through the intersections of stone, " +
		"wood and light. We focus on the smallest moments: the way a shadow falls " +
		"across a mitred edge, the tactile resistance of a hand-finished surface.\n\n" +
		"Our approach treats every junction as an architectural statement, so the " +
		"structural integrity of the home is matched by its sensory resonance."

	contactHeading = "Begin a Conversation"
	contactBody    = "Tell us about your site, your timeline and how you want to live. " +
		"We read every inquiry personally."

	inquirySent   = "Inquiry sent. We will respond within 48 hours."
	inquiryFailed = "Delivery failed. Please try again."
)

type stat struct {
	value string
	label string
}

// Fixed studio figures; the project count is taken from the catalog.
var studioStats = []stat{
	{"12", "Design Awards"},
	{"10", "Years Experience"},
}

type pillar struct {
	number      string
	title       string
	description string
}

var pillars = []pillar{
	{
		number:      "I",
		title:       "Timelessness",
		description: "Creating spaces that transcend eras through enduring aesthetic choices and structural integrity. We design for the future by honoring the past.",
	},
	{
		number:      "II",
		title:       "Materiality",
		description: "A deep reverence for the raw beauty and tactile quality of natural elements. We select materials that age with grace: stone, timber and metal.",
	},
	{
		number:      "III",
		title:       "Human Centricity",
		description: "Designing with the inhabitant at the center. We choreograph movement and light to ensure harmony between the human experience and architectural form.",
	},
}
