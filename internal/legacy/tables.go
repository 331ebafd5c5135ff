package legacy

// legacyServices maps service tokens from the old site's URLs to current
// service slugs. Keys are lower-case and hyphenated.
var legacyServices = map[string]string{
	"forensic-economist":           "economic-loss-assessment",
	"forensic-economics":           "economic-loss-assessment",
	"forensic-economic-analysis":   "economic-loss-assessment",
	"economist":                    "economic-loss-assessment",
	"economic-expert":              "economic-loss-assessment",
	"economic-expert-witness":      "economic-loss-assessment",
	"economic-damages":             "economic-loss-assessment",
	"economic-loss":                "economic-loss-assessment",
	"economic-loss-analysis":       "economic-loss-assessment",
	"lost-earnings":                "economic-loss-assessment",
	"lost-wages":                   "economic-loss-assessment",
	"wrongful-death":               "wrongful-death-economics",
	"wrongful-death-economist":     "wrongful-death-economics",
	"personal-injury":              "personal-injury-economics",
	"personal-injury-economist":    "personal-injury-economics",
	"medical-malpractice":          "personal-injury-economics",
	"vocational-expert":            "vocational-evaluation",
	"vocational-evaluation":        "vocational-evaluation",
	"vocational-rehabilitation":    "vocational-evaluation",
	"vocational-economic-analysis": "vocational-evaluation",
	"earning-capacity":             "earning-capacity-assessment",
	"earning-capacity-evaluation":  "earning-capacity-assessment",
	"life-care-planner":            "life-care-planning",
	"life-care-planning":           "life-care-planning",
	"life-care-plan":               "life-care-planning",
	"business-valuation":           "business-valuation",
	"business-valuation-expert":    "business-valuation",
	"business-appraisal":           "business-valuation",
	"commercial-damages":           "commercial-damages",
	"lost-profits":                 "commercial-damages",
	"employment-litigation":        "employment-litigation",
	"employment-discrimination":    "employment-litigation",
	"household-services":           "household-services-valuation",
	"pension-valuation":            "pension-valuation",
}

// servicePhrases are the legacy service phrases that may trail a city page
// slug (e.g. laredo-tx-tx-vocational-expert). Longer phrases come first so
// "wrongful-death-economist" wins over "economist".
var servicePhrases = []string{
	"vocational-economic-analysis",
	"forensic-economic-analysis",
	"earning-capacity-evaluation",
	"personal-injury-economist",
	"business-valuation-expert",
	"vocational-rehabilitation",
	"wrongful-death-economist",
	"economic-expert-witness",
	"vocational-evaluation",
	"life-care-planner",
	"forensic-economist",
	"business-valuation",
	"vocational-expert",
	"economic-expert",
	"economist",
}

type place struct {
	State string
	City  string
}

// metroAreas maps a metro-region slug to the city page that represents it.
var metroAreas = map[string]place{
	"philadelphia-metro":   {State: "pennsylvania", City: "philadelphia"},
	"greater-philadelphia": {State: "pennsylvania", City: "philadelphia"},
	"delaware-valley":      {State: "pennsylvania", City: "philadelphia"},
	"lehigh-valley":        {State: "pennsylvania", City: "allentown"},
	"pittsburgh-metro":     {State: "pennsylvania", City: "pittsburgh"},
	"south-jersey":         {State: "new-jersey", City: "camden"},
	"north-jersey":         {State: "new-jersey", City: "newark"},
	"central-jersey":       {State: "new-jersey", City: "trenton"},
	"jersey-shore":         {State: "new-jersey", City: "toms-river"},
	"new-york-metro":       {State: "new-york", City: "new-york-city"},
	"nyc":                  {State: "new-york", City: "new-york-city"},
	"long-island":          {State: "new-york", City: "hempstead"},
	"dc-metro":             {State: "district-of-columbia", City: "washington"},
	"baltimore-metro":      {State: "maryland", City: "baltimore"},
	"greater-boston":       {State: "massachusetts", City: "boston"},
	"chicagoland":          {State: "illinois", City: "chicago"},
	"dfw":                  {State: "texas", City: "dallas"},
	"greater-houston":      {State: "texas", City: "houston"},
	"bay-area":             {State: "california", City: "san-francisco"},
	"inland-empire":        {State: "california", City: "riverside"},
	"south-florida":        {State: "florida", City: "miami"},
	"tampa-bay":            {State: "florida", City: "tampa"},
	"twin-cities":          {State: "minnesota", City: "minneapolis"},
	"research-triangle":    {State: "north-carolina", City: "raleigh"},
	"hampton-roads":        {State: "virginia", City: "norfolk"},
	"puget-sound":          {State: "washington", City: "seattle"},
}

// counties maps a county slug to the county seat (or largest city).
var counties = map[string]place{
	"bucks-county":       {State: "pennsylvania", City: "doylestown"},
	"montgomery-county":  {State: "pennsylvania", City: "norristown"},
	"chester-county":     {State: "pennsylvania", City: "west-chester"},
	"delaware-county":    {State: "pennsylvania", City: "media"},
	"lancaster-county":   {State: "pennsylvania", City: "lancaster"},
	"allegheny-county":   {State: "pennsylvania", City: "pittsburgh"},
	"camden-county":      {State: "new-jersey", City: "camden"},
	"burlington-county":  {State: "new-jersey", City: "mount-holly"},
	"gloucester-county":  {State: "new-jersey", City: "woodbury"},
	"bergen-county":      {State: "new-jersey", City: "hackensack"},
	"essex-county":       {State: "new-jersey", City: "newark"},
	"middlesex-county":   {State: "new-jersey", City: "new-brunswick"},
	"monmouth-county":    {State: "new-jersey", City: "freehold"},
	"ocean-county":       {State: "new-jersey", City: "toms-river"},
	"morris-county":      {State: "new-jersey", City: "morristown"},
	"atlantic-county":    {State: "new-jersey", City: "atlantic-city"},
	"new-castle-county":  {State: "delaware", City: "wilmington"},
	"westchester-county": {State: "new-york", City: "white-plains"},
	"kings-county":       {State: "new-york", City: "brooklyn"},
	"cook-county":        {State: "illinois", City: "chicago"},
	"los-angeles-county": {State: "california", City: "los-angeles"},
	"orange-county":      {State: "california", City: "santa-ana"},
	"fairfax-county":     {State: "virginia", City: "fairfax"},
	"harris-county":      {State: "texas", City: "houston"},
	"miami-dade-county":  {State: "florida", City: "miami"},
}

// ServiceSlug returns the current service slug for a legacy token.
func ServiceSlug(token string) (string, bool) {
	s, ok := legacyServices[token]
	return s, ok
}

// LegacyServices returns a copy of the legacy token table.
func LegacyServices() map[string]string {
	out := make(map[string]string, len(legacyServices))
	for k, v := range legacyServices {
		out[k] = v
	}
	return out
}
