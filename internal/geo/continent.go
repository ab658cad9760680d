// Package geo maps country names to continents for the per-user travel
// statistics. The table covers the country names the Google geocoding API
// returns in English; unknown names resolve to "" and are not counted.
package geo

import "strings"

const (
	Africa       = "Africa"
	Antarctica   = "Antarctica"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	Oceania      = "Oceania"
	SouthAmerica = "South America"
)

var continentByCountry = map[string]string{
	"afghanistan":                      Asia,
	"albania":                          Europe,
	"algeria":                          Africa,
	"andorra":                          Europe,
	"angola":                           Africa,
	"antarctica":                       Antarctica,
	"argentina":                        SouthAmerica,
	"armenia":                          Asia,
	"australia":                        Oceania,
	"austria":                          Europe,
	"azerbaijan":                       Asia,
	"bahamas":                          NorthAmerica,
	"bahrain":                          Asia,
	"bangladesh":                       Asia,
	"barbados":                         NorthAmerica,
	"belarus":                          Europe,
	"belgium":                          Europe,
	"belize":                           NorthAmerica,
	"benin":                            Africa,
	"bhutan":                           Asia,
	"bolivia":                          SouthAmerica,
	"bosnia and herzegovina":           Europe,
	"botswana":                         Africa,
	"brazil":                           SouthAmerica,
	"brunei":                           Asia,
	"bulgaria":                         Europe,
	"burkina faso":                     Africa,
	"burundi":                          Africa,
	"cambodia":                         Asia,
	"cameroon":                         Africa,
	"canada":                           NorthAmerica,
	"cape verde":                       Africa,
	"central african republic":         Africa,
	"chad":                             Africa,
	"chile":                            SouthAmerica,
	"china":                            Asia,
	"colombia":                         SouthAmerica,
	"comoros":                          Africa,
	"costa rica":                       NorthAmerica,
	"croatia":                          Europe,
	"cuba":                             NorthAmerica,
	"cyprus":                           Europe,
	"czechia":                          Europe,
	"czech republic":                   Europe,
	"democratic republic of the congo": Africa,
	"denmark":                          Europe,
	"djibouti":                         Africa,
	"dominica":                         NorthAmerica,
	"dominican republic":               NorthAmerica,
	"ecuador":                          SouthAmerica,
	"egypt":                            Africa,
	"el salvador":                      NorthAmerica,
	"equatorial guinea":                Africa,
	"eritrea":                          Africa,
	"estonia":                          Europe,
	"eswatini":                         Africa,
	"ethiopia":                         Africa,
	"fiji":                             Oceania,
	"finland":                          Europe,
	"france":                           Europe,
	"gabon":                            Africa,
	"gambia":                           Africa,
	"georgia":                          Asia,
	"germany":                          Europe,
	"ghana":                            Africa,
	"greece":                           Europe,
	"greenland":                        NorthAmerica,
	"grenada":                          NorthAmerica,
	"guatemala":                        NorthAmerica,
	"guinea":                           Africa,
	"guinea-bissau":                    Africa,
	"guyana":                           SouthAmerica,
	"haiti":                            NorthAmerica,
	"honduras":                         NorthAmerica,
	"hungary":                          Europe,
	"iceland":                          Europe,
	"india":                            Asia,
	"indonesia":                        Asia,
	"iran":                             Asia,
	"iraq":                             Asia,
	"ireland":                          Europe,
	"israel":                           Asia,
	"italy":                            Europe,
	"ivory coast":                      Africa,
	"jamaica":                          NorthAmerica,
	"japan":                            Asia,
	"jordan":                           Asia,
	"kazakhstan":                       Asia,
	"kenya":                            Africa,
	"kiribati":                         Oceania,
	"kosovo":                           Europe,
	"kuwait":                           Asia,
	"kyrgyzstan":                       Asia,
	"laos":                             Asia,
	"latvia":                           Europe,
	"lebanon":                          Asia,
	"lesotho":                          Africa,
	"liberia":                          Africa,
	"libya":                            Africa,
	"liechtenstein":                    Europe,
	"lithuania":                        Europe,
	"luxembourg":                       Europe,
	"madagascar":                       Africa,
	"malawi":                           Africa,
	"malaysia":                         Asia,
	"maldives":                         Asia,
	"mali":                             Africa,
	"malta":                            Europe,
	"marshall islands":                 Oceania,
	"mauritania":                       Africa,
	"mauritius":                        Africa,
	"mexico":                           NorthAmerica,
	"micronesia":                       Oceania,
	"moldova":                          Europe,
	"monaco":                           Europe,
	"mongolia":                         Asia,
	"montenegro":                       Europe,
	"morocco":                          Africa,
	"mozambique":                       Africa,
	"myanmar":                          Asia,
	"namibia":                          Africa,
	"nauru":                            Oceania,
	"nepal":                            Asia,
	"netherlands":                      Europe,
	"new zealand":                      Oceania,
	"nicaragua":                        NorthAmerica,
	"niger":                            Africa,
	"nigeria":                          Africa,
	"north korea":                      Asia,
	"north macedonia":                  Europe,
	"norway":                           Europe,
	"oman":                             Asia,
	"pakistan":                         Asia,
	"palau":                            Oceania,
	"palestine":                        Asia,
	"panama":                           NorthAmerica,
	"papua new guinea":                 Oceania,
	"paraguay":                         SouthAmerica,
	"peru":                             SouthAmerica,
	"philippines":                      Asia,
	"poland":                           Europe,
	"portugal":                         Europe,
	"puerto rico":                      NorthAmerica,
	"qatar":                            Asia,
	"republic of the congo":            Africa,
	"romania":                          Europe,
	"russia":                           Europe,
	"rwanda":                           Africa,
	"samoa":                            Oceania,
	"san marino":                       Europe,
	"saudi arabia":                     Asia,
	"senegal":                          Africa,
	"serbia":                           Europe,
	"seychelles":                       Africa,
	"sierra leone":                     Africa,
	"singapore":                        Asia,
	"slovakia":                         Europe,
	"slovenia":                         Europe,
	"solomon islands":                  Oceania,
	"somalia":                          Africa,
	"south africa":                     Africa,
	"south korea":                      Asia,
	"south sudan":                      Africa,
	"spain":                            Europe,
	"sri lanka":                        Asia,
	"sudan":                            Africa,
	"suriname":                         SouthAmerica,
	"sweden":                           Europe,
	"switzerland":                      Europe,
	"syria":                            Asia,
	"taiwan":                           Asia,
	"tajikistan":                       Asia,
	"tanzania":                         Africa,
	"thailand":                         Asia,
	"timor-leste":                      Asia,
	"togo":                             Africa,
	"tonga":                            Oceania,
	"trinidad and tobago":              NorthAmerica,
	"tunisia":                          Africa,
	"turkey":                           Asia,
	"turkmenistan":                     Asia,
	"tuvalu":                           Oceania,
	"uganda":                           Africa,
	"ukraine":                          Europe,
	"united arab emirates":             Asia,
	"united kingdom":                   Europe,
	"united states":                    NorthAmerica,
	"usa":                              NorthAmerica,
	"uruguay":                          SouthAmerica,
	"uzbekistan":                       Asia,
	"vanuatu":                          Oceania,
	"vatican city":                     Europe,
	"venezuela":                        SouthAmerica,
	"vietnam":                          Asia,
	"yemen":                            Asia,
	"zambia":                           Africa,
	"zimbabwe":                         Africa,
}

// ContinentOf returns the continent for a country name, or "" when the
// country is not recognized.
func ContinentOf(country string) string {
	return continentByCountry[strings.ToLower(strings.TrimSpace(country))]
}
