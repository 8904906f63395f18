package filter

// BuiltinBlockedDomains are well-known ad and tracker hostnames loaded into
// the fast-path blocklist at construction.
var BuiltinBlockedDomains = []string{
	"doubleclick.net",
	"googlesyndication.com",
	"googleadservices.com",
	"google-analytics.com",
	"googletagmanager.com",
	"facebook.net",
	"analytics.google.com",
	"adservice.google.com",
	"pagead2.googlesyndication.com",
	"amazon-adsystem.com",
	"ads.yahoo.com",
	"ad.doubleclick.net",
	"stats.wp.com",
	"pixel.wp.com",
	"scorecardresearch.com",
	"quantserve.com",
	"outbrain.com",
	"taboola.com",
	"criteo.com",
	"rubiconproject.com",
	"pubmatic.com",
	"openx.net",
	"casalemedia.com",
	"adnxs.com",
	"moatads.com",
	"serving-sys.com",
	"sentry-cdn.com",
	"hotjar.com",
	"mouseflow.com",
	"fullstory.com",
	"crazyegg.com",
	"mixpanel.com",
	"amplitude.com",
	"segment.io",
	"segment.com",
	"optimizely.com",
	"newrelic.com",
	"nr-data.net",
}

// DefaultFilters is the built-in filter list. In production deployments this
// is extended by lists the surrounding application supplies as text.
const DefaultFilters = `[Adblock Plus 2.0]
! Title: Comet Default Filters
! Description: built-in ad and tracker blocking filters

! --- Ad networks ---
||doubleclick.net^
||googlesyndication.com^
||googleadservices.com^
||google-analytics.com^
||googletagmanager.com^
||amazon-adsystem.com^
||ads.yahoo.com^
||adnxs.com^
||rubiconproject.com^
||pubmatic.com^
||openx.net^
||casalemedia.com^
||criteo.com^
||outbrain.com^
||taboola.com^
||moatads.com^
||serving-sys.com^

! --- Trackers ---
||scorecardresearch.com^
||quantserve.com^
||hotjar.com^
||mouseflow.com^
||fullstory.com^
||crazyegg.com^
||mixpanel.com^
||amplitude.com^
||segment.io^
||segment.com^
||optimizely.com^
||newrelic.com^
||nr-data.net^

! --- Social trackers ---
||facebook.net/tr^
||connect.facebook.net/en_US/fbevents.js
||platform.twitter.com/widgets.js$third-party
||platform.linkedin.com/badges/$third-party

! --- Common ad paths ---
*/ads/*$image,script,subdocument
*/adserver/*$script
*/advert/*$image,script
*/banner/*$image
*/popup/*$subdocument
*/tracking/*$script,xmlhttprequest
`
