package config

// Source files, exact and case-sensitive.
const (
	EMAIL_CAMPAIGN_PERFORMANCE  = "Email_Campaign_Performance.csv"
	FB_VIDEOS                   = "FB_Videos.csv"
	FB_POSTS                    = "FB_Posts.csv"
	FB_FOLLOWS                  = "FB_Follows.csv"
	FB_REACH                    = "FB_Reach.csv"
	FB_VISITS                   = "FB_Visits.csv"
	FB_INTERACTIONS             = "FB_Interactions.csv"
	IG_POSTS                    = "IG_Posts.csv"
	IG_FOLLOWS                  = "IG_Follows.csv"
	IG_REACH                    = "IG_Reach.csv"
	IG_VISITS                   = "IG_Visits.csv"
	IG_INTERACTIONS             = "IG_Interactions.csv"
	YOUTUBE_AGE                 = "YouTube_Age.csv"
	YOUTUBE_GENDER              = "YouTube_Gender.csv"
	YOUTUBE_GEOGRAPHY           = "YouTube_Geography.csv"
	YOUTUBE_SUBSCRIPTION_STATUS = "YouTube_Subscription_Status.csv"
	YOUTUBE_CONTENT             = "YouTube_Content.csv"
	GA_DEMOGRAPHICS             = "GA_Demographics.csv"
	GA_TRAFFIC_ACQUISITION      = "GA_Traffic_Acquisition.csv"
	GA_PAGES_AND_SCREENS        = "GA_Pages_And_Screens.csv"
	GA_UTMS                     = "GA_UTMs.csv"
)

// CoreFiles are loaded first; the dashboard's headline numbers come from them.
var CoreFiles = []string{
	EMAIL_CAMPAIGN_PERFORMANCE,
	FB_VIDEOS,
	FB_POSTS,
	IG_POSTS,
	YOUTUBE_CONTENT,
	GA_TRAFFIC_ACQUISITION,
	GA_UTMS,
}

// ExtendedFiles are loaded in a second batch.
var ExtendedFiles = []string{
	FB_FOLLOWS,
	FB_REACH,
	FB_VISITS,
	FB_INTERACTIONS,
	IG_FOLLOWS,
	IG_REACH,
	IG_VISITS,
	IG_INTERACTIONS,
	YOUTUBE_AGE,
	YOUTUBE_GENDER,
	YOUTUBE_GEOGRAPHY,
	YOUTUBE_SUBSCRIPTION_STATUS,
	GA_DEMOGRAPHICS,
	GA_PAGES_AND_SCREENS,
}

// ManifestFiles returns every known file, core batch first.
func ManifestFiles() []string {
	out := make([]string, 0, len(CoreFiles)+len(ExtendedFiles))
	out = append(out, CoreFiles...)
	return append(out, ExtendedFiles...)
}

// IsManifestFile reports whether name is one of the known files.
func IsManifestFile(name string) bool {
	for _, f := range ManifestFiles() {
		if f == name {
			return true
		}
	}
	return false
}
