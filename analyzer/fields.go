package analyzer

import "marketing-dashboard/config"

// Column candidates per logical field. Exports from different years label
// the same metric differently; order is preference.
var (
	emailDateFields     = []string{"Send date", "Sent on", "Date", "Publish date"}
	emailCampaignFields = []string{"Campaign name", "Campaign", "Email name", "Name", "Subject"}
	emailSentFields     = []string{"Emails sent", "Sent", "Delivered"}
	emailOpenedFields   = []string{"Email opened (MPP excluded)", "Emails opened", "Unique opens", "Opened", "Opens"}
	emailClickedFields  = []string{"Email clicked", "Emails clicked", "Unique clicks", "Clicked", "Clicks"}

	postDateFields         = []string{"Publish time", "Published", "Date"}
	postIDFields           = []string{"Post ID", "Video ID", "ID"}
	postTitleFields        = []string{"Title", "Description", "Caption", "Message"}
	postTypeFields         = []string{"Post type", "Type"}
	postPermalinkFields    = []string{"Permalink", "Link", "URL"}
	postReachFields        = []string{"Reach", "Post reach", "Accounts reached"}
	postViewsFields        = []string{"Views", "video views", "Impressions", "Plays"}
	postReactionsFields    = []string{"Reactions", "Likes"}
	postCommentsFields     = []string{"Comments"}
	postSharesFields       = []string{"Shares"}
	postSavesFields        = []string{"Saves"}
	postInteractionsFields = []string{"Reactions, comments and shares", "Interactions"}

	pageDateFields         = []string{"Date", "Day"}
	pageFollowsFields      = []string{"Primary", "Follows", "New follows", "Followers", "Value"}
	pageReachFields        = []string{"Primary", "Reach", "Value"}
	pageVisitsFields       = []string{"Primary", "Visits", "Profile visits", "Page visits", "Value"}
	pageInteractionsFields = []string{"Primary", "Interactions", "Content interactions", "Value"}

	ytDateFields        = []string{"Video publish time", "Publish time", "Date"}
	ytTitleFields       = []string{"Video title", "Content", "Title"}
	ytViewsFields       = []string{"Views"}
	ytWatchFields       = []string{"Watch time (hours)", "Watch time"}
	ytSubscribersFields = []string{"Subscribers", "Subscribers gained"}
	ytImpressionsFields = []string{"Impressions"}
	ytCTRFields         = []string{"Impressions click-through rate (%)", "click-through rate", "CTR"}
	ytAgeLabelFields    = []string{"Viewer age", "Age"}
	ytGenderLabelFields = []string{"Viewer gender", "Gender"}
	ytShareValueFields  = []string{"Views (%)", "Views", "Watch time (hours) (%)"}
	ytGeoLabelFields    = []string{"Geography", "Country"}
	ytSubLabelFields    = []string{"Subscription status", "Status"}

	gaDateFields            = []string{"Date", "Day"}
	gaChannelFields         = []string{"Session primary channel group", "Session default channel group", "First user primary channel group", "Channel"}
	gaSessionsFields        = []string{"Sessions"}
	gaEngagedFields         = []string{"Engaged sessions"}
	gaEngagementRateFields  = []string{"Engagement rate"}
	gaUsersFields           = []string{"Active users", "Total users", "Users"}
	gaNewUsersFields        = []string{"New users"}
	gaCountryFields         = []string{"Country", "Region"}
	gaPagePathFields        = []string{"Page path and screen class", "Page path", "Page title and screen class", "Page title"}
	gaPageViewsFields       = []string{"Views", "Screen page views", "Pageviews"}
	gaPageEngagementFields  = []string{"Average engagement time per active user", "Average engagement time"}
	utmCampaignFields       = []string{"Session campaign", "Campaign"}
	utmSourceFields         = []string{"Session source", "Source"}
	utmPlatformFields       = []string{"Session source platform", "Platform"}
	utmContentFields        = []string{"Session manual ad content", "Manual ad content", "Content"}
)

// DateFields are the date columns each source is filtered on.
var DateFields = map[string][]string{
	config.EMAIL_CAMPAIGN_PERFORMANCE:  emailDateFields,
	config.FB_VIDEOS:                   postDateFields,
	config.FB_POSTS:                    postDateFields,
	config.IG_POSTS:                    postDateFields,
	config.FB_FOLLOWS:                  pageDateFields,
	config.FB_REACH:                    pageDateFields,
	config.FB_VISITS:                   pageDateFields,
	config.FB_INTERACTIONS:             pageDateFields,
	config.IG_FOLLOWS:                  pageDateFields,
	config.IG_REACH:                    pageDateFields,
	config.IG_VISITS:                   pageDateFields,
	config.IG_INTERACTIONS:             pageDateFields,
	config.YOUTUBE_CONTENT:             ytDateFields,
	config.YOUTUBE_AGE:                 gaDateFields,
	config.YOUTUBE_GENDER:              gaDateFields,
	config.YOUTUBE_GEOGRAPHY:           gaDateFields,
	config.YOUTUBE_SUBSCRIPTION_STATUS: gaDateFields,
	config.GA_DEMOGRAPHICS:             gaDateFields,
	config.GA_TRAFFIC_ACQUISITION:      gaDateFields,
	config.GA_PAGES_AND_SCREENS:        gaDateFields,
	config.GA_UTMS:                     gaDateFields,
}

// DateFieldsFor returns the date columns for a source.
func DateFieldsFor(name string) []string {
	if fields, ok := DateFields[name]; ok {
		return fields
	}
	return DefaultDateFields
}
