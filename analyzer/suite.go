package analyzer

import (
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
)

// Suite runs every platform analyzer against the same datasets and
// selection.
type Suite struct {
	Email     *EmailAnalyzer
	Facebook  *FacebookAnalyzer
	Instagram *InstagramAnalyzer
	YouTube   *YouTubeAnalyzer
	Web       *WebAnalyzer
	UTM       *UTMAnalyzer
}

func NewSuite(parsers ParserSet) *Suite {
	return &Suite{
		Email:     NewEmailAnalyzer(parsers),
		Facebook:  NewFacebookAnalyzer(parsers),
		Instagram: NewInstagramAnalyzer(parsers),
		YouTube:   NewYouTubeAnalyzer(parsers),
		Web:       NewWebAnalyzer(parsers),
		UTM:       NewUTMAnalyzer(parsers),
	}
}

// Analyze assumes sel has already been validated.
func (s *Suite) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.PlatformSnapshots {
	return snapshot.PlatformSnapshots{
		Selection: sel,
		Email:     s.Email.Analyze(ds, sel),
		Facebook:  s.Facebook.Analyze(ds, sel),
		Instagram: s.Instagram.Analyze(ds, sel),
		YouTube:   s.YouTube.Analyze(ds, sel),
		Web:       s.Web.Analyze(ds, sel),
		UTM:       s.UTM.Analyze(ds, sel),
	}
}
