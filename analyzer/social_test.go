package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-dashboard/config"
)

func TestFacebookAnalyzer(t *testing.T) {
	ds := datasets(t, map[string]string{
		config.FB_REACH:        "Date,Primary\n2024-01-01,100\n2024-01-02,300\n2023-12-31,999\n",
		config.FB_INTERACTIONS: "Date,Primary\n2024-01-01,10\n2024-01-02,20\n",
		config.FB_FOLLOWS:      "Date,Primary\n2024-01-02,5\n",
		config.FB_POSTS: "Post ID,Title,Publish time,Reach,Reactions,Comments,Shares\n" +
			"1,A,2024-01-01T10:00:00Z,50,5,1,1\n" +
			"2,B,2024-01-02T10:00:00Z,80,1,1,1\n" +
			"3,C,2023-12-01T10:00:00Z,500,0,0,0\n",
	})

	snap := NewFacebookAnalyzer(DefaultParserSet()).Analyze(ds, selection(t, "2024-01-01", "2024-01-31"))

	assert.Equal(t, 400, snap.PageTotals.Reach)
	assert.Equal(t, 30, snap.PageTotals.Interactions)
	assert.Equal(t, 5, snap.PageTotals.Followers)
	assert.Equal(t, 0, snap.PageTotals.Visits)
	assert.InDelta(t, 7.5, snap.PageTotals.Engagement, 1e-9)

	require.Len(t, snap.TopPosts, 2)
	assert.Equal(t, "B", snap.TopPosts[0].Title)
	assert.Equal(t, "A", snap.TopPosts[1].Title)
	assert.Equal(t, 7, snap.TopPosts[1].Interactions)
	assert.InDelta(t, 14.0, snap.TopPosts[1].EngagementRate, 1e-9)
	assert.Equal(t, "2024-01-01T10:00:00Z", snap.TopPosts[1].PublishTime)

	assert.NotNil(t, snap.TopVideos)
	assert.Empty(t, snap.TopVideos)

	require.Len(t, snap.Daily, 2)
	assert.Equal(t, "2024-01-01", snap.Daily[0].Date)
	assert.Equal(t, 100, snap.Daily[0].Reach)
	assert.Equal(t, 0, snap.Daily[0].Followers)
	assert.Equal(t, "2024-01-02", snap.Daily[1].Date)
	assert.Equal(t, 5, snap.Daily[1].Followers)
}

func TestFacebookAnalyzer_Comparison(t *testing.T) {
	ds := datasets(t, map[string]string{
		config.FB_REACH: "Date,Primary\n2024-01-10,200\n2023-12-10,100\n",
	})

	snap := NewFacebookAnalyzer(DefaultParserSet()).Analyze(ds,
		comparison(t, "2024-01-01", "2024-01-31", "2023-12-01", "2023-12-31"))

	require.NotNil(t, snap.Comparison)
	assert.Equal(t, 100, snap.Comparison.Reach)
	require.NotNil(t, snap.Change["reach"])
	assert.InDelta(t, 100.0, *snap.Change["reach"], 1e-9)
	assert.Nil(t, snap.Change["interactions"])
}

func TestFacebookAnalyzer_Empty(t *testing.T) {
	snap := NewFacebookAnalyzer(DefaultParserSet()).Analyze(DatasetMap{}, selection(t, "2024-01-01", "2024-01-31"))

	assert.Equal(t, 0, snap.PageTotals.Reach)
	assert.Equal(t, 0.0, snap.PageTotals.Engagement)
	assert.NotNil(t, snap.TopVideos)
	assert.NotNil(t, snap.TopPosts)
	assert.NotNil(t, snap.Daily)
}

func TestInstagramAnalyzer_PostTypes(t *testing.T) {
	ds := datasets(t, map[string]string{
		config.IG_POSTS: "Post type,Publish time,Reach,Likes,Comments,Saves\n" +
			"Reel,2024-01-01,10,1,1,1\n" +
			"Carousel,2024-01-02,20,2,0,0\n" +
			"Reel,2024-01-03,30,3,0,1\n" +
			",2024-01-04,5,0,0,0\n",
	})

	snap := NewInstagramAnalyzer(DefaultParserSet()).Analyze(ds, selection(t, "2024-01-01", "2024-01-31"))

	require.Len(t, snap.PostTypes, 3)
	assert.Equal(t, "Reel", snap.PostTypes[0].Type)
	assert.Equal(t, 2, snap.PostTypes[0].Posts)
	assert.Equal(t, 40, snap.PostTypes[0].Reach)
	assert.Equal(t, "Carousel", snap.PostTypes[1].Type)
	assert.Equal(t, NOT_SET, snap.PostTypes[2].Type)

	require.Len(t, snap.TopPosts, 4)
	assert.Equal(t, 30, snap.TopPosts[0].Reach)
	assert.Equal(t, 4, snap.TopPosts[0].Interactions)
}

func TestInstagramAnalyzer_EngagementRateColumnIsNotACount(t *testing.T) {
	ds := datasets(t, map[string]string{
		config.IG_POSTS: "Post ID,Title,Publish time,Reach,Likes,Comments,Shares,Saves,Engagement rate\n" +
			"1,Reel,2024-01-05T09:00:00Z,1000,80,10,5,5,10%\n",
	})

	snap := NewInstagramAnalyzer(DefaultParserSet()).Analyze(ds, selection(t, "2024-01-01", "2024-01-31"))

	require.Len(t, snap.TopPosts, 1)
	assert.Equal(t, 100, snap.TopPosts[0].Interactions)
	assert.InDelta(t, 10.0, snap.TopPosts[0].EngagementRate, 1e-9)
}
