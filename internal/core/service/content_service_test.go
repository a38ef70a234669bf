package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratford/music-platform/internal/core/domain"
)

func TestContentService_Issues(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "editor", domain.RoleAdmin)
	content := f.store.Content()
	svc := NewContentService(content, f.store.Users(), zerolog.Nop())

	march := testNow.Add(-24 * time.Hour)
	feb := testNow.Add(-30 * 24 * time.Hour)
	content.PutIssue(&domain.MagazineIssue{ID: "feb", Title: "February", Status: domain.IssuePublished, PublishedAt: &feb})
	content.PutIssue(&domain.MagazineIssue{ID: "mar", Title: "March", Status: domain.IssuePublished, PublishedAt: &march})
	content.PutIssue(&domain.MagazineIssue{ID: "apr", Title: "April", Status: domain.IssueDraft})
	content.PutArticle(&domain.Article{ID: "a1", IssueID: "mar", AuthorID: "editor", Status: domain.IssuePublished, PublishedAt: &march})
	content.PutArticle(&domain.Article{ID: "a2", IssueID: "mar", AuthorID: "editor", Status: domain.IssueDraft})

	issues, err := svc.Issues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "mar", issues[0].ID)
	assert.EqualValues(t, 2, issues[0].Count.Articles)

	detail, err := svc.Issue(context.Background(), "mar")
	require.NoError(t, err)
	require.Len(t, detail.Articles, 1)
	assert.Equal(t, "editor", detail.Articles[0].Author.Name)
	assert.Empty(t, detail.Articles[0].Author.Email)

	_, err = svc.Issue(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestContentService_PlaylistsAndAds(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "dj", domain.RoleArtist)
	content := f.store.Content()
	svc := NewContentService(content, f.store.Users(), zerolog.Nop())

	content.PutPlaylist(&domain.Playlist{ID: "p1", CuratorID: "dj", Title: "Sunday", CreatedAt: testNow})
	content.PutAdvertisement(&domain.Advertisement{ID: "ad1", AdvertiserID: "dj", AdType: domain.AdBanner, CreatedAt: testNow})

	lists, err := svc.Playlists(context.Background())
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "dj", lists[0].Curator.ID)

	one, err := svc.Playlist(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", one.Title)

	_, err = svc.Playlist(context.Background(), "p2")
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)

	ads, err := svc.Advertisements(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "dj", ads[0].Advertiser.Name)
}
