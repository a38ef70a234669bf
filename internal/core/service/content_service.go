package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

// ContentService serves the magazine, playlists and advertisements. All of
// it is read-only; editorial data is loaded out of band.
type ContentService struct {
	content ports.ContentRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewContentService(content ports.ContentRepository, users ports.UserRepository, log zerolog.Logger) *ContentService {
	return &ContentService{content: content, users: users, log: log}
}

// Issues lists published issues, newest first, with their article counts.
func (s *ContentService) Issues(ctx context.Context) ([]*ports.IssueListItem, error) {
	issues, err := s.content.PublishedIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	ids := make([]string, 0, len(issues))
	for _, is := range issues {
		ids = append(ids, is.ID)
	}
	counts, err := s.content.ArticleCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	out := make([]*ports.IssueListItem, 0, len(issues))
	for _, is := range issues {
		item := &ports.IssueListItem{MagazineIssue: is}
		item.Count.Articles = counts[is.ID]
		out = append(out, item)
	}
	return out, nil
}

func (s *ContentService) Issue(ctx context.Context, id string) (*ports.IssueDetail, error) {
	issue, err := s.content.IssueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	articles, err := s.content.PublishedArticles(ctx, issue.ID)
	if err != nil {
		return nil, fmt.Errorf("issue articles: %w", err)
	}

	authorIDs := make([]string, 0, len(articles))
	for _, a := range articles {
		authorIDs = append(authorIDs, a.AuthorID)
	}
	authors, err := s.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("article authors: %w", err)
	}

	detail := &ports.IssueDetail{MagazineIssue: issue, Articles: make([]*ports.ArticleWithAuthor, 0, len(articles))}
	for _, a := range articles {
		detail.Articles = append(detail.Articles, &ports.ArticleWithAuthor{Article: a, Author: publicSummary(authors[a.AuthorID])})
	}
	return detail, nil
}

func (s *ContentService) Playlists(ctx context.Context) ([]*ports.PlaylistWithCurator, error) {
	playlists, err := s.content.Playlists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}

	ids := make([]string, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.CuratorID)
	}
	curators, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("playlist curators: %w", err)
	}

	out := make([]*ports.PlaylistWithCurator, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, &ports.PlaylistWithCurator{Playlist: p, Curator: publicSummary(curators[p.CuratorID])})
	}
	return out, nil
}

func (s *ContentService) Playlist(ctx context.Context, id string) (*ports.PlaylistWithCurator, error) {
	playlist, err := s.content.PlaylistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	curators, err := s.users.FindByIDs(ctx, []string{playlist.CuratorID})
	if err != nil {
		return nil, fmt.Errorf("playlist curator: %w", err)
	}
	return &ports.PlaylistWithCurator{Playlist: playlist, Curator: publicSummary(curators[playlist.CuratorID])}, nil
}

// Advertisements lists every placement, newest first.
func (s *ContentService) Advertisements(ctx context.Context) ([]*ports.AdvertisementWithAdvertiser, error) {
	ads, err := s.content.Advertisements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list advertisements: %w", err)
	}

	ids := make([]string, 0, len(ads))
	for _, a := range ads {
		ids = append(ids, a.AdvertiserID)
	}
	advertisers, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("advertisers: %w", err)
	}

	out := make([]*ports.AdvertisementWithAdvertiser, 0, len(ads))
	for _, a := range ads {
		out = append(out, &ports.AdvertisementWithAdvertiser{Advertisement: a, Advertiser: publicSummary(advertisers[a.AdvertiserID])})
	}
	return out, nil
}

// publicSummary strips the email from a contributor shown on public content.
func publicSummary(u *domain.User) *domain.UserSummary {
	s := u.Summary()
	if s != nil {
		s.Email = ""
	}
	return s
}
