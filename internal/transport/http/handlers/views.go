package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

// View-типы REST-слоя: стабильные JSON-представления доменных сущностей.
// Нулевые временные метки наружу не отдаются (null вместо 0001-01-01).

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

type newsView struct {
	ID               uuid.UUID  `json:"id"`
	SourceID         int64      `json:"source_id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	SourceURL        string     `json:"source_url"`
	ImageURL         string     `json:"image_url,omitempty"`
	Lang             string     `json:"lang"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	FetchedAt        *time.Time `json:"fetched_at,omitempty"`
	AISummary        string     `json:"ai_summary,omitempty"`
	AITopics         []string   `json:"ai_topics,omitempty"`
	ModerationStatus string     `json:"moderation_status"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	CreatedBy        int64      `json:"created_by,omitempty"`
}

func fromNews(n models.News) newsView {
	return newsView{
		ID:               n.ID,
		SourceID:         n.SourceID,
		Title:            n.Title,
		Content:          n.Content,
		SourceURL:        n.SourceURL,
		ImageURL:         n.ImageURL,
		Lang:             n.Lang,
		PublishedAt:      optTime(n.PublishedAt),
		FetchedAt:        optTime(n.FetchedAt),
		AISummary:        n.AISummary,
		AITopics:         n.AITopics,
		ModerationStatus: string(n.ModerationStatus),
		ExpiresAt:        optTime(n.ExpiresAt),
		CreatedBy:        n.CreatedBy,
	}
}

type pageView struct {
	Items         []newsView `json:"items"`
	NextPageToken string     `json:"next_page_token,omitempty"`
}

func fromPage(p *models.Page) pageView {
	items := make([]newsView, 0, len(p.Items))
	for _, n := range p.Items {
		items = append(items, fromNews(n))
	}

	return pageView{Items: items, NextPageToken: p.NextPageToken}
}

type userView struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username,omitempty"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	Language          string     `json:"language"`
	IsAdmin           bool       `json:"is_admin"`
	SafeMode          bool       `json:"safe_mode"`
	AutoNotifications bool       `json:"auto_notifications"`
	DigestFrequency   string     `json:"digest_frequency"`
	ViewMode          string     `json:"view_mode"`
	InviterID         int64      `json:"inviter_id,omitempty"`
	Level             int32      `json:"level"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	LastActive        *time.Time `json:"last_active,omitempty"`
}

func fromUser(u models.User) userView {
	return userView{
		ID:                u.ID,
		Username:          u.Username,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Language:          u.Language,
		IsAdmin:           u.IsAdmin,
		SafeMode:          u.SafeMode,
		AutoNotifications: u.AutoNotifications,
		DigestFrequency:   string(u.DigestFrequency),
		ViewMode:          string(u.ViewMode),
		InviterID:         u.InviterID,
		Level:             u.Level,
		CreatedAt:         optTime(u.CreatedAt),
		LastActive:        optTime(u.LastActive),
	}
}

type statsView struct {
	UserID            int64 `json:"user_id"`
	NewsReadCount     int64 `json:"news_read_count"`
	AIRequestCount    int64 `json:"ai_request_count"`
	SourcesAddedCount int64 `json:"sources_added_count"`
	ReportsSentCount  int64 `json:"reports_sent_count"`
	AIPositiveCount   int64 `json:"ai_positive_count"`
	AINegativeCount   int64 `json:"ai_negative_count"`
}

func fromStats(s *models.UserStats) statsView {
	return statsView{
		UserID:            s.UserID,
		NewsReadCount:     s.NewsReadCount,
		AIRequestCount:    s.AIRequestCount,
		SourcesAddedCount: s.SourcesAddedCount,
		ReportsSentCount:  s.ReportsSentCount,
		AIPositiveCount:   s.AIPositiveCount,
		AINegativeCount:   s.AINegativeCount,
	}
}

type badgeView struct {
	Code     string     `json:"code"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

func fromBadges(badges []models.Badge) []badgeView {
	out := make([]badgeView, 0, len(badges))
	for _, b := range badges {
		out = append(out, badgeView{Code: b.Code, EarnedAt: optTime(b.EarnedAt)})
	}
	return out
}

type blockView struct {
	Type      string     `json:"type"`
	Value     string     `json:"value"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func fromBlocks(blocks []models.Block) []blockView {
	out := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockView{Type: string(b.Type), Value: b.Value, CreatedAt: optTime(b.CreatedAt)})
	}
	return out
}

type customFeedView struct {
	Name      string          `json:"name"`
	Criteria  json.RawMessage `json:"criteria,omitempty"`
	IsCurrent bool            `json:"is_current"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

func fromCustomFeed(f models.CustomFeed) customFeedView {
	return customFeedView{
		Name:      f.Name,
		Criteria:  f.Criteria,
		IsCurrent: f.IsCurrent,
		UpdatedAt: optTime(f.UpdatedAt),
	}
}

func fromCustomFeeds(feeds []models.CustomFeed) []customFeedView {
	out := make([]customFeedView, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, fromCustomFeed(f))
	}
	return out
}

type inviteView struct {
	Code      string     `json:"code"`
	InviterID int64      `json:"inviter_id"`
	InviteeID int64      `json:"invitee_id,omitempty"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}

func fromInvite(i *models.Invitation) inviteView {
	return inviteView{
		Code:      i.Code,
		InviterID: i.InviterID,
		InviteeID: i.InviteeID,
		Status:    string(i.Status),
		CreatedAt: optTime(i.CreatedAt),
		ExpiresAt: optTime(i.ExpiresAt),
		UsedAt:    optTime(i.UsedAt),
	}
}

type reportView struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	TargetType string     `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Reason     string     `json:"reason,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ResolvedBy int64      `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func fromReport(rep models.Report) reportView {
	return reportView{
		ID:         rep.ID,
		UserID:     rep.UserID,
		TargetType: string(rep.TargetType),
		TargetID:   rep.TargetID,
		Reason:     rep.Reason,
		Status:     string(rep.Status),
		CreatedAt:  optTime(rep.CreatedAt),
		ResolvedBy: rep.ResolvedBy,
		ResolvedAt: optTime(rep.ResolvedAt),
	}
}

type sourceView struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Link            string     `json:"link"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Trusted         bool       `json:"trusted"`
	ParseIntervalMS int64      `json:"parse_interval_ms,omitempty"`
	PublishedCount  int64      `json:"published_count"`
	CreatedBy       int64      `json:"created_by,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

func fromSource(s models.Source) sourceView {
	return sourceView{
		ID:              s.ID,
		Name:            s.Name,
		Link:            s.Link,
		Type:            string(s.Type),
		Status:          string(s.Status),
		Trusted:         s.Trusted,
		ParseIntervalMS: s.ParseInterval.Milliseconds(),
		PublishedCount:  s.PublishedCount,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       optTime(s.CreatedAt),
	}
}

type overviewView struct {
	TotalUsers   int64            `json:"total_users"`
	TotalNews    int64            `json:"total_news"`
	ActiveUsers  int64            `json:"active_users"`
	NewsByStatus map[string]int64 `json:"news_by_status"`
}

func fromOverview(o *models.OverviewStats) overviewView {
	byStatus := make(map[string]int64, len(o.NewsByStatus))
	for status, count := range o.NewsByStatus {
		byStatus[string(status)] = count
	}

	return overviewView{
		TotalUsers:   o.TotalUsers,
		TotalNews:    o.TotalNews,
		ActiveUsers:  o.ActiveUsers,
		NewsByStatus: byStatus,
	}
}
