package domain

import "time"

// LinkEntry records a URL posted in a guild
type LinkEntry struct {
	ID        int64
	GuildID   string
	UserID    string
	Hostname  string
	URL       string
	CreatedAt time.Time
}

// SlapEntry records one user slapping another
type SlapEntry struct {
	ID        int64
	GuildID   string
	SlapperID string
	SlappedID string
	CreatedAt time.Time
}

// Count is an aggregation row, Key is a user id or a hostname
type Count struct {
	Key   string
	Count int
}

// LinkLeaderboard is the guild-wide link summary
type LinkLeaderboard struct {
	TopUsers []Count
	TopHosts []Count
	Total    int
}

// LinkStats is a single user's link summary, Rank is 0 when the user has no links
type LinkStats struct {
	TopHosts []Count
	Total    int
	Rank     int
}

// SlapLeaderboard is the guild-wide slap summary
type SlapLeaderboard struct {
	MostSlapped []Count
	Total       int
}

// SlapStats is a single user's slap summary, ranks are 0 when absent on that axis
type SlapStats struct {
	TimesSlapped  int
	TimesSlapping int
	SlappedRank   int
	SlapperRank   int
}
