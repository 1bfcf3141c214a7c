package model

// PlayerMeta is the public profile of a player.
type PlayerMeta struct {
	Username   string `json:"username"`
	PlayerID   int64  `json:"player_id"`
	Name       string `json:"name,omitempty"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status"`
	Country    string `json:"country,omitempty"`
	URL        string `json:"url"`
	Followers  int    `json:"followers"`
	Joined     int64  `json:"joined"`
	LastOnline int64  `json:"last_online"`
	League     string `json:"league,omitempty"`
}
