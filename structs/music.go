package structs

type MusicEvent struct {
	Month       string `json:"month"`
	Artist      string `json:"artist"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description"`
}

type MusicPage struct {
	Intro  string       `json:"intro"`
	Events []MusicEvent `json:"events"`
}
