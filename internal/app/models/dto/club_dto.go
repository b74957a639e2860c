package dto

import "github.com/team-echo-club/echo-api/internal/app/models"

// ClubCounters are live figures derived from the datasets, shown next
// to the static highlight numbers.
type ClubCounters struct {
	Activities int `json:"activities" example:"4"`
	Upcoming   int `json:"upcoming" example:"3"`
	Members    int `json:"members" example:"10"`
	MediaItems int `json:"mediaItems" example:"5"`
}

// ClubResponse bundles the club profile with live counters.
type ClubResponse struct {
	models.ClubInfo
	Counters ClubCounters `json:"counters"`
}

// JoinLinksResponse carries the contact channels a visitor can use to
// join the club.
type JoinLinksResponse struct {
	WhatsApp string `json:"whatsapp" example:"https://wa.me/919110687983?text=..."`
	Email    string `json:"email" example:"mailto:club@example.edu?subject=..."`
}
