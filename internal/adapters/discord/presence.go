package discord

import "github.com/bwmarrin/discordgo"

// Presence: lo que muestra el bot al conectar ("Watching Wisteria", dnd).
type Presence struct {
	Text   string
	Status string // online | idle | dnd | invisible
}

func (p Presence) data() discordgo.UpdateStatusData {
	usd := discordgo.UpdateStatusData{Status: p.Status}
	if p.Text != "" {
		usd.Activities = []*discordgo.Activity{{Name: p.Text, Type: discordgo.ActivityTypeWatching}}
	}
	return usd
}

func (p Presence) apply(s *discordgo.Session) error {
	if p.Text == "" && p.Status == "" {
		return nil
	}
	return s.UpdateStatusComplex(p.data())
}
