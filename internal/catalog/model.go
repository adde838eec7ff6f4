package catalog

import (
	"strings"
	"time"
)

// Package is a bookable travel product. Itinerary and inclusions are
// stored as "|"-delimited text, one day-entry / line-item per segment.
type Package struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Destination    string    `db:"destination" json:"destination"`
	Category       string    `db:"category" json:"category"`
	Duration       string    `db:"duration" json:"duration"`
	Price          float64   `db:"price" json:"price"`
	Rating         float64   `db:"rating" json:"rating"`
	Latitude       float64   `db:"latitude" json:"latitude"`
	Longitude      float64   `db:"longitude" json:"longitude"`
	Description    string    `db:"description" json:"description"`
	Image          string    `db:"image" json:"image"`
	Region         string    `db:"region" json:"region"`
	Itinerary      string    `db:"itinerary" json:"itinerary"`
	Inclusions     string    `db:"inclusions" json:"inclusions"`
	AvailableSlots int       `db:"available_slots" json:"available_slots"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

func (p *Package) ItineraryDays() []string {
	return splitSegments(p.Itinerary)
}

func (p *Package) InclusionItems() []string {
	return splitSegments(p.Inclusions)
}

func splitSegments(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListFilter mirrors the catalog browse query parameters. Zero values
// mean "no filtering".
type ListFilter struct {
	Region   string
	Category string
	Search   string
	Sort     string
}

func (f ListFilter) IsEmpty() bool {
	return (f.Region == "" || f.Region == "all") &&
		(f.Category == "" || f.Category == "all") &&
		f.Search == "" &&
		(f.Sort == "" || f.Sort == "name")
}

type UpsertRequest struct {
	Name           string  `json:"name" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Duration       string  `json:"duration" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Rating         float64 `json:"rating" binding:"gte=0,lte=5"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Description    string  `json:"description" binding:"required"`
	Image          string  `json:"image"`
	Region         string  `json:"region" binding:"required"`
	Itinerary      string  `json:"itinerary" binding:"required"`
	Inclusions     string  `json:"inclusions" binding:"required"`
	AvailableSlots int     `json:"available_slots" binding:"gte=0"`
	IsActive       *bool   `json:"is_active"`
}
