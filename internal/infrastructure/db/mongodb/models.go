// Package mongodb contains the MongoDB implementations of the domain
// repository interfaces. Documents are mapped to and from entities here so
// ObjectIDs never leak past this package.
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roam-backend/internal/domain/entities"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		ID:        d.ID.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Username:  d.Username,
		Password:  d.Password,
		Name:      d.Name,
	}
}

type entryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	UserID    string             `bson:"user_id"`
	PlaceID   string             `bson:"place_id"`
	City      string             `bson:"city"`
	Country   string             `bson:"country"`
	USState   string             `bson:"us_state,omitempty"`
	Notes     string             `bson:"notes"`
	Date      string             `bson:"date"`
	Lat       float64            `bson:"lat"`
	Lng       float64            `bson:"lng"`
}

func newEntryDocument(e *entities.Entry) *entryDocument {
	return &entryDocument{
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		UserID:    e.UserID,
		PlaceID:   e.PlaceID,
		City:      e.City,
		Country:   e.Country,
		USState:   e.USState,
		Notes:     e.Notes,
		Date:      e.Date,
		Lat:       e.Lat,
		Lng:       e.Lng,
	}
}

func (d *entryDocument) toEntity() *entities.Entry {
	return &entities.Entry{
		ID:        d.ID.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		UserID:    d.UserID,
		PlaceID:   d.PlaceID,
		City:      d.City,
		Country:   d.Country,
		USState:   d.USState,
		Notes:     d.Notes,
		Date:      d.Date,
		Lat:       d.Lat,
		Lng:       d.Lng,
	}
}

type rankDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	PlaceID string             `bson:"place_id"`
	City    string             `bson:"city"`
	Country string             `bson:"country"`
	Counter int64              `bson:"counter"`
}

func (d *rankDocument) toEntity() *entities.RankEntry {
	return &entities.RankEntry{
		ID:      d.ID.Hex(),
		PlaceID: d.PlaceID,
		City:    d.City,
		Country: d.Country,
		Counter: d.Counter,
	}
}

type counterDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	UserID  string             `bson:"user_id"`
	History travelCounts       `bson:"history"`
}

type travelCounts struct {
	Cities     int `bson:"cities"`
	States     int `bson:"states"`
	Countries  int `bson:"countries"`
	Continents int `bson:"continents"`
}

func newCounterDocument(s *entities.CounterSummary) *counterDocument {
	return &counterDocument{
		UserID: s.UserID,
		History: travelCounts{
			Cities:     s.History.Cities,
			States:     s.History.States,
			Countries:  s.History.Countries,
			Continents: s.History.Continents,
		},
	}
}

func (d *counterDocument) toEntity() *entities.CounterSummary {
	return &entities.CounterSummary{
		ID:     d.ID.Hex(),
		UserID: d.UserID,
		History: entities.TravelCounts{
			Cities:     d.History.Cities,
			States:     d.History.States,
			Countries:  d.History.Countries,
			Continents: d.History.Continents,
		},
	}
}
