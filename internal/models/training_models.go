package models

import (
	"time"

	"github.com/google/uuid"
)

// TrainingRoom is a physical room where trainings take place
type TrainingRoom struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Capacity int       `json:"capacity" db:"capacity"`
}

// Training is a scheduled session in a room led by a trainer
type Training struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RoomID    uuid.UUID `json:"roomId" db:"room_id"`
	TrainerID uuid.UUID `json:"trainerId" db:"trainer_id"`
	Date      time.Time `json:"date" db:"date"`
}

// TrainingDetails is a training enriched for the member-facing catalogue.
type TrainingDetails struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	RoomID      uuid.UUID `json:"roomId"`
	RoomName    string    `json:"roomName"`
	Capacity    int       `json:"capacity"`
	TrainerID   uuid.UUID `json:"trainerId"`
	TrainerName string    `json:"trainerName"`
	FreePlaces  int       `json:"freePlaces"`
}
