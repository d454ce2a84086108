package models

import (
	"time"

	"github.com/oumar782/Jessback/pkg/enums"
)

// Reservation is a passenger booking. It has no relation to slots or packages.
type Reservation struct {
	ID               int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Destination      string            `gorm:"column:destination;not null"`
	Nom              string            `gorm:"column:nom;not null"`
	Prenom           string            `gorm:"column:prenom;not null"`
	Email            string            `gorm:"column:email;not null"`
	Telephone        string            `gorm:"column:telephone;not null"`
	LieuDepart       string            `gorm:"column:lieu_depart;not null"`
	DateDepart       time.Time         `gorm:"column:date_depart;not null"`
	DateRetour       *time.Time        `gorm:"column:date_retour"`
	NombrePassagers  int               `gorm:"column:nombre_passagers;not null"`
	Classe           enums.TravelClass `gorm:"column:classe;not null"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the legacy table name.
func (Reservation) TableName() string {
	return "reservations"
}
