package models

import (
	"time"

	"github.com/oumar782/Jessback/pkg/enums"
)

// ShipmentSlot is a scheduled departure with a bounded package capacity.
// Occupancy is derived from colis rows at read time, never stored.
type ShipmentSlot struct {
	ID            int64               `gorm:"column:id;primaryKey;autoIncrement"`
	DateDepart    time.Time           `gorm:"column:date_depart;not null"`
	LieuDepart    string              `gorm:"column:lieu_depart;not null"`
	Destination   string              `gorm:"column:destination;not null"`
	CapaciteMax   int                 `gorm:"column:capacite_max;not null"`
	FraisParKg    float64             `gorm:"column:frais_par_kg;not null"`
	PoidsMaxColis float64             `gorm:"column:poids_max_colis;not null"`
	TypeTransport enums.TransportType `gorm:"column:type_transport;not null;default:'standard'"`
	DateExpedition time.Time          `gorm:"column:date_expedition;not null"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the legacy table name.
func (ShipmentSlot) TableName() string {
	return "creneaux_expedition"
}
