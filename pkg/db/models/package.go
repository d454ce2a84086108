package models

import (
	"time"

	"github.com/oumar782/Jessback/pkg/enums"
)

// Package is a freight item, optionally assigned to a shipment slot.
// CodeSuivi is generated once at creation and never rewritten.
type Package struct {
	ID                    int64               `gorm:"column:id;primaryKey;autoIncrement"`
	CreneauID             *int64              `gorm:"column:creneau_id"`
	CodeSuivi             string              `gorm:"column:code_suivi;not null;unique"`
	ExpediteurNom         string              `gorm:"column:expediteur_nom;not null"`
	ExpediteurTelephone   string              `gorm:"column:expediteur_telephone;not null"`
	ExpediteurAdresse     string              `gorm:"column:expediteur_adresse;not null"`
	DestinataireNom       string              `gorm:"column:destinataire_nom;not null"`
	DestinataireTelephone string              `gorm:"column:destinataire_telephone;not null"`
	DestinataireAdresse   string              `gorm:"column:destinataire_adresse;not null"`
	TypeColis             enums.PackageType   `gorm:"column:type_colis;not null;default:'document'"`
	Poids                 float64             `gorm:"column:poids;not null"`
	Description           *string             `gorm:"column:description"`
	ValeurDeclaree        float64             `gorm:"column:valeur_declaree;not null;default:0"`
	Assure                bool                `gorm:"column:assure;not null;default:false"`
	ModePaiement          enums.PaymentMethod `gorm:"column:mode_paiement;not null;default:'cash'"`
	Statut                enums.PackageStatus `gorm:"column:statut;not null;default:'pending'"`
	CreatedAt             time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the legacy table name.
func (Package) TableName() string {
	return "colis"
}
