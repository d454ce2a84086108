package reservations

import (
	"time"

	"github.com/oumar782/Jessback/pkg/db/models"
)

// ReservationDTO is the reservation payload returned to clients. JSON keys
// follow the legacy French wire format the frontends already consume.
type ReservationDTO struct {
	ID              int64      `json:"id"`
	Destination     string     `json:"destination"`
	Nom             string     `json:"nom"`
	Prenom          string     `json:"prenom"`
	Email           string     `json:"email"`
	Telephone       string     `json:"telephone"`
	LieuDepart      string     `json:"lieuDepart"`
	DateDepart      time.Time  `json:"dateDepart"`
	DateRetour      *time.Time `json:"dateRetour,omitempty"`
	NombrePassagers int        `json:"nombrePassagers"`
	Classe          string     `json:"classe"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// NewReservationDTO builds a DTO from the persisted model.
func NewReservationDTO(row *models.Reservation) *ReservationDTO {
	if row == nil {
		return nil
	}
	return &ReservationDTO{
		ID:              row.ID,
		Destination:     row.Destination,
		Nom:             row.Nom,
		Prenom:          row.Prenom,
		Email:           row.Email,
		Telephone:       row.Telephone,
		LieuDepart:      row.LieuDepart,
		DateDepart:      row.DateDepart,
		DateRetour:      row.DateRetour,
		NombrePassagers: row.NombrePassagers,
		Classe:          string(row.Classe),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// NewReservationDTOs maps a page of rows.
func NewReservationDTOs(rows []models.Reservation) []ReservationDTO {
	dtos := make([]ReservationDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewReservationDTO(&rows[i]))
	}
	return dtos
}
