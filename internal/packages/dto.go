package packages

import "time"

// PackageDTO is the colis payload returned to clients. The creneau* fields
// carry the owning slot's details when the package is assigned to one.
type PackageDTO struct {
	ID                    int64      `json:"id"`
	CreneauID             *int64     `json:"creneauId"`
	CodeSuivi             string     `json:"codeSuivi"`
	ExpediteurNom         string     `json:"expediteurNom"`
	ExpediteurTelephone   string     `json:"expediteurTelephone"`
	ExpediteurAdresse     string     `json:"expediteurAdresse"`
	DestinataireNom       string     `json:"destinataireNom"`
	DestinataireTelephone string     `json:"destinataireTelephone"`
	DestinataireAdresse   string     `json:"destinataireAdresse"`
	TypeColis             string     `json:"typeColis"`
	Poids                 float64    `json:"poids"`
	Description           *string    `json:"description,omitempty"`
	ValeurDeclaree        float64    `json:"valeurDeclaree"`
	Assure                bool       `json:"assure"`
	ModePaiement          string     `json:"modePaiement"`
	Statut                string     `json:"statut"`
	CreneauLieuDepart     *string    `json:"creneauLieuDepart,omitempty"`
	CreneauDestination    *string    `json:"creneauDestination,omitempty"`
	CreneauDateDepart     *time.Time `json:"creneauDateDepart,omitempty"`
	CreneauDateExpedition *time.Time `json:"creneauDateExpedition,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// NewPackageDTO maps an enriched colis record to its wire form.
func NewPackageDTO(record *packageRecord) *PackageDTO {
	if record == nil {
		return nil
	}
	return &PackageDTO{
		ID:                    record.ID,
		CreneauID:             record.CreneauID,
		CodeSuivi:             record.CodeSuivi,
		ExpediteurNom:         record.ExpediteurNom,
		ExpediteurTelephone:   record.ExpediteurTelephone,
		ExpediteurAdresse:     record.ExpediteurAdresse,
		DestinataireNom:       record.DestinataireNom,
		DestinataireTelephone: record.DestinataireTelephone,
		DestinataireAdresse:   record.DestinataireAdresse,
		TypeColis:             record.TypeColis.String(),
		Poids:                 record.Poids,
		Description:           record.Description,
		ValeurDeclaree:        record.ValeurDeclaree,
		Assure:                record.Assure,
		ModePaiement:          record.ModePaiement.String(),
		Statut:                record.Statut.String(),
		CreneauLieuDepart:     record.CreneauLieuDepart,
		CreneauDestination:    record.CreneauDestination,
		CreneauDateDepart:     record.CreneauDateDepart,
		CreneauDateExpedition: record.CreneauDateExpedition,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
}

// NewPackageDTOs maps a page of enriched records.
func NewPackageDTOs(records []packageRecord) []PackageDTO {
	dtos := make([]PackageDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *NewPackageDTO(&records[i]))
	}
	return dtos
}
