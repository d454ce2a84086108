package slots

import "time"

// SlotDTO is the shipment slot payload returned to clients. NombreColis and
// CapaciteRestante are derived from colis rows at read time, never stored.
type SlotDTO struct {
	ID               int64     `json:"id"`
	DateDepart       time.Time `json:"dateDepart"`
	LieuDepart       string    `json:"lieuDepart"`
	Destination      string    `json:"destination"`
	CapaciteMax      int       `json:"capaciteMax"`
	FraisParKg       float64   `json:"fraisParKg"`
	PoidsMaxColis    float64   `json:"poidsMaxColis"`
	TypeTransport    string    `json:"typeTransport"`
	DateExpedition   time.Time `json:"dateExpedition"`
	NombreColis      int       `json:"nombreColis"`
	CapaciteRestante int       `json:"capaciteRestante"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewSlotDTO maps an aggregated slot record to its wire form.
func NewSlotDTO(record *slotRecord) *SlotDTO {
	if record == nil {
		return nil
	}
	return &SlotDTO{
		ID:               record.ID,
		DateDepart:       record.DateDepart,
		LieuDepart:       record.LieuDepart,
		Destination:      record.Destination,
		CapaciteMax:      record.CapaciteMax,
		FraisParKg:       record.FraisParKg,
		PoidsMaxColis:    record.PoidsMaxColis,
		TypeTransport:    record.TypeTransport.String(),
		DateExpedition:   record.DateExpedition,
		NombreColis:      int(record.NombreColis),
		CapaciteRestante: record.CapaciteMax - int(record.NombreColis),
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}

// NewSlotDTOs maps a page of aggregated records.
func NewSlotDTOs(records []slotRecord) []SlotDTO {
	dtos := make([]SlotDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *NewSlotDTO(&records[i]))
	}
	return dtos
}
